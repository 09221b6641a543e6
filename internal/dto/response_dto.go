package dto

// ErrorResponse is the uniform error body for API failures.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// StatusResponse is used for simple acknowledgements (toggles, seed, delete).
type StatusResponse struct {
	Status string `json:"status"`
}
