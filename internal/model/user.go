package model

// User is the identity capability handed in by the auth collaborator. The
// service only ever needs these four fields; sign-in itself happens upstream.
type User struct {
	UID     string `json:"uid"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}
