package realtime

import "testing"

func TestSubscribeReceivesSignal(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe("quiz-1")
	defer cancel()

	hub.SubmissionChanged("quiz-1")
	select {
	case <-ch:
	default:
		t.Fatalf("expected a pending signal")
	}
}

func TestSignalsCoalesce(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe("quiz-1")
	defer cancel()

	hub.SubmissionChanged("quiz-1")
	hub.SubmissionChanged("quiz-1")
	hub.SubmissionChanged("quiz-1")

	<-ch
	select {
	case <-ch:
		t.Fatalf("signals should coalesce into one pending notification")
	default:
	}
}

func TestCancelRemovesWatcher(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe("quiz-1")
	if got := hub.Watchers("quiz-1"); got != 1 {
		t.Fatalf("expected 1 watcher, got %d", got)
	}
	cancel()
	cancel() // second cancel is harmless
	if got := hub.Watchers("quiz-1"); got != 0 {
		t.Fatalf("expected 0 watchers after cancel, got %d", got)
	}
	// Signalling an empty quiz must not panic or block.
	hub.SubmissionChanged("quiz-1")
}

func TestSignalsAreScopedPerQuiz(t *testing.T) {
	hub := NewHub()
	ch1, cancel1 := hub.Subscribe("quiz-1")
	defer cancel1()
	ch2, cancel2 := hub.Subscribe("quiz-2")
	defer cancel2()

	hub.SubmissionChanged("quiz-1")
	select {
	case <-ch2:
		t.Fatalf("quiz-2 watcher received quiz-1 signal")
	default:
	}
	<-ch1
}
