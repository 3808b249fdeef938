package dateformatter

import (
	"testing"
	"time"
)

// withLocal pins time.Local for the duration of a test
func withLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	previous := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = previous })
}

func mustNew(t *testing.T, input any) *Formatter {
	t.Helper()
	f, err := New(input)
	if err != nil {
		t.Fatalf("New(%v) error = %v", input, err)
	}
	return f
}
