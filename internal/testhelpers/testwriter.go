package testhelpers

import (
	"io"
	"strings"
	"testing"
)

// Writer routes log output to t.Log so it only surfaces for failing tests.
type Writer struct {
	t        *testing.T
	testDone chan struct{}
}

// NewWriter returns a Writer bound to the test's lifetime. Writing after the
// test completes panics, which catches servers that outlive their test.
func NewWriter(t *testing.T) io.Writer {
	w := &Writer{
		t:        t,
		testDone: make(chan struct{}),
	}
	t.Cleanup(func() {
		close(w.testDone)
	})
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	select {
	case <-w.testDone:
		panic("testwriter: write after test completion. Did you remember to t.Cleanup(server.Shutdown)?")
	default:
		// Trailing newlines double-space t.Log output.
		output := strings.TrimSuffix(string(p), "\n")
		if output != "" {
			w.t.Log(output)
		}
		return len(p), nil
	}
}
