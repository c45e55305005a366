package utils

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_StartStop(t *testing.T) {
	out := &syncBuffer{}
	s := NewSpinner("loading", time.Millisecond, false)
	s.writer = out
	s.StopMsg = "done"

	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop()

	assert.Contains(t, out.String(), "loading")
	assert.True(t, strings.HasSuffix(out.String(), "done"))

	// A second Stop is a no-op.
	s.Stop()
	assert.Equal(t, 1, strings.Count(out.String(), "done"))
}

func TestSpinner_StopReturns(t *testing.T) {
	s := NewSpinner("loading", time.Millisecond, true)
	s.writer = &syncBuffer{}

	for i := 0; i < 3; i++ {
		s.Start()
		time.Sleep(3 * time.Millisecond)

		stopped := make(chan struct{})
		go func() {
			s.Stop()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-time.After(2 * time.Second):
			t.Fatalf("spinner did not stop on run %d", i)
		}
	}
}
