package predictor

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func testLogger(buf *syncBuffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestStartTwiceIsGuarded(t *testing.T) {
	s := NewSupervisor("sleep", []string{"60"}, testLogger(&syncBuffer{}))

	require.NoError(t, s.Start())
	defer s.Stop()

	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}

func TestStopThenRestart(t *testing.T) {
	s := NewSupervisor("sleep", []string{"60"}, testLogger(&syncBuffer{}))

	require.NoError(t, s.Start())
	s.Stop()

	require.NoError(t, s.Start())
	s.Stop()
}

func TestStartRefusedWhileStopping(t *testing.T) {
	s := NewSupervisor("sh", []string{"-c", `trap "" TERM; while :; do sleep 1; done`}, testLogger(&syncBuffer{}))
	s.grace = 500 * time.Millisecond

	require.NoError(t, s.Start())

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	// The child ignores SIGTERM, so Stop sits in its grace window. The slot
	// must stay occupied until the process is actually gone.
	time.Sleep(100 * time.Millisecond)
	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not finish")
	}

	require.NoError(t, s.Start())
	s.Stop()
}

func TestStopWithoutStartIsNoop(t *testing.T) {
	s := NewSupervisor("sleep", []string{"60"}, testLogger(&syncBuffer{}))
	s.Stop()
	s.Stop()
}

func TestForwardsChildOutput(t *testing.T) {
	buf := &syncBuffer{}
	s := NewSupervisor("sh", []string{"-c", "echo ready; echo oops >&2"}, testLogger(buf))

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		out := buf.String()
		return strings.Contains(out, "model server: ready") &&
			strings.Contains(out, "model server: oops")
	}, 2*time.Second, 20*time.Millisecond)
}
