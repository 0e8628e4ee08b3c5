package predictor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

// stopGrace is how long Stop waits for the process to exit after SIGTERM
// before killing it.
const stopGrace = 5 * time.Second

// Supervisor owns the external model server process for the lifetime of the
// API server. It is touched only from the startup and shutdown control
// points, never from request handlers. The child's stdout and stderr lines
// are forwarded to the structured logger; no protocol is imposed on them.
type Supervisor struct {
	mu      sync.Mutex
	command string
	args    []string
	logger  *slog.Logger
	grace   time.Duration

	cmd    *exec.Cmd
	exited chan struct{}
}

// NewSupervisor creates a supervisor for the given command and arguments. It
// does not start anything.
func NewSupervisor(command string, args []string, logger *slog.Logger) *Supervisor {
	return &Supervisor{command: command, args: args, logger: logger, grace: stopGrace}
}

// Start spawns the model server process and begins forwarding its output.
// Calling Start while a process handle is already held returns an error
// instead of leaking a second process.
func (s *Supervisor) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil {
		return errors.New("model server already running")
	}

	cmd := exec.Command(s.command, s.args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err = cmd.Start(); err != nil {
		return err
	}

	s.cmd = cmd
	s.exited = make(chan struct{})

	var readers sync.WaitGroup
	readers.Add(2)
	go s.forward(&readers, stdout, slog.LevelInfo)
	go s.forward(&readers, stderr, slog.LevelWarn)

	exited := s.exited
	go func() {
		readers.Wait()
		err := cmd.Wait()
		if err != nil {
			s.logger.Warn("model server exited", slog.Any("error", err))
		} else {
			s.logger.Info("model server exited")
		}
		close(exited)
	}()

	s.logger.Info("model server started",
		slog.String("command", s.command),
		slog.Int("pid", cmd.Process.Pid))
	return nil
}

// Stop terminates the model server if one is running and waits briefly for it
// to exit, escalating to SIGKILL after the grace period. The process handle is
// released only once the child has exited, so Start keeps refusing until then.
// Stop is a no-op when no process handle is held.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	cmd, exited := s.cmd, s.exited
	s.mu.Unlock()

	if cmd == nil {
		return
	}

	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		s.logger.Warn("model server signal error", slog.Any("error", err))
	}
	select {
	case <-exited:
	case <-time.After(s.grace):
		s.logger.Warn("model server did not exit in time, killing")
		_ = cmd.Process.Kill()
		<-exited
	}

	s.mu.Lock()
	if s.cmd == cmd {
		s.cmd, s.exited = nil, nil
	}
	s.mu.Unlock()
}

// forward copies the child's output lines into the logger at the given level.
func (s *Supervisor) forward(wg *sync.WaitGroup, r io.Reader, level slog.Level) {
	defer wg.Done()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.logger.Log(context.Background(), level, "model server: "+scanner.Text())
	}
}
