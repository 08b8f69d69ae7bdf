package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a single speech invocation.
const DefaultTimeout = 10 * time.Second

// Speaker shells out to a resolved speech command.
type Speaker struct {
	timeout time.Duration
	logger  *logrus.Logger
}

func NewSpeaker(timeout time.Duration, logger *logrus.Logger) *Speaker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Speaker{timeout: timeout, logger: logger}
}

// Speak runs argv with message appended as the final argument. The child is
// killed once the timeout elapses; a launch failure, non-zero exit, or
// timeout all come back as errors. One invocation, no retry.
func (s *Speaker) Speak(ctx context.Context, argv []string, message string) error {
	if len(argv) == 0 {
		return ErrNoCommand
	}
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	args := append(append([]string{}, argv[1:]...), message)
	cmd := exec.CommandContext(runCtx, argv[0], args...)
	// Don't wait on inherited pipes past the deadline: a speech command may
	// leave a helper daemon behind holding stdout open.
	cmd.WaitDelay = time.Second
	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		s.logger.Debugf("speech output: %s", strings.TrimSpace(string(out)))
	}
	if err != nil {
		if errors.Is(err, exec.ErrWaitDelay) {
			// The command itself exited cleanly; only stragglers held the pipes.
			return nil
		}
		if runCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("speech command timed out after %s", s.timeout)
		}
		return fmt.Errorf("speech command failed: %w", err)
	}
	return nil
}
