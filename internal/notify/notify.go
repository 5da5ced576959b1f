// Package notify holds the engine's presentation collaborators: the
// audible boundary cue, boundary logging and the terminal title. They are
// fire-and-forget; failures are logged here and never reach the engine.
package notify

import (
	"io"
	"sync"

	"github.com/andy/pomodoro/internal/domain"
	"github.com/andy/pomodoro/internal/logging"
	"github.com/andy/pomodoro/internal/service"
)

// bel is the terminal bell control character.
const bel = "\a"

// Bell rings the terminal bell on every boundary.
type Bell struct {
	mu     sync.Mutex
	out    io.Writer
	logger *logging.Logger
}

func NewBell(out io.Writer, logger *logging.Logger) *Bell {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Bell{out: out, logger: logger}
}

func (b *Bell) BoundaryReached(event domain.BoundaryEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.out, bel); err != nil {
		b.logger.Warn("failed to ring bell", "error", err, "phase", string(event.Completed))
	}
}

// LogNotifier records boundaries in the log.
type LogNotifier struct {
	logger *logging.Logger
}

func NewLogNotifier(logger *logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) BoundaryReached(event domain.BoundaryEvent) {
	n.logger.Info("phase complete",
		"phase", string(event.Completed),
		"completed_sessions", event.CompletedSessions,
	)
}

// Multi fans a boundary out to several notifiers in order.
type Multi []service.Notifier

func (m Multi) BoundaryReached(event domain.BoundaryEvent) {
	for _, n := range m {
		if n != nil {
			n.BoundaryReached(event)
		}
	}
}
