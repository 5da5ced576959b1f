package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/andy/pomodoro/internal/domain"
	"github.com/andy/pomodoro/internal/logging"
)

// TitleRenderer mirrors each snapshot into the terminal window title using
// the OSC 0 escape sequence. Unchanged titles are not rewritten.
type TitleRenderer struct {
	mu     sync.Mutex
	out    io.Writer
	logger *logging.Logger
	last   string
}

func NewTitleRenderer(out io.Writer, logger *logging.Logger) *TitleRenderer {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &TitleRenderer{out: out, logger: logger}
}

func (r *TitleRenderer) Render(state domain.TimerState) {
	title := state.Title()

	r.mu.Lock()
	defer r.mu.Unlock()
	if title == r.last {
		return
	}
	r.last = title
	if _, err := fmt.Fprintf(r.out, "\x1b]0;%s\a", title); err != nil {
		r.logger.Warn("failed to set terminal title", "error", err)
	}
}
