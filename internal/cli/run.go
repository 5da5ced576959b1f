package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/andy/pomodoro/internal/domain"
	"github.com/andy/pomodoro/internal/logging"
	"github.com/andy/pomodoro/internal/notify"
	"github.com/andy/pomodoro/internal/service"
	"github.com/spf13/cobra"
)

// headlessEngine is what the headless loop needs from the engine
type headlessEngine interface {
	State() domain.TimerState
	Subscribe(buffer int) <-chan service.Event
	AdjustSession(delta int)
	AdjustBreak(delta int)
	Start()
	Stop()
}

type runOptions struct {
	SessionMinutes int
	BreakMinutes   int
	Cycles         int
	Quiet          bool
	Title          bool
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the timer without the TUI",
	Long: `Run the countdown headless, printing a status line on every change.

Examples:
  pomodoro run                          # 25m sessions, 5m breaks, forever
  pomodoro run --session 50 --break 10  # custom lengths (1-60 minutes)
  pomodoro run --cycles 4 --quiet       # stop after four sessions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := ensureApp()
		if err != nil {
			return err
		}

		if r := titleRenderer(cmd.OutOrStdout(), runOpts.Title, a.Logger.With("component", "title")); r != nil {
			a.Engine.AddRenderer(r)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runHeadless(ctx, a.Engine, cmd.OutOrStdout(), runOpts)
	},
}

// runHeadless starts the engine and prints its progress until ctx is done,
// the engine closes, or the requested number of sessions completes.
func runHeadless(ctx context.Context, engine headlessEngine, out io.Writer, opts runOptions) error {
	events := engine.Subscribe(64)

	if opts.SessionMinutes > 0 {
		engine.AdjustSession(opts.SessionMinutes*60 - engine.State().SessionLength)
	}
	if opts.BreakMinutes > 0 {
		engine.AdjustBreak(opts.BreakMinutes*60 - engine.State().BreakLength)
	}

	s := engine.State()
	fmt.Fprintf(out, "Session %s, break %s\n", domain.FormatClock(s.SessionLength), domain.FormatClock(s.BreakLength))
	engine.Start()

	for {
		select {
		case <-ctx.Done():
			engine.Stop()
			fmt.Fprintln(out, "Stopped.")
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}

			switch ev.Type {
			case service.EventBoundary:
				fmt.Fprintf(out, "✓ %s complete (sessions: %d)\n", ev.Boundary.Completed.Label(), ev.Boundary.CompletedSessions)
			case service.EventState:
				if !opts.Quiet {
					fmt.Fprintln(out, statusLine(ev.State))
				}
			}

			if opts.Cycles > 0 && ev.State.CompletedSessions >= opts.Cycles {
				engine.Stop()
				fmt.Fprintf(out, "Completed %d sessions.\n", opts.Cycles)
				return nil
			}
		}
	}
}

// titleRenderer returns the window title collaborator for out, or nil when
// titles are disabled or out is not a terminal.
func titleRenderer(out io.Writer, enabled bool, logger *logging.Logger) *notify.TitleRenderer {
	if !enabled || !notify.IsTerminal(out) {
		return nil
	}
	return notify.NewTitleRenderer(out, logger)
}

// statusLine formats a snapshot, e.g. "24:59 [Session] running  sessions=0"
func statusLine(s domain.TimerState) string {
	return fmt.Sprintf("%s [%s] %s  sessions=%d", domain.FormatClock(s.TimeLeft), s.Phase.Label(), s.RunState, s.CompletedSessions)
}

func init() {
	runCmd.Flags().IntVar(&runOpts.SessionMinutes, "session", 0, "session length in minutes (default 25)")
	runCmd.Flags().IntVar(&runOpts.BreakMinutes, "break", 0, "break length in minutes (default 5)")
	runCmd.Flags().IntVar(&runOpts.Cycles, "cycles", 0, "stop after this many completed sessions (0 = run forever)")
	runCmd.Flags().BoolVar(&runOpts.Title, "title", notify.IsTerminal(os.Stdout), "mirror the countdown in the terminal window title (ignored unless stdout is a terminal)")
	runCmd.Flags().BoolVarP(&runOpts.Quiet, "quiet", "q", false, "only print phase boundaries")
}
