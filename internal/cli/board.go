package cli

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/tally/internal/board"
	"github.com/rileyhilliard/tally/internal/errors"
	"golang.org/x/term"
)

// boardCommand starts the interactive habit board.
func boardCommand(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrExec,
			"The board needs a terminal",
			"Use 'tally show' or 'tally stats --json' when piping output")
	}

	a, err := openApp(ctx, appOptions{quiet: true, command: "tally board"})
	if err != nil {
		return err
	}
	defer a.Close()

	model := board.NewModel(ctx, a.tracker, board.Options{
		Title:       "tally",
		Version:     displayVersion(),
		Celebrate:   a.cfg.UI.Celebrate,
		ChartHeight: a.cfg.UI.ChartHeight,
		Seed:        time.Now().UnixNano(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
