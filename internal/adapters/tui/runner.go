package tui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomo/internal/services"
)

// Run starts the interactive timer and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, session *services.SessionService, history *services.HistoryService, logger *slog.Logger, opts Options) error {
	model := NewModel(session, history, logger, opts)

	var progOpts []tea.ProgramOption
	if !opts.Inline {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, progOpts...)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		program.Send(quitRequestMsg{})
	}()

	_, err := program.Run()
	cancel()
	wg.Wait()

	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
