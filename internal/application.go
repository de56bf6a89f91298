package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/rocketscienceinc/tictactoe/transport/tui"
)

// RunApp - runs the application until the player quits or a signal arrives.
// Extra program options are passed to the terminal UI.
func RunApp(logger *slog.Logger, conf *config.Config, opts ...tea.ProgramOption) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	tui.ConfigureColor(conf.UI.NoColor)

	session := usecase.NewGameSession(logger, tictactoe.NewEngine())
	model := tui.New(logger, session, tui.Options{HideHelp: conf.UI.HideHelp})

	programOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(model, programOpts...)

	log.Info("Starting terminal UI")

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("Terminal UI closed", "round", session.RoundID(), "moves", session.Moves())

	return nil
}
