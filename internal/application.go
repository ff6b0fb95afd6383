package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/rocketscienceinc/othello/internal/config"
	"github.com/rocketscienceinc/othello/internal/entity"
	"github.com/rocketscienceinc/othello/internal/othello"
	"github.com/rocketscienceinc/othello/internal/transport/console"
	"github.com/rocketscienceinc/othello/internal/usecase"
)

// RunApp - runs a console game on stdin/stdout until neither player can move.
func RunApp(logger *slog.Logger, conf *config.Config) error {
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

	clearScreen := !conf.Display.DisableClear && isatty.IsTerminal(os.Stdout.Fd())
	log.Debug("display configured", "clear_screen", clearScreen)

	gameManager := usecase.NewGameManager(
		logger,
		entity.NewGame(),
		console.NewInput(os.Stdin),
		console.NewDisplay(os.Stdout, clearScreen),
		Glyphs(conf.Display),
	)

	if err := gameManager.Run(ctx); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}

	log.Info("Game finished")

	return nil
}

// Glyphs - maps the display configuration onto the board renderer's glyph set.
func Glyphs(display config.Display) othello.Glyphs {
	glyphs := othello.Glyphs{
		Empty:     display.Glyphs.Empty,
		Black:     display.Glyphs.Black,
		White:     display.Glyphs.White,
		Separator: display.CellSeparator,
	}

	if glyphs.Empty == "" {
		glyphs.Empty = othello.DefaultGlyphs.Empty
	}
	if glyphs.Black == "" {
		glyphs.Black = othello.DefaultGlyphs.Black
	}
	if glyphs.White == "" {
		glyphs.White = othello.DefaultGlyphs.White
	}

	return glyphs
}
