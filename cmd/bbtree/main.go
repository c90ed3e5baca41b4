package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/bbtree/internal/cli"
	"github.com/alexanderramin/bbtree/internal/config"
	"github.com/alexanderramin/bbtree/internal/db"
	"github.com/alexanderramin/bbtree/internal/render"
	"github.com/alexanderramin/bbtree/internal/repository"
	"github.com/alexanderramin/bbtree/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Plain output when piped or redirected.
	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !interactive {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	level := new(slog.LevelVar)
	level.Set(cfg.Level())
	observer := service.NewLogRunObserver(os.Stderr, level)

	app := &cli.App{
		Config:      cfg,
		LogLevel:    level,
		Interactive: interactive,
	}
	renderer := render.NewGraphviz(cfg.DotBinary)

	// History is optional; without a database path runs are not recorded.
	if cfg.DBPath != "" {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		runRepo := repository.NewSQLiteRunRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)
		app.Convert = service.NewConvertService(renderer, runRepo, uow, observer)
		app.History = service.NewHistoryService(runRepo)
	} else {
		app.Convert = service.NewConvertService(renderer, nil, nil, observer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
