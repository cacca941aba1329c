// Package bot initializes and runs the application: it wires the config,
// logger, data store, session store, router, and Telegram transport
// together, and handles graceful shutdown.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/recipebook/internal/bot/config"
	"github.com/dmitrijs2005/recipebook/internal/logging"
	"github.com/dmitrijs2005/recipebook/internal/router"
	"github.com/dmitrijs2005/recipebook/internal/session"
	"github.com/dmitrijs2005/recipebook/internal/storage"
	"github.com/dmitrijs2005/recipebook/internal/telegram"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	store     *storage.Store
	transport *telegram.Transport
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg.BotToken == "" {
		return nil, errors.New("bot token is not configured")
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	sessions := session.NewStore()

	transport, err := telegram.New(cfg.BotToken, nil, logger, cfg.PollTimeout)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("telegram init error: %w", err)
	}

	sender := transport.Sender(cfg.SendRetries)
	transport.SetHandler(router.New(store, sessions, sender, logger))

	return &App{config: cfg, logger: logger, store: store, transport: transport}, nil
}

// Run blocks until the context is cancelled or an OS signal arrives, then
// shuts down and closes the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.initSignalHandler(cancel)

	app.logger.Info(ctx, "starting bot")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.transport.Start(ctx)
	})

	err := g.Wait()

	if cerr := app.store.Close(); cerr != nil {
		app.logger.Error(ctx, "db close error", "error", cerr)
	}
	app.logger.Info(ctx, "bot stopped")

	return err
}

func (app *App) initSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancel()
	}()
}
