package main

import (
	"context"
	"sync"

	"code.cloudfoundry.org/lager"
	"github.com/alphagov/paas-runtime-poller/apiserver"
	"github.com/alphagov/paas-runtime-poller/eventcollector"
	"github.com/alphagov/paas-runtime-poller/eventstream"
	"github.com/alphagov/paas-runtime-poller/runtimeclient"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	wg       sync.WaitGroup
	ctx      context.Context
	client   *runtimeclient.Client
	stream   *eventstream.EventStream
	logger   lager.Logger
	cfg      Config
	Shutdown context.CancelFunc
}

// StartPoller pulls events from the runtime API until the app is shut down
func (app *App) StartPoller() error {
	name := "poller"
	logger := app.logger.Session(name)
	collector := eventcollector.New(eventcollector.Config{
		Logger:  logger,
		Source:  app.stream,
		Handler: &eventcollector.LoggingHandler{Logger: logger},
	})
	return app.start(name, logger, func() error {
		defer app.stream.Close()
		return collector.Run(app.ctx)
	})
}

func (app *App) StartHealthServer() error {
	name := "health"
	logger := app.logger.Session(name)
	healthServer := apiserver.New(apiserver.Config{
		Stream: app.stream,
		Logger: logger,
	})
	return app.start(name, logger, func() error {
		return apiserver.ListenAndServe(
			app.ctx,
			logger,
			healthServer,
			app.cfg.ListenAddr,
		)
	})
}

// Stream returns the event stream, for callers that pull it directly
func (app *App) Stream() *eventstream.EventStream {
	return app.stream
}

func (app *App) start(name string, logger lager.Logger, fn func() error) error {
	app.wg.Add(1)
	go func() {
		logger.Info("starting")
		defer logger.Info("stopped")
		defer app.wg.Done()
		defer app.Shutdown()
		if err := fn(); err != nil {
			logger.Error("stop-with-error", err)
		}
	}()
	return nil
}

func (app *App) Wait() error {
	app.wg.Wait()
	return nil
}

func New(ctx context.Context, cfg Config) (*App, error) {
	ctx, shutdown := context.WithCancel(ctx)

	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("app")
	}

	go func() {
		defer shutdown()
		<-ctx.Done()
		cfg.Logger.Info("stopping")
	}()

	client, err := runtimeclient.New(runtimeclient.Config{
		Scheme:     cfg.RuntimeAPI.Scheme,
		Authority:  cfg.RuntimeAPI.Authority,
		Logger:     cfg.Logger.Session("runtime-client"),
		Registerer: prometheus.DefaultRegisterer,
	})
	if err != nil {
		shutdown()
		return nil, errors.Wrap(err, "failed to create runtime API client")
	}

	stream := eventstream.New(ctx, eventstream.Config{
		Client:     client,
		Logger:     cfg.Logger.Session("event-stream"),
		Registerer: prometheus.DefaultRegisterer,
	})

	app := &App{
		cfg:      cfg,
		ctx:      ctx,
		Shutdown: shutdown,
		client:   client,
		stream:   stream,
		logger:   cfg.Logger,
	}

	return app, nil
}
