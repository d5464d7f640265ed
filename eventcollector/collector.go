package eventcollector

import (
	"context"
	"sync"
	"time"

	"github.com/alphagov/paas-runtime-poller/eventio"

	"code.cloudfoundry.org/lager"
)

type state string

const (
	// Polling means the collector is waiting on the source for the next event
	Polling state = "polling"
	// Handling means an event has been handed to the handler
	Handling state = "handling"
)

// EventCollector pulls outcomes from the given EventSource and passes each
// successful one to the given EventHandler, one at a time and in order.
// Failed exchanges are logged and the next pull starts straight away.
type EventCollector struct {
	state         state
	logger        lager.Logger
	source        eventio.EventSource
	handler       eventio.EventHandler
	mu            sync.Mutex
	eventsHandled int
	errorsSeen    int
}

// Run pulls until ctx is cancelled
func (c *EventCollector) Run(ctx context.Context) error {
	c.logger.Info("started")
	defer c.logger.Info("stopping")

	for {
		c.setState(Polling)
		outcome, err := c.source.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if outcome.Err != nil {
			c.mu.Lock()
			c.errorsSeen++
			c.mu.Unlock()
			c.logger.Error("exchange-error", outcome.Err, lager.Data{
				"errors_seen": c.ErrorsSeen(),
			})
			continue
		}

		c.setState(Handling)
		startTime := time.Now()
		if err := c.handler.HandleEvent(ctx, outcome.Response); err != nil {
			c.logger.Error("handler-error", err, lager.Data{
				"request_id": outcome.Response.RequestID(),
			})
			continue
		}
		c.mu.Lock()
		c.eventsHandled++
		c.mu.Unlock()
		elapsed := time.Since(startTime)
		c.logger.Info("handled", lager.Data{
			"request_id":     outcome.Response.RequestID(),
			"events_handled": c.EventsHandled(),
			"elapsed":        elapsed.String(),
		})
	}
}

func (c *EventCollector) setState(s state) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

func (c *EventCollector) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.state)
}

func (c *EventCollector) EventsHandled() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eventsHandled
}

func (c *EventCollector) ErrorsSeen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorsSeen
}

type Config struct {
	Logger  lager.Logger
	Source  eventio.EventSource
	Handler eventio.EventHandler
}

func New(cfg Config) *EventCollector {
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("collector")
	}
	return &EventCollector{
		logger:  cfg.Logger,
		source:  cfg.Source,
		handler: cfg.Handler,
		state:   Polling,
	}
}
