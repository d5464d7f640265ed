package eventstream

import (
	"context"
	"net/http"
	"sync/atomic"

	"code.cloudfoundry.org/lager"
	"github.com/alphagov/paas-runtime-poller/eventio"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// NextEventPath is the runtime API endpoint that long-polls for the next event
const NextEventPath = "/runtime/invocation/next"

type State string

const (
	// Idle means no exchange is in flight, only before the first pull or after Close
	Idle State = "idle"
	// Active means exactly one exchange is in flight
	Active State = "active"
)

var _ eventio.EventSource = &EventStream{}

// EventStream turns repeated next-event exchanges into an infinite, lazily
// pulled sequence of outcomes. At most one exchange is in flight at a time
// and the next one is always issued before the current outcome is handed
// back, so the following pull only waits for whatever remains of it.
//
// An EventStream must not be pulled from more than one goroutine at once.
type EventStream struct {
	ctx     context.Context
	client  eventio.EventClient
	current *eventio.Exchange
	logger  lager.Logger
	metrics *metrics

	issued  atomic.Int64
	yielded atomic.Int64
	active  atomic.Bool
}

type Config struct {
	// Client performs the exchanges (required)
	Client eventio.EventClient
	Logger lager.Logger
	// Registerer receives the stream metrics, a private registry is used if nil
	Registerer prometheus.Registerer
}

// New returns an Idle stream. ctx bounds every exchange the stream issues.
func New(ctx context.Context, cfg Config) *EventStream {
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("event-stream")
	}
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.NewRegistry()
	}
	return &EventStream{
		ctx:     ctx,
		client:  cfg.Client,
		logger:  cfg.Logger,
		metrics: newMetrics(cfg.Registerer),
	}
}

// NextEventRequest builds the request used for every exchange
func NextEventRequest() *eventio.Request {
	return &eventio.Request{
		Method: http.MethodGet,
		Target: NextEventPath,
		Body:   []byte{},
	}
}

// TryNext attempts to produce the next outcome without blocking. It returns
// false while the in-flight exchange is unresolved; the caller should wait
// on Ready and try again.
func (s *EventStream) TryNext() (eventio.Outcome, bool) {
	if s.current == nil {
		s.current = s.issue()
	}
	outcome, ok := s.current.Poll()
	if !ok {
		return eventio.Outcome{}, false
	}
	resolved := s.current
	s.current = s.issue()
	s.yielded.Add(1)
	s.record(resolved, outcome)
	return outcome, true
}

// Ready returns a channel that is closed once the in-flight exchange has
// resolved. It is nil while the stream is Idle.
func (s *EventStream) Ready() <-chan struct{} {
	if s.current == nil {
		return nil
	}
	return s.current.Done()
}

// Next blocks until the next outcome is available. If ctx ends first the
// pull is given up but the in-flight exchange is kept for the next call.
func (s *EventStream) Next(ctx context.Context) (eventio.Outcome, error) {
	for {
		if outcome, ok := s.TryNext(); ok {
			return outcome, nil
		}
		select {
		case <-s.Ready():
		case <-ctx.Done():
			return eventio.Outcome{}, ctx.Err()
		}
	}
}

// Close abandons the in-flight exchange, if any, and returns the stream to
// Idle. The host is not told the poll was given up.
func (s *EventStream) Close() {
	if s.current != nil {
		s.logger.Info("abandoning-exchange", lager.Data{
			"exchange_id": s.current.ID,
		})
		s.current.Abandon()
		s.current = nil
	}
	s.active.Store(false)
	s.logger.Info("closed", lager.Data{
		"issued":  s.Issued(),
		"yielded": s.Yielded(),
	})
}

func (s *EventStream) State() State {
	if s.active.Load() {
		return Active
	}
	return Idle
}

// Issued is the number of exchanges started by this stream
func (s *EventStream) Issued() int64 {
	return s.issued.Load()
}

// Yielded is the number of outcomes handed to the consumer
func (s *EventStream) Yielded() int64 {
	return s.yielded.Load()
}

func (s *EventStream) issue() *eventio.Exchange {
	exchange := s.client.Call(s.ctx, NextEventRequest())
	if exchange == nil {
		exchange = eventio.ResolvedExchange(nil, errors.New("event client returned no exchange"))
	}
	s.issued.Add(1)
	s.active.Store(true)
	s.metrics.issued.Inc()
	s.logger.Debug("exchange-issued", lager.Data{
		"exchange_id": exchange.ID,
		"issued":      s.Issued(),
	})
	return exchange
}

func (s *EventStream) record(exchange *eventio.Exchange, outcome eventio.Outcome) {
	if outcome.Err != nil {
		s.metrics.outcomes.WithLabelValues("error").Inc()
		s.logger.Debug("outcome", lager.Data{
			"exchange_id": exchange.ID,
			"result":      "error",
			"error":       outcome.Err.Error(),
		})
		return
	}
	s.metrics.outcomes.WithLabelValues("ok").Inc()
	s.logger.Debug("outcome", lager.Data{
		"exchange_id": exchange.ID,
		"result":      "ok",
		"status":      outcome.Response.StatusCode,
	})
}
