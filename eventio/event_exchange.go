package eventio

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

// Exchange is a single-assignment future holding the outcome of one
// request/response round trip. It may be polled any number of times but
// only one consumer should drive it.
type Exchange struct {
	ID string

	done      chan struct{}
	resolve   sync.Once
	abandon   sync.Once
	cancel    context.CancelFunc
	outcome   Outcome
	abandoned bool
	mu        sync.Mutex
}

// NewExchange returns an unresolved Exchange. cancel is invoked when the
// exchange is abandoned and should abort whatever work would resolve it.
func NewExchange(cancel context.CancelFunc) *Exchange {
	if cancel == nil {
		cancel = func() {}
	}
	return &Exchange{
		ID:     newExchangeID(),
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// ResolvedExchange returns an Exchange that is already complete
func ResolvedExchange(resp *Response, err error) *Exchange {
	e := NewExchange(nil)
	e.Resolve(resp, err)
	return e
}

// Resolve completes the exchange. Only the first call has any effect. A nil
// response without an error resolves as an error outcome.
func (e *Exchange) Resolve(resp *Response, err error) {
	if resp == nil && err == nil {
		err = errors.New("exchange resolved without a response")
	}
	e.resolve.Do(func() {
		e.mu.Lock()
		if err != nil {
			e.outcome = Outcome{Err: err}
		} else {
			e.outcome = Outcome{Response: resp}
		}
		e.mu.Unlock()
		close(e.done)
	})
}

func (e *Exchange) Done() <-chan struct{} {
	return e.done
}

// Poll returns the outcome and true if the exchange has resolved, or false
// if it is still in flight.
func (e *Exchange) Poll() (Outcome, bool) {
	select {
	case <-e.done:
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.outcome, true
	default:
		return Outcome{}, false
	}
}

// Wait blocks until the exchange resolves or ctx is done
func (e *Exchange) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-e.done:
		outcome, _ := e.Poll()
		return outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// Abandon drops the exchange and aborts the work behind it. The remote host
// is not told; from its point of view the request may still be pending.
func (e *Exchange) Abandon() {
	e.abandon.Do(func() {
		e.mu.Lock()
		e.abandoned = true
		e.mu.Unlock()
		e.cancel()
	})
}

func (e *Exchange) Abandoned() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.abandoned
}

func newExchangeID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}
