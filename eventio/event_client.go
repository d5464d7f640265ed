package eventio

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// EventClient performs exchanges with the runtime host. Call must not return
// nil: failures are delivered as the error outcome of the returned Exchange.
//
//counterfeiter:generate . EventClient
type EventClient interface {
	Call(ctx context.Context, req *Request) *Exchange
}

// EventSource yields exchange outcomes one at a time, in order. The error
// return is reserved for the pull itself (ctx cancelled); failed exchanges
// are reported through Outcome.Err.
//
//counterfeiter:generate . EventSource
type EventSource interface {
	Next(ctx context.Context) (Outcome, error)
}

//counterfeiter:generate . EventHandler
type EventHandler interface {
	HandleEvent(ctx context.Context, resp *Response) error
}
