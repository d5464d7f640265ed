package eventio

import (
	"net/http"
)

// RequestIDHeader carries the invocation id the host assigns to each event
const RequestIDHeader = "Lambda-Runtime-Aws-Request-Id"

type Request struct {
	Method string
	// Target is the path and query of the request. Any scheme or authority
	// is replaced by the client performing the exchange.
	Target string
	Header http.Header
	Body   []byte
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) RequestID() string {
	if r == nil || r.Header == nil {
		return ""
	}
	return r.Header.Get(RequestIDHeader)
}

// Outcome is the result of a single exchange: exactly one of Response or Err is set
type Outcome struct {
	Response *Response
	Err      error
}

func (o Outcome) OK() bool {
	return o.Err == nil
}
