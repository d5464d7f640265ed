package apiserver

import (
	"net/http"

	"github.com/alphagov/paas-runtime-poller/eventstream"
	"github.com/labstack/echo/v4"
)

// StreamStatus is the read-only view of an event stream
type StreamStatus interface {
	State() eventstream.State
	Issued() int64
	Yielded() int64
}

type StreamStatusResponse struct {
	State   eventstream.State `json:"state"`
	Issued  int64             `json:"issued"`
	Yielded int64             `json:"yielded"`
}

func StreamStatusHandler(stream StreamStatus) echo.HandlerFunc {
	return func(c echo.Context) error {
		if stream == nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "no event stream configured")
		}
		return c.JSONPretty(http.StatusOK, StreamStatusResponse{
			State:   stream.State(),
			Issued:  stream.Issued(),
			Yielded: stream.Yielded(),
		}, "  ")
	}
}
