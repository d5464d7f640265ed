package eventcollector

import (
	"context"

	"code.cloudfoundry.org/lager"
	"github.com/alphagov/paas-runtime-poller/eventio"
	"github.com/pkg/errors"
)

var _ eventio.EventHandler = &LoggingHandler{}

// LoggingHandler records each event it receives and does nothing else
type LoggingHandler struct {
	Logger lager.Logger
}

func (h *LoggingHandler) HandleEvent(ctx context.Context, resp *eventio.Response) error {
	if resp == nil {
		return errors.New("event has no response")
	}
	h.Logger.Info("event", lager.Data{
		"request_id": resp.RequestID(),
		"status":     resp.StatusCode,
		"bytes":      len(resp.Body),
	})
	return nil
}
