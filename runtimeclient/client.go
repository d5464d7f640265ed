package runtimeclient

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/alphagov/paas-runtime-poller/eventio"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var _ eventio.EventClient = &Client{}

// Client performs exchanges against a fixed scheme and authority. Only the
// path and query of each request are taken from the caller.
type Client struct {
	scheme     string
	authority  string
	httpClient *http.Client
	logger     lager.Logger
	metrics    *metrics
}

type Config struct {
	// Scheme must be http or https
	Scheme string
	// Authority is the host[:port] of the runtime API
	Authority string
	// HTTPClient overrides the default client. No timeout is applied by default.
	HTTPClient *http.Client
	Logger     lager.Logger
	// Registerer receives the client metrics, a private registry is used if nil
	Registerer prometheus.Registerer
}

func New(cfg Config) (*Client, error) {
	if cfg.Scheme != "http" && cfg.Scheme != "https" {
		return nil, errors.Errorf("runtimeclient.New: scheme must be http or https, got %q", cfg.Scheme)
	}
	if err := validateAuthority(cfg.Authority); err != nil {
		return nil, err
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("runtime-client")
	}
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.NewRegistry()
	}
	m, err := newMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}
	return &Client{
		scheme:     cfg.Scheme,
		authority:  cfg.Authority,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
		metrics:    m,
	}, nil
}

func validateAuthority(authority string) error {
	if authority == "" {
		return errors.New("runtimeclient.New: authority is required")
	}
	u, err := url.Parse("//" + authority)
	if err != nil {
		return errors.Wrapf(err, "runtimeclient.New: invalid authority %q", authority)
	}
	if u.Host != authority || u.User != nil || u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return errors.Errorf("runtimeclient.New: authority must be host[:port], got %q", authority)
	}
	return nil
}

// ResolveTarget replaces the scheme and authority of target with the
// client's own, keeping the path and query exactly as given.
func (c *Client) ResolveTarget(target string) (*url.URL, error) {
	pq, err := url.ParseRequestURI(target)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid request target %q", target)
	}
	if pq.Path == "" {
		return nil, errors.Errorf("request target %q has no path", target)
	}
	return &url.URL{
		Scheme:     c.scheme,
		Host:       c.authority,
		Path:       pq.Path,
		RawPath:    pq.RawPath,
		RawQuery:   pq.RawQuery,
		ForceQuery: pq.ForceQuery,
	}, nil
}

// Call starts one exchange and returns immediately. The exchange resolves
// with the fully buffered response or a single error. Abandoning the
// exchange cancels the underlying request.
func (c *Client) Call(ctx context.Context, req *eventio.Request) *eventio.Exchange {
	ctx, cancel := context.WithCancel(ctx)
	exchange := eventio.NewExchange(cancel)
	go func() {
		defer cancel()
		exchange.Resolve(c.do(ctx, exchange.ID, req))
	}()
	return exchange
}

func (c *Client) do(ctx context.Context, id string, req *eventio.Request) (*eventio.Response, error) {
	startTime := time.Now()
	resp, err := c.roundTrip(ctx, id, req)
	elapsed := time.Since(startTime)
	c.metrics.duration.Observe(elapsed.Seconds())
	if err != nil {
		c.metrics.exchanges.WithLabelValues("error").Inc()
		c.logger.Error("exchange-failed", err, lager.Data{
			"exchange_id": id,
			"elapsed":     elapsed.String(),
		})
		return nil, err
	}
	c.metrics.exchanges.WithLabelValues("ok").Inc()
	c.logger.Debug("exchange-completed", lager.Data{
		"exchange_id": id,
		"status":      resp.StatusCode,
		"bytes":       len(resp.Body),
		"elapsed":     elapsed.String(),
	})
	return resp, nil
}

func (c *Client) roundTrip(ctx context.Context, id string, req *eventio.Request) (*eventio.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	target, err := c.ResolveTarget(req.Target)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), bytes.NewReader(req.Body))
	if err != nil {
		return nil, errors.Wrapf(err, "error building %s %s", req.Method, req.Target)
	}
	// NewRequest re-parses the URL; put the exact path and query back
	httpReq.URL = target
	for k, vv := range req.Header {
		for _, v := range vv {
			httpReq.Header.Add(k, v)
		}
	}

	c.logger.Debug("exchange-started", lager.Data{
		"exchange_id": id,
		"method":      req.Method,
		"target":      target.RequestURI(),
	})

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(err, "error fetching %s", req.Target)
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body)
	if err != nil {
		return nil, err
	}
	return &eventio.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
