package client

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// Client talks to a Rayhunter device's HTTP API. The device only speaks plain
// HTTP on its local interface; there is no TLS and no authentication.
type Client struct {
	HTTP *resty.Client
	log  *slog.Logger
}

// Option adjusts client construction.
type Option func(*Client)

// WithLogger routes per-request log entries to the given logger. Without it
// the client stays silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.log = logger }
}

// New builds a client for the device reachable at host:port.
func New(host string, port int, opts ...Option) *Client {
	r := resty.New()
	r.SetBaseURL(fmt.Sprintf("http://%s:%d", host, port))
	r.SetHeader("Accept", "application/json")

	c := &Client{
		HTTP: r,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	// One cross-cutting hook instead of a log call in every method.
	r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		c.log.Info("rayhunter request", "method", req.Method, "url", req.URL)
		return nil
	})
	r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.log.Info("rayhunter response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time())
		return nil
	})

	return c
}
