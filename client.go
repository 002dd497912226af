// Copyright 2026 Silver Diamond
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package silverdiamond

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production endpoint of the Silver Diamond API.
const DefaultBaseURL = "https://api.silverdiamond.io/v1/service"

// Client calls the Silver Diamond text and image analysis API. It is
// stateless apart from its configuration: methods share no mutable
// state, so a single Client is safe for concurrent use.
//
// Every call is a single attempt. The client does not retry and does
// not impose a timeout of its own; use WithHTTPTimeout, WithRateLimit
// or a context deadline to bound calls.
type Client struct {
	http    *resty.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures a Client. Options are applied in order.
type Option func(*Client)

// WithBaseURL points the client at a different API root, e.g. a
// staging deployment or a test server. A trailing slash is ignored.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		u = strings.TrimRight(strings.TrimSpace(u), "/")
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPTimeout bounds each HTTP exchange. Without it the client
// waits as long as the context allows.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithHTTPClient runs all requests through hc, keeping its transport,
// proxy and TLS settings.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = resty.NewWithClient(hc)
		}
	}
}

// WithLogger enables debug logging of requests and outcomes. The
// client is silent without it.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRateLimit caps outgoing requests at rps per second with the
// given burst. Calls block (honoring the context) until the limiter
// admits them. Useful for staying inside a plan's quota.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New returns a Client authenticated with apiKey. The key is sent as a
// bearer token on every request. An empty or blank key is a
// configuration error.
func New(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	c := &Client{
		http:    resty.New(),
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// trimmedArg normalizes a required text argument. Leading and trailing
// whitespace is stripped before any other handling; an argument that
// is empty afterwards fails the call without a request being sent.
func trimmedArg(name, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", invalidArgument(name, "must not be empty")
	}
	return v, nil
}
