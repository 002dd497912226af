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
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/silver-diamond/silver-diamond-go/internal/envelope"
	"github.com/silver-diamond/silver-diamond-go/pkg/metrics"
)

// Outcome labels for the request counter.
const (
	outcomeOK         = "ok"
	outcomeRemote     = "remote_error"
	outcomeTransport  = "transport_error"
	outcomeUnexpected = "unexpected_response"
)

// call performs a single POST to the named endpoint and interprets the
// response body. Classification is body-driven: a body carrying a
// message or error field is a service failure whatever the HTTP status
// was, and a body carrying neither is a success. Status codes are
// never consulted.
//
// required names the fields the operation cannot do without. A clean
// response missing one of them fails with ErrUnexpectedResponse.
func (c *Client) call(ctx context.Context, endpoint string, body map[string]any, required ...string) (envelope.Envelope, error) {
	endpoint = strings.Trim(endpoint, "/")
	if c.limiter != nil {
		if err := c.waitForSlot(ctx, endpoint); err != nil {
			metrics.RequestsTotal.WithLabelValues(endpoint, outcomeTransport).Inc()
			return nil, &TransportError{Endpoint: endpoint, Err: err}
		}
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetBody(body).
		Post(c.baseURL + "/" + endpoint)
	elapsed := time.Since(start)
	metrics.RequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())

	if err != nil {
		metrics.RequestsTotal.WithLabelValues(endpoint, outcomeTransport).Inc()
		c.logger.Debug("request failed", "endpoint", endpoint, "error", err)
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	env, err := envelope.Decode(resp.Body())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(endpoint, outcomeTransport).Inc()
		c.logger.Debug("response not json", "endpoint", endpoint, "status", resp.StatusCode(), "error", err)
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("decode response body: %w", err)}
	}

	if text, ok := env.ErrorText(); ok {
		metrics.RequestsTotal.WithLabelValues(endpoint, outcomeRemote).Inc()
		c.logger.Debug("service reported error", "endpoint", endpoint, "message", text)
		return nil, &RemoteError{Endpoint: endpoint, Message: text}
	}

	for _, field := range required {
		if !env.Has(field) {
			metrics.RequestsTotal.WithLabelValues(endpoint, outcomeUnexpected).Inc()
			c.logger.Debug("response missing field", "endpoint", endpoint, "field", field)
			return nil, missingField(endpoint, field)
		}
	}

	metrics.RequestsTotal.WithLabelValues(endpoint, outcomeOK).Inc()
	c.logger.Debug("request completed", "endpoint", endpoint, "duration", elapsed)
	return env, nil
}

// waitForSlot blocks until the rate limiter admits the request or the
// context ends. Waits long enough to matter are recorded.
func (c *Client) waitForSlot(ctx context.Context, endpoint string) error {
	start := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	waited := time.Since(start)
	if waited > 100*time.Millisecond {
		metrics.RateLimitWaitSeconds.WithLabelValues(endpoint).Observe(waited.Seconds())
	}
	return nil
}
