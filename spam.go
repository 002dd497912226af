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
	"strings"
)

// SpamResult is the outcome of a spam check.
type SpamResult struct {
	Spam  bool    `json:"spam"`      // text classified as spam
	Ham   bool    `json:"ham"`       // text classified as legitimate
	Score float64 `json:"spamScore"` // 0 (clean) to 10 (certain spam); 0 when the service omits it
}

// Spam checks text for spam.
func (c *Client) Spam(ctx context.Context, text string) (*SpamResult, error) {
	return c.SpamWithIP(ctx, text, "")
}

// SpamWithIP checks text for spam, letting the service factor in the
// sender's IP reputation. A blank ip is omitted from the request.
//
// The service reports the spam and ham verdicts loosely typed (bool,
// 0/1 or null depending on version) and sometimes stringifies the
// score; both are normalized here. A score the service omits or that
// cannot be read comes back as 0.
func (c *Client) SpamWithIP(ctx context.Context, text, ip string) (*SpamResult, error) {
	text, err := trimmedArg("text", text)
	if err != nil {
		return nil, err
	}
	body := map[string]any{"text": text}
	if ip = strings.TrimSpace(ip); ip != "" {
		body["ip"] = ip
	}
	env, err := c.call(ctx, "spam-detection", body, "spam", "ham")
	if err != nil {
		return nil, err
	}
	return &SpamResult{
		Spam:  env.Truthy("spam"),
		Ham:   env.Truthy("ham"),
		Score: env.FloatOr("spamScore", 0),
	}, nil
}

// IsSpam reports whether text is classified as spam.
func (c *Client) IsSpam(ctx context.Context, text string) (bool, error) {
	res, err := c.Spam(ctx, text)
	if err != nil {
		return false, err
	}
	return res.Spam, nil
}

// IsHam reports whether text is classified as legitimate.
func (c *Client) IsHam(ctx context.Context, text string) (bool, error) {
	res, err := c.Spam(ctx, text)
	if err != nil {
		return false, err
	}
	return res.Ham, nil
}

// SpamScore returns the spam score of text, 0 to 10.
func (c *Client) SpamScore(ctx context.Context, text string) (float64, error) {
	res, err := c.Spam(ctx, text)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}
