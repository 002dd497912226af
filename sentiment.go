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

// Sentiment is the service's classification of a text's tone.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Sentiment classifies the overall tone of text.
func (c *Client) Sentiment(ctx context.Context, text string) (Sentiment, error) {
	text, err := trimmedArg("text", text)
	if err != nil {
		return "", err
	}
	env, err := c.call(ctx, "sentiment-analysis", map[string]any{"text": text}, "sentiment")
	if err != nil {
		return "", err
	}
	label, ok := env.String("sentiment")
	if !ok {
		return "", badField("sentiment-analysis", "sentiment", "a string")
	}
	return Sentiment(label), nil
}

// SentimentIs reports whether the tone of text matches one of the
// given labels. Labels are compared case-insensitively.
func (c *Client) SentimentIs(ctx context.Context, text string, sentiments ...Sentiment) (bool, error) {
	if len(sentiments) == 0 {
		return false, invalidArgument("sentiments", "must name at least one sentiment")
	}
	detected, err := c.Sentiment(ctx, text)
	if err != nil {
		return false, err
	}
	for _, s := range sentiments {
		if strings.EqualFold(string(s), string(detected)) {
			return true, nil
		}
	}
	return false, nil
}

// IsPositive reports whether text reads as positive.
func (c *Client) IsPositive(ctx context.Context, text string) (bool, error) {
	return c.SentimentIs(ctx, text, SentimentPositive)
}

// IsNeutral reports whether text reads as neutral.
func (c *Client) IsNeutral(ctx context.Context, text string) (bool, error) {
	return c.SentimentIs(ctx, text, SentimentNeutral)
}

// IsNegative reports whether text reads as negative.
func (c *Client) IsNegative(ctx context.Context, text string) (bool, error) {
	return c.SentimentIs(ctx, text, SentimentNegative)
}
