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

import "context"

// NudityResult is the outcome of a nudity check on an image.
type NudityResult struct {
	HasNudity   bool    `json:"has_nudity"`
	Probability float64 `json:"probability"` // 0 to 1; 0 when the service omits it
}

// Nudity checks the image at imageURL for nudity. The verdict flag is
// normalized from whatever loose form the service sends; a missing or
// unreadable probability comes back as 0.
func (c *Client) Nudity(ctx context.Context, imageURL string) (*NudityResult, error) {
	imageURL, err := trimmedArg("image url", imageURL)
	if err != nil {
		return nil, err
	}
	env, err := c.call(ctx, "nudity-detection", map[string]any{
		"image_url": imageURL,
	}, "has_nudity")
	if err != nil {
		return nil, err
	}
	return &NudityResult{
		HasNudity:   env.Truthy("has_nudity"),
		Probability: env.FloatOr("probability", 0),
	}, nil
}

// HasNudity reports whether the image at imageURL contains nudity.
func (c *Client) HasNudity(ctx context.Context, imageURL string) (bool, error) {
	res, err := c.Nudity(ctx, imageURL)
	if err != nil {
		return false, err
	}
	return res.HasNudity, nil
}

// NudityProbability returns the probability that the image at
// imageURL contains nudity, 0 to 1.
func (c *Client) NudityProbability(ctx context.Context, imageURL string) (float64, error) {
	res, err := c.Nudity(ctx, imageURL)
	if err != nil {
		return 0, err
	}
	return res.Probability, nil
}
