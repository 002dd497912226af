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

// Summary condenses text into its most representative sentences.
func (c *Client) Summary(ctx context.Context, text string) (string, error) {
	text, err := trimmedArg("text", text)
	if err != nil {
		return "", err
	}
	env, err := c.call(ctx, "text-rank-summary", map[string]any{"text": text}, "summary")
	if err != nil {
		return "", err
	}
	summary, ok := env.String("summary")
	if !ok {
		return "", badField("text-rank-summary", "summary", "a string")
	}
	return summary, nil
}
