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

// Keywords extracts the most relevant keywords of text, ordered by
// relevance. The service must answer with a list; any other shape is
// an unexpected response.
func (c *Client) Keywords(ctx context.Context, text string) ([]string, error) {
	text, err := trimmedArg("text", text)
	if err != nil {
		return nil, err
	}
	env, err := c.call(ctx, "text-rank-keywords", map[string]any{"text": text}, "keywords")
	if err != nil {
		return nil, err
	}
	keywords, ok := env.Strings("keywords")
	if !ok {
		return nil, badField("text-rank-keywords", "keywords", "a list of strings")
	}
	return keywords, nil
}
