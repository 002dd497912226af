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

// BertScore rates how relevant the page at pageURL is for keyword,
// the way a search engine's language model would see it.
func (c *Client) BertScore(ctx context.Context, pageURL, keyword string) (float64, error) {
	pageURL, err := trimmedArg("url", pageURL)
	if err != nil {
		return 0, err
	}
	keyword, err = trimmedArg("keyword", keyword)
	if err != nil {
		return 0, err
	}
	env, err := c.call(ctx, "bert-score", map[string]any{
		"url":     pageURL,
		"keyword": keyword,
	}, "bert_score")
	if err != nil {
		return 0, err
	}
	score, ok := env.Float("bert_score")
	if !ok {
		return 0, badField("bert-score", "bert_score", "a number")
	}
	return score, nil
}
