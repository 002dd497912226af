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

// Similarity scores how close two short texts are in meaning, from 0
// (unrelated) to 1 (same meaning). Both texts must be non-blank.
func (c *Client) Similarity(ctx context.Context, text1, text2 string) (float64, error) {
	text1, err := trimmedArg("text1", text1)
	if err != nil {
		return 0, err
	}
	text2, err = trimmedArg("text2", text2)
	if err != nil {
		return 0, err
	}
	env, err := c.call(ctx, "short-text-similarity", map[string]any{
		"texts": []string{text1, text2},
	}, "similarity")
	if err != nil {
		return 0, err
	}
	score, ok := env.Float("similarity")
	if !ok {
		return 0, badField("short-text-similarity", "similarity", "a number")
	}
	return score, nil
}
