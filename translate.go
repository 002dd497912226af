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

// Translate translates text into the target language, letting the
// service detect the source language.
func (c *Client) Translate(ctx context.Context, text string, target Language) (string, error) {
	return c.TranslateFrom(ctx, text, "", target)
}

// TranslateFrom translates text from the source language into the
// target language. A blank source falls back to detection.
func (c *Client) TranslateFrom(ctx context.Context, text string, source, target Language) (string, error) {
	text, err := trimmedArg("text", text)
	if err != nil {
		return "", err
	}
	tgt := strings.TrimSpace(string(target))
	if tgt == "" {
		return "", invalidArgument("target language", "must not be empty")
	}
	body := map[string]any{"text": text, "target_lang": tgt}
	if src := strings.TrimSpace(string(source)); src != "" {
		body["source_lang"] = src
	}
	env, err := c.call(ctx, "translation", body, "translation")
	if err != nil {
		return "", err
	}
	translated, ok := env.String("translation")
	if !ok {
		return "", badField("translation", "translation", "a string")
	}
	return translated, nil
}
