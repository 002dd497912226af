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

// ImageAltResult is a generated description of an image.
type ImageAltResult struct {
	Alt        string  `json:"alt"`        // alt text for the image
	Confidence float64 `json:"confidence"` // service confidence in the description
}

// ImageAlt describes the image at imageURL in English, suitable for
// an alt attribute.
func (c *Client) ImageAlt(ctx context.Context, imageURL string) (*ImageAltResult, error) {
	return c.ImageAltInLanguage(ctx, imageURL, LanguageEnglish)
}

// ImageAltInLanguage describes the image at imageURL in the given
// language. A blank language falls back to English.
func (c *Client) ImageAltInLanguage(ctx context.Context, imageURL string, lang Language) (*ImageAltResult, error) {
	imageURL, err := trimmedArg("image url", imageURL)
	if err != nil {
		return nil, err
	}
	code := strings.TrimSpace(string(lang))
	if code == "" {
		code = string(LanguageEnglish)
	}
	env, err := c.call(ctx, "image-alt-detection", map[string]any{
		"image_url": imageURL,
		"lang":      code,
	}, "alt", "confidence")
	if err != nil {
		return nil, err
	}
	alt, ok := env.String("alt")
	if !ok {
		return nil, badField("image-alt-detection", "alt", "a string")
	}
	confidence, ok := env.Float("confidence")
	if !ok {
		return nil, badField("image-alt-detection", "confidence", "a number")
	}
	return &ImageAltResult{Alt: alt, Confidence: confidence}, nil
}
