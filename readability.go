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

// ReadabilityCategory is the service's reading-ease band, from very
// easy down to very confusing.
type ReadabilityCategory string

const (
	ReadabilityVeryEasy        ReadabilityCategory = "very easy"
	ReadabilityEasy            ReadabilityCategory = "easy"
	ReadabilityFairlyEasy      ReadabilityCategory = "fairly easy"
	ReadabilityStandard        ReadabilityCategory = "standard"
	ReadabilityFairlyDifficult ReadabilityCategory = "fairly difficult"
	ReadabilityDifficult       ReadabilityCategory = "difficult"
	ReadabilityVeryConfusing   ReadabilityCategory = "very confusing"
)

// Category bands for the IsReadable / IsNotReadable split. Standard
// and above count as readable.
var (
	readableCategories = []ReadabilityCategory{
		ReadabilityVeryEasy, ReadabilityEasy, ReadabilityFairlyEasy, ReadabilityStandard,
	}
	unreadableCategories = []ReadabilityCategory{
		ReadabilityFairlyDifficult, ReadabilityDifficult, ReadabilityVeryConfusing,
	}
)

// ReadabilityResult is the outcome of a readability analysis.
type ReadabilityResult struct {
	Score       float64             `json:"score"`       // reading-ease score, higher is easier
	Readability ReadabilityCategory `json:"readability"` // band the score falls in
}

// Readability scores how easy text is to read, assuming English.
func (c *Client) Readability(ctx context.Context, text string) (*ReadabilityResult, error) {
	return c.ReadabilityInLanguage(ctx, text, LanguageEnglish)
}

// ReadabilityInLanguage scores how easy text is to read in the given
// language. A blank language falls back to English.
func (c *Client) ReadabilityInLanguage(ctx context.Context, text string, lang Language) (*ReadabilityResult, error) {
	text, err := trimmedArg("text", text)
	if err != nil {
		return nil, err
	}
	code := strings.TrimSpace(string(lang))
	if code == "" {
		code = string(LanguageEnglish)
	}
	env, err := c.call(ctx, "text-readability", map[string]any{
		"text": text,
		"lang": code,
	}, "score", "readability")
	if err != nil {
		return nil, err
	}
	score, ok := env.Float("score")
	if !ok {
		return nil, badField("text-readability", "score", "a number")
	}
	category, ok := env.String("readability")
	if !ok {
		return nil, badField("text-readability", "readability", "a string")
	}
	return &ReadabilityResult{
		Score:       score,
		Readability: ReadabilityCategory(category),
	}, nil
}

// ReadabilityScore returns the reading-ease score of text.
func (c *Client) ReadabilityScore(ctx context.Context, text string) (float64, error) {
	res, err := c.Readability(ctx, text)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

// ReadabilityCategory returns the reading-ease band of text.
func (c *Client) ReadabilityCategory(ctx context.Context, text string) (ReadabilityCategory, error) {
	res, err := c.Readability(ctx, text)
	if err != nil {
		return "", err
	}
	return res.Readability, nil
}

// ReadabilityIs reports whether the reading-ease band of text matches
// one of the given categories. Categories are compared
// case-insensitively.
func (c *Client) ReadabilityIs(ctx context.Context, text string, categories ...ReadabilityCategory) (bool, error) {
	if len(categories) == 0 {
		return false, invalidArgument("categories", "must name at least one category")
	}
	res, err := c.Readability(ctx, text)
	if err != nil {
		return false, err
	}
	for _, cat := range categories {
		if strings.EqualFold(string(cat), string(res.Readability)) {
			return true, nil
		}
	}
	return false, nil
}

// IsReadable reports whether text lands in a readable band, standard
// or easier.
func (c *Client) IsReadable(ctx context.Context, text string) (bool, error) {
	return c.ReadabilityIs(ctx, text, readableCategories...)
}

// IsNotReadable reports whether text lands in a difficult band.
func (c *Client) IsNotReadable(ctx context.Context, text string) (bool, error) {
	return c.ReadabilityIs(ctx, text, unreadableCategories...)
}
