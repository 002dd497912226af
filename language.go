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

// Language is an ISO 639-1 language code as the service reports it.
type Language string

// Languages with a dedicated convenience check. Any other ISO 639-1
// code the service detects is returned as-is.
const (
	LanguageSpanish    Language = "es"
	LanguageEnglish    Language = "en"
	LanguageGerman     Language = "de"
	LanguageFrench     Language = "fr"
	LanguagePortuguese Language = "pt"
	LanguageItalian    Language = "it"
	LanguageDutch      Language = "nl"
	LanguagePolish     Language = "pl"
	LanguageRussian    Language = "ru"
)

// Language detects the language text is written in.
func (c *Client) Language(ctx context.Context, text string) (Language, error) {
	text, err := trimmedArg("text", text)
	if err != nil {
		return "", err
	}
	env, err := c.call(ctx, "language-detection", map[string]any{"text": text}, "language")
	if err != nil {
		return "", err
	}
	code, ok := env.String("language")
	if !ok {
		return "", badField("language-detection", "language", "a string")
	}
	return Language(code), nil
}

// LanguageIs reports whether text is written in one of the given
// languages. Codes are compared case-insensitively.
func (c *Client) LanguageIs(ctx context.Context, text string, languages ...Language) (bool, error) {
	if len(languages) == 0 {
		return false, invalidArgument("languages", "must name at least one language")
	}
	detected, err := c.Language(ctx, text)
	if err != nil {
		return false, err
	}
	for _, l := range languages {
		if strings.EqualFold(string(l), string(detected)) {
			return true, nil
		}
	}
	return false, nil
}

// LanguageIsSpanish reports whether text is written in Spanish.
func (c *Client) LanguageIsSpanish(ctx context.Context, text string) (bool, error) {
	return c.LanguageIs(ctx, text, LanguageSpanish)
}

// LanguageIsEnglish reports whether text is written in English.
func (c *Client) LanguageIsEnglish(ctx context.Context, text string) (bool, error) {
	return c.LanguageIs(ctx, text, LanguageEnglish)
}

// LanguageIsGerman reports whether text is written in German.
func (c *Client) LanguageIsGerman(ctx context.Context, text string) (bool, error) {
	return c.LanguageIs(ctx, text, LanguageGerman)
}

// LanguageIsFrench reports whether text is written in French.
func (c *Client) LanguageIsFrench(ctx context.Context, text string) (bool, error) {
	return c.LanguageIs(ctx, text, LanguageFrench)
}

// LanguageIsPortuguese reports whether text is written in Portuguese.
func (c *Client) LanguageIsPortuguese(ctx context.Context, text string) (bool, error) {
	return c.LanguageIs(ctx, text, LanguagePortuguese)
}

// LanguageIsItalian reports whether text is written in Italian.
func (c *Client) LanguageIsItalian(ctx context.Context, text string) (bool, error) {
	return c.LanguageIs(ctx, text, LanguageItalian)
}

// LanguageIsDutch reports whether text is written in Dutch.
func (c *Client) LanguageIsDutch(ctx context.Context, text string) (bool, error) {
	return c.LanguageIs(ctx, text, LanguageDutch)
}

// LanguageIsPolish reports whether text is written in Polish.
func (c *Client) LanguageIsPolish(ctx context.Context, text string) (bool, error) {
	return c.LanguageIs(ctx, text, LanguagePolish)
}

// LanguageIsRussian reports whether text is written in Russian.
func (c *Client) LanguageIsRussian(ctx context.Context, text string) (bool, error) {
	return c.LanguageIs(ctx, text, LanguageRussian)
}
