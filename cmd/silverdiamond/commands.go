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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	silverdiamond "github.com/silver-diamond/silver-diamond-go"
)

// dispatch runs an analysis command against the client and returns the
// process exit code. Results go to stdout, diagnostics to stderr.
func dispatch(cmd string, args []string, c *silverdiamond.Client, stdout, stderr io.Writer) int {
	switch cmd {
	case "language":
		return runLanguage(c, args, stdout, stderr)
	case "language-is":
		return runLanguageIs(c, args, stdout, stderr)
	case "sentiment":
		return runSentiment(c, args, stdout, stderr)
	case "sentiment-is":
		return runSentimentIs(c, args, stdout, stderr)
	case "spam":
		return runSpam(c, args, stdout, stderr)
	case "spam-score":
		return runSpamScore(c, args, stdout, stderr)
	case "similarity":
		return runSimilarity(c, args, stdout, stderr)
	case "keywords":
		return runKeywords(c, args, stdout, stderr)
	case "summary":
		return runSummary(c, args, stdout, stderr)
	case "translate":
		return runTranslate(c, args, stdout, stderr)
	case "readability":
		return runReadability(c, args, stdout, stderr)
	case "image-alt":
		return runImageAlt(c, args, stdout, stderr)
	case "objects":
		return runObjects(c, args, stdout, stderr)
	case "nudity":
		return runNudity(c, args, stdout, stderr)
	case "bert-score":
		return runBertScore(c, args, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q, run \"silverdiamond help\"\n", cmd)
		return 1
	}
}

func fail(stderr io.Writer, cmd string, err error) int {
	fmt.Fprintf(stderr, "%s: %v\n", cmd, err)
	return 1
}

func usage(stderr io.Writer, line string) int {
	fmt.Fprintln(stderr, "Usage: silverdiamond "+line)
	return 1
}

func prettyJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func runLanguage(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		return usage(stderr, "language <text>")
	}
	lang, err := c.Language(context.Background(), args[0])
	if err != nil {
		return fail(stderr, "language", err)
	}
	fmt.Fprintln(stdout, lang)
	return 0
}

func runLanguageIs(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		return usage(stderr, "language-is <text> <lang...>")
	}
	languages := make([]silverdiamond.Language, 0, len(args)-1)
	for _, code := range args[1:] {
		languages = append(languages, silverdiamond.Language(code))
	}
	ok, err := c.LanguageIs(context.Background(), args[0], languages...)
	if err != nil {
		return fail(stderr, "language-is", err)
	}
	fmt.Fprintln(stdout, ok)
	return 0
}

func runSentiment(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		return usage(stderr, "sentiment <text>")
	}
	s, err := c.Sentiment(context.Background(), args[0])
	if err != nil {
		return fail(stderr, "sentiment", err)
	}
	fmt.Fprintln(stdout, s)
	return 0
}

func runSentimentIs(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		return usage(stderr, "sentiment-is <text> <label...>")
	}
	labels := make([]silverdiamond.Sentiment, 0, len(args)-1)
	for _, label := range args[1:] {
		labels = append(labels, silverdiamond.Sentiment(label))
	}
	ok, err := c.SentimentIs(context.Background(), args[0], labels...)
	if err != nil {
		return fail(stderr, "sentiment-is", err)
	}
	fmt.Fprintln(stdout, ok)
	return 0
}

func runSpam(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 || len(args) > 2 {
		return usage(stderr, "spam <text> [ip]")
	}
	ip := ""
	if len(args) == 2 {
		ip = args[1]
	}
	res, err := c.SpamWithIP(context.Background(), args[0], ip)
	if err != nil {
		return fail(stderr, "spam", err)
	}
	fmt.Fprintln(stdout, prettyJSON(res))
	return 0
}

func runSpamScore(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		return usage(stderr, "spam-score <text>")
	}
	score, err := c.SpamScore(context.Background(), args[0])
	if err != nil {
		return fail(stderr, "spam-score", err)
	}
	fmt.Fprintln(stdout, score)
	return 0
}

func runSimilarity(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		return usage(stderr, "similarity <text1> <text2>")
	}
	score, err := c.Similarity(context.Background(), args[0], args[1])
	if err != nil {
		return fail(stderr, "similarity", err)
	}
	fmt.Fprintln(stdout, score)
	return 0
}

func runKeywords(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		return usage(stderr, "keywords <text>")
	}
	keywords, err := c.Keywords(context.Background(), args[0])
	if err != nil {
		return fail(stderr, "keywords", err)
	}
	fmt.Fprintln(stdout, prettyJSON(keywords))
	return 0
}

func runSummary(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		return usage(stderr, "summary <text>")
	}
	summary, err := c.Summary(context.Background(), args[0])
	if err != nil {
		return fail(stderr, "summary", err)
	}
	fmt.Fprintln(stdout, summary)
	return 0
}

func runTranslate(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 || len(args) > 3 {
		return usage(stderr, "translate <text> <target> [source]")
	}
	source := silverdiamond.Language("")
	if len(args) == 3 {
		source = silverdiamond.Language(args[2])
	}
	out, err := c.TranslateFrom(context.Background(), args[0], source, silverdiamond.Language(args[1]))
	if err != nil {
		return fail(stderr, "translate", err)
	}
	fmt.Fprintln(stdout, out)
	return 0
}

func runReadability(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 || len(args) > 2 {
		return usage(stderr, "readability <text> [lang]")
	}
	lang := silverdiamond.LanguageEnglish
	if len(args) == 2 {
		lang = silverdiamond.Language(args[1])
	}
	res, err := c.ReadabilityInLanguage(context.Background(), args[0], lang)
	if err != nil {
		return fail(stderr, "readability", err)
	}
	fmt.Fprintln(stdout, prettyJSON(res))
	return 0
}

func runImageAlt(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 || len(args) > 2 {
		return usage(stderr, "image-alt <image-url> [lang]")
	}
	lang := silverdiamond.LanguageEnglish
	if len(args) == 2 {
		lang = silverdiamond.Language(args[1])
	}
	res, err := c.ImageAltInLanguage(context.Background(), args[0], lang)
	if err != nil {
		return fail(stderr, "image-alt", err)
	}
	fmt.Fprintln(stdout, prettyJSON(res))
	return 0
}

func runObjects(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		return usage(stderr, "objects <image-url>")
	}
	objects, err := c.Objects(context.Background(), args[0])
	if err != nil {
		return fail(stderr, "objects", err)
	}
	fmt.Fprintln(stdout, prettyJSON(objects))
	return 0
}

func runNudity(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		return usage(stderr, "nudity <image-url>")
	}
	res, err := c.Nudity(context.Background(), args[0])
	if err != nil {
		return fail(stderr, "nudity", err)
	}
	fmt.Fprintln(stdout, prettyJSON(res))
	return 0
}

func runBertScore(c *silverdiamond.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		return usage(stderr, "bert-score <url> <keyword>")
	}
	score, err := c.BertScore(context.Background(), args[0], args[1])
	if err != nil {
		return fail(stderr, "bert-score", err)
	}
	fmt.Fprintln(stdout, score)
	return 0
}
