package main

import (
	"fmt"
	"io"
	"os"

	silverdiamond "github.com/silver-diamond/silver-diamond-go"
	"github.com/silver-diamond/silver-diamond-go/pkg/config"
	"github.com/silver-diamond/silver-diamond-go/pkg/log"
	"github.com/silver-diamond/silver-diamond-go/pkg/metrics"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}
	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "version":
		fmt.Println("silverdiamond cli 0.1.0")
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "config":
		os.Exit(runConfig(os.Stdout, os.Stderr))
	}

	client, err := buildClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "silverdiamond: %v\n", err)
		os.Exit(1)
	}
	code := dispatch(cmd, args, client, os.Stdout, os.Stderr)
	if os.Getenv("SILVERDIAMOND_DEBUG_METRICS") == "1" {
		if err := metrics.WritePrometheus(os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "write metrics: %v\n", err)
		}
	}
	os.Exit(code)
}

func printUsage() {
	fmt.Println("Usage: silverdiamond <command> [args]")
	fmt.Println("  language <text>                   - detect the language of text")
	fmt.Println("  language-is <text> <lang...>      - check text against language codes")
	fmt.Println("  sentiment <text>                  - classify the tone of text")
	fmt.Println("  sentiment-is <text> <label...>    - check the tone against labels")
	fmt.Println("  spam <text> [ip]                  - run spam detection")
	fmt.Println("  spam-score <text>                 - print the spam score (0-10)")
	fmt.Println("  similarity <text1> <text2>        - score two short texts (0-1)")
	fmt.Println("  keywords <text>                   - extract keywords")
	fmt.Println("  summary <text>                    - summarize text")
	fmt.Println("  translate <text> <target> [src]   - translate text, e.g. translate \"Hola\" en")
	fmt.Println("  readability <text> [lang]         - score reading ease")
	fmt.Println("  image-alt <image-url> [lang]      - describe an image")
	fmt.Println("  objects <image-url>               - recognize objects in an image")
	fmt.Println("  nudity <image-url>                - check an image for nudity")
	fmt.Println("  bert-score <url> <keyword>        - rate page relevance for a keyword")
	fmt.Println("  config                            - show the effective configuration")
	fmt.Println("  version                           - show the CLI version")
	fmt.Println()
	fmt.Println("Configuration comes from SILVERDIAMOND_* environment variables or the")
	fmt.Println("YAML file named by SILVERDIAMOND_CONFIG. The API key is required:")
	fmt.Println("  export SILVERDIAMOND_API_KEY=sk-...")
}

// buildClient assembles a client from the environment and optional
// config file.
func buildClient() (*silverdiamond.Client, error) {
	cfg, err := config.Load(os.Getenv("SILVERDIAMOND_CONFIG"))
	if err != nil {
		return nil, err
	}
	logger := log.New(&log.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, os.Stderr)

	opts := []silverdiamond.Option{silverdiamond.WithLogger(logger)}
	if cfg.BaseURL != "" {
		opts = append(opts, silverdiamond.WithBaseURL(cfg.BaseURL))
	}
	timeout, err := cfg.HTTPTimeout()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, silverdiamond.WithHTTPTimeout(timeout))
	}
	if cfg.RateLimit.RPS > 0 {
		opts = append(opts, silverdiamond.WithRateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}
	return silverdiamond.New(cfg.APIKey, opts...)
}

func runConfig(stdout, stderr io.Writer) int {
	cfg, err := config.Load(os.Getenv("SILVERDIAMOND_CONFIG"))
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	key := "unset"
	if cfg.APIKey != "" {
		key = "set"
	}
	base := cfg.BaseURL
	if base == "" {
		base = silverdiamond.DefaultBaseURL
	}
	fmt.Fprintf(stdout, "api_key=%s\n", key)
	fmt.Fprintf(stdout, "base_url=%s\n", base)
	if cfg.Timeout != "" {
		fmt.Fprintf(stdout, "timeout=%s\n", cfg.Timeout)
	}
	if cfg.RateLimit.RPS > 0 {
		fmt.Fprintf(stdout, "rate_limit.rps=%g\n", cfg.RateLimit.RPS)
		fmt.Fprintf(stdout, "rate_limit.burst=%d\n", cfg.RateLimit.Burst)
	}
	if cfg.Log.Level != "" {
		fmt.Fprintf(stdout, "log.level=%s\n", cfg.Log.Level)
	}
	if cfg.Log.Format != "" {
		fmt.Fprintf(stdout, "log.format=%s\n", cfg.Log.Format)
	}
	return 0
}
