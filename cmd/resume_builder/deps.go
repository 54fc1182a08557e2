package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/suggest"
)

// loadConfig resolves the config file, environment and defaults. verbose from the
// command line wins because bools cannot be merged.
func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// newProvider builds the configured suggestion provider. The returned closer releases
// the LLM client, if any.
func newProvider(ctx context.Context, cfg config.Config) (suggest.Provider, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Suggestions {
	case config.SuggestionsLLM:
		llmCfg := llm.DefaultConfig()
		if cfg.Model != "" {
			llmCfg = llmCfg.WithModel(cfg.Model)
		}
		client, err := llm.NewGemini(ctx, llmCfg, cfg.APIKey)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create LLM client: %w", err)
		}
		return suggest.NewLLM(client), client.Close, nil
	case config.SuggestionsStub, "":
		return suggest.NewStub(stubOptions...), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown suggestion provider %q", cfg.Suggestions)
}

// stubOptions configures the offline provider. Tests drop its simulated latency.
var stubOptions []suggest.StubOption

// newExporter builds the PDF exporter. Tests replace it to avoid launching Chrome.
var newExporter = func(cfg config.Config) export.Exporter {
	r := export.NewChromedpRasterizer(cfg.ChromePath, cfg.Verbose)
	if cfg.ExportTimeoutSeconds > 0 {
		r.Timeout = time.Duration(cfg.ExportTimeoutSeconds) * time.Second
	}
	return export.NewPDFExporter(r)
}
