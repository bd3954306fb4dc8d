package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"jobtrack/internal/classify"
	"jobtrack/internal/config"
	"jobtrack/internal/scrape"
	"jobtrack/internal/store"
)

func main() {
	// Data dir: use env if provided, else local folder. Holds the user
	// config and the tracker CSV the dashboard reads.
	dataDir := os.Getenv("JOBTRACK_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	if len(os.Args) > 1 {
		defaultCfgPath = os.Args[1]
	}

	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			log.Printf("[config] error: %s", e)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	trackerPath := cfg.Tracker.Path
	if !filepath.IsAbs(trackerPath) {
		trackerPath = filepath.Join(dataDir, trackerPath)
	}

	runner := &scrape.Runner{
		Fetcher: scrape.NewFetcher(
			cfg.App.BaseURL,
			cfg.HTTP.UserAgent,
			time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second,
			time.Duration(cfg.HTTP.DelaySeconds)*time.Second,
		),
		Selectors:         scrape.MapSelectors(cfg),
		Classifier:        classify.New(cfg.Classify.MNC, cfg.Classify.Startup, cfg.Classify.MidSize),
		Tracker:           store.Open(trackerPath),
		Platform:          cfg.App.Platform,
		SkipPageOnAnomaly: cfg.Scrape.AnomalyPolicy == config.AnomalyPolicyPage,
	}

	sum, err := runner.Run(ctx, scrape.MapQueries(cfg.Queries))
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}

	fmt.Printf("\npages fetched: %d\n", sum.Fetched)
	fmt.Printf("cards parsed:  %d\n", sum.Parsed)
	fmt.Printf("jobs inserted: %d\n", sum.Inserted)
	fmt.Printf("duplicates:    %d\n", sum.Skipped)
	fmt.Printf("errors:        %d\n", sum.Errors)
	fmt.Printf("tracker:       %s\n", trackerPath)
}
