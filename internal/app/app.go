package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/NivBraz/wordfilter-service/internal/config"
	"github.com/NivBraz/wordfilter-service/internal/models"
	"github.com/NivBraz/wordfilter-service/pkg/blocklist"
	"github.com/NivBraz/wordfilter-service/pkg/fetcher"
	"github.com/NivBraz/wordfilter-service/pkg/filter"
	"github.com/schollz/progressbar/v3"
)

// App represents the main application
type App struct {
	config  *config.Config
	fetcher *fetcher.Fetcher
}

// New creates a new instance of the application
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &App{config: cfg}

	// The fetcher is only needed when a remote list source is configured.
	if cfg.Remote.BlocklistURL != "" || cfg.Remote.WordlistURL != "" {
		a.fetcher = fetcher.New(fetcher.FetcherConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			Timeout:           time.Duration(cfg.HTTPClient.Timeout) * time.Second,
			UserAgent:         cfg.HTTPClient.UserAgent,
			MaxRetries:        cfg.HTTPClient.MaxRetries,
		})
	}

	return a, nil
}

// Run loads the blocklist, filters the wordlist and returns the result.
func (a *App) Run(ctx context.Context) (*models.Result, error) {
	startTime := time.Now()

	fmt.Println("Loading blocklist...")
	blocked, err := a.loadBlocklist(ctx)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Loaded %d blocked single-words\n", blocked.Len())

	inputPath, cleanup, err := a.resolveWordlist(ctx)
	if err != nil {
		return nil, err
	}
	if cleanup != nil {
		defer cleanup()
	}

	fmt.Println("\nFiltering wordlist...")
	bar := newBar(-1, "Filtering wordlist...")
	result, err := filter.Run(ctx, inputPath, a.config.OutputPath(), blocked, func() {
		bar.Add(1)
	})
	bar.Finish()
	if err != nil {
		return nil, err
	}

	result.Stats.TimeElapsed = int(time.Since(startTime).Milliseconds())
	return result, nil
}

// loadBlocklist builds the blocked-word set from the configured source.
func (a *App) loadBlocklist(ctx context.Context) (*blocklist.Blocklist, error) {
	blocked := blocklist.New()

	if url := a.config.Remote.BlocklistURL; url != "" {
		content, err := a.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch blocklist: %w", err)
		}
		if err := blocked.LoadReader(bytes.NewReader(content)); err != nil {
			return nil, err
		}
		return blocked, nil
	}

	if err := blocked.LoadFile(a.config.BlocklistPath()); err != nil {
		return nil, err
	}
	return blocked, nil
}

// resolveWordlist returns the local path of the wordlist to filter,
// downloading it to a temp file first when a remote URL is configured.
func (a *App) resolveWordlist(ctx context.Context) (string, func(), error) {
	url := a.config.Remote.WordlistURL
	if url == "" {
		return a.config.WordlistPath(), nil, nil
	}

	content, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch wordlist: %w", err)
	}

	tmp, err := os.CreateTemp("", "wordfilter-*.txt")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp wordlist: %w", err)
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("failed to write temp wordlist: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("failed to close temp wordlist: %w", err)
	}

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}

func newBar(max int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
