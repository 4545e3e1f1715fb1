package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/NivBraz/wordfilter-service/internal/app"
	"github.com/NivBraz/wordfilter-service/internal/config"
	"github.com/NivBraz/wordfilter-service/internal/report"
)

func main() {
	fmt.Println("Word Filter Service")

	// Resolve fixed filenames relative to the executable, not the working
	// directory, so the tool can live next to its word lists.
	exe, err := os.Executable()
	if err != nil {
		log.Fatalf("Failed to locate executable: %v", err)
	}
	baseDir := filepath.Dir(exe)

	// Load configuration
	cfg, err := config.Load(baseDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context that listens for the interrupt signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the application
	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Run the application
	result, err := application.Run(ctx)
	if err != nil {
		log.Fatalf("Filtering failed: %v", err)
	}

	report.Print(os.Stdout, result, cfg.OutputPath(), report.Options{
		ListRemoved: *cfg.Report.ListRemoved,
		Color:       *cfg.Report.Color,
	})
}
