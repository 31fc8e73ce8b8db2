package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/noah-isme/attendance-tracker-api/internal/report"
	"github.com/noah-isme/attendance-tracker-api/internal/repository"
	"github.com/noah-isme/attendance-tracker-api/internal/service"
	"github.com/noah-isme/attendance-tracker-api/pkg/config"
	"github.com/noah-isme/attendance-tracker-api/pkg/database"
)

func main() {
	noColor := flag.Bool("no-color", false, "disable coloured output")
	timeout := flag.Duration("timeout", 10*time.Second, "database timeout")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		color.Red("Error opening database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	analytics := service.NewAnalyticsService(repository.NewAnalyticsRepository(db), nil, nil)
	stats, err := analytics.Compute(ctx)
	if err != nil {
		color.Red("Error computing analytics: %v", err)
		os.Exit(1)
	}

	report.Render(os.Stdout, *stats)
}
