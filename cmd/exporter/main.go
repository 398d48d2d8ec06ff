package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/kateder/internal/app"
	"github.com/shrimpsizemoose/kateder/internal/export"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	// Runs headless: an expired session just fails the export cycle.
	service, err := app.NewService(*configPath, nil)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	exporter, err := export.NewAnalyticsExporter(service.Config, service.Gateway)
	if err != nil {
		logger.Error.Fatalf("Failed to initialize analytics exporter: %v", err)
	}
	defer exporter.Close()

	exporter.Start()
	logger.Info.Printf("Exporting %d courses on schedule %q", len(service.Config.Export.Courses), service.Config.Export.Schedule)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info.Println("Exporter shutting down")
}
