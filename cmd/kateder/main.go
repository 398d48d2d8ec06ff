package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/kateder/internal/app"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	term := newTerminal(os.Stdin, os.Stdout)

	// The 401 path lands here after the gateway has evicted the
	// credential; the run loop notices the missing session and routes
	// back to the login screen.
	onExpired := func() {
		term.say("Session expired, please log in again.")
	}

	service, err := app.NewService(*configPath, onExpired)
	if err != nil {
		logger.Error.Fatalf("Failed to start: %v", err)
	}
	defer service.Close()

	if port := service.Config.Metrics.Port; port != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(port, nil); err != nil {
				logger.Error.Printf("Metrics endpoint failed: %v", err)
			}
		}()
	}

	cli := newCLI(service, term)
	if err := cli.Run(); err != nil {
		logger.Error.Fatalf("kateder failed: %v", err)
	}
}
