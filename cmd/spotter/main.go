package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"overpass-api/internal/config"
	"overpass-api/internal/lookup"
	"overpass-api/internal/service"
)

func main() {
	configPath := flag.String("config", "./configs", "Path to the configuration directory")
	timeout := flag.Duration("timeout", time.Minute, "Overall deadline for the three lookups")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	ipClient := lookup.NewIPClient(cfg.IPEchoURL, httpClient)
	geoClient := lookup.NewGeoClient(cfg.GeoIPURL, httpClient)
	overpassClient := lookup.NewOverpassClient(cfg.OverpassURL, httpClient)

	svc := service.NewOverpassService(ipClient, geoClient, overpassClient)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	passes, err := svc.UpcomingPasses(ctx)
	if err != nil {
		fmt.Printf("Error looking up passes: %v\n", err)
		os.Exit(1)
	}

	for _, pass := range passes {
		risetime := time.Unix(pass.Risetime, 0)
		fmt.Printf("Next pass at %s for %d seconds!\n", risetime.Format("Mon Jan 2 15:04:05 MST 2006"), pass.Duration)
	}
}
