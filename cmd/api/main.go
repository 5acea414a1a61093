package main

import (
	"net/http"

	"overpass-api/internal/config"
	"overpass-api/internal/handler"
	"overpass-api/internal/lookup"
	"overpass-api/internal/metrics"
	"overpass-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Shared client; the timeout bounds each individual lookup round trip
	httpClient := &http.Client{Timeout: config.HTTPTimeout}

	// Initialize layers
	ipClient := lookup.NewIPClient(config.IPEchoURL, httpClient)
	geoClient := lookup.NewGeoClient(config.GeoIPURL, httpClient)
	overpassClient := lookup.NewOverpassClient(config.OverpassURL, httpClient)

	overpassService := service.NewOverpassService(ipClient, geoClient, overpassClient)

	passHandler := handler.NewPassHandler(overpassService)

	r := gin.Default()
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/passes", passHandler.Passes)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.Run(config.ServerAddress)
}
