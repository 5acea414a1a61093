package service

import (
	"context"
	"fmt"

	"overpass-api/internal/metrics"
	"overpass-api/internal/models"
)

// OverpassService contains the core orchestration logic: public IP discovery,
// geolocation by IP, and overpass prediction by coordinates, chained in
// strict sequence.
type OverpassService struct {
	ip     IPLookup
	geo    GeoLookup
	passes PassLookup
}

// IPLookup interface for dependency injection
type IPLookup interface {
	CurrentIP(ctx context.Context) (string, error)
}

// GeoLookup interface for dependency injection
type GeoLookup interface {
	LocationByIP(ctx context.Context, ip string) (models.Coordinates, error)
}

// PassLookup interface for dependency injection
type PassLookup interface {
	PassesByLocation(ctx context.Context, coords models.Coordinates) ([]models.Pass, error)
}

// NewOverpassService creates a new overpass service
func NewOverpassService(ip IPLookup, geo GeoLookup, passes PassLookup) *OverpassService {
	return &OverpassService{ip: ip, geo: geo, passes: passes}
}

// UpcomingPasses resolves the caller's location from its public IP and
// returns the upcoming overpass windows for that location, in the order the
// prediction source reported them.
//
// The three lookups run in strict sequence; the first failure short-circuits
// the chain and is returned tagged with the stage that produced it. Every
// call performs three fresh lookups; nothing is cached between calls.
func (s *OverpassService) UpcomingPasses(ctx context.Context) ([]models.Pass, error) {
	ip, err := s.ip.CurrentIP(ctx)
	metrics.ObserveLookup("ip", err)
	if err != nil {
		return nil, fmt.Errorf("ip lookup: %w", err)
	}

	coords, err := s.geo.LocationByIP(ctx, ip)
	metrics.ObserveLookup("geo", err)
	if err != nil {
		return nil, fmt.Errorf("geolocation lookup: %w", err)
	}

	passes, err := s.passes.PassesByLocation(ctx, coords)
	metrics.ObserveLookup("passes", err)
	if err != nil {
		return nil, fmt.Errorf("overpass lookup: %w", err)
	}

	return passes, nil
}
