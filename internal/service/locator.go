// Package service contains the business logic for the skip catalog API.
// Services validate inputs, enforce the fallback policy, and orchestrate
// repo and upstream calls. No HTTP or storage specifics live here; services
// depend on interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/remwaste/skip-catalog/internal/domain"
	"github.com/remwaste/skip-catalog/internal/repo"
)

// UpstreamFetcher is the provider-side dependency of the locator.
// Implemented by upstream.Client; tests inject a mock.
type UpstreamFetcher interface {
	FetchByLocation(ctx context.Context, postcode, area string) ([]domain.Skip, error)
}

// LocatorService resolves a location query into skip offerings, preferring
// the upstream provider and falling back to the local store on any upstream
// failure. It is stateless across calls.
type LocatorService struct {
	upstream UpstreamFetcher
	skips    repo.SkipRepo
	log      *slog.Logger
}

// NewLocatorService constructs a LocatorService with the given provider
// client and fallback store. A nil logger falls back to slog.Default.
func NewLocatorService(up UpstreamFetcher, skips repo.SkipRepo, log *slog.Logger) *LocatorService {
	if log == nil {
		log = slog.Default()
	}
	return &LocatorService{upstream: up, skips: skips, log: log}
}

// FetchByLocation returns the offerings for a location.
//
// The upstream provider is authoritative when reachable: a successful
// response wins even when it is empty. Any upstream failure is absorbed by
// the local store, so the only errors a caller can see are an empty postcode
// (ErrInvalidRequest) and a failure of the fallback path itself
// (ErrUpstreamUnavailable).
func (s *LocatorService) FetchByLocation(ctx context.Context, postcode, area string) ([]domain.Skip, error) {
	if strings.TrimSpace(postcode) == "" {
		return nil, fmt.Errorf("service.LocatorService.FetchByLocation: %w: postcode is required", domain.ErrInvalidRequest)
	}

	skips, err := s.upstream.FetchByLocation(ctx, postcode, area)
	if err == nil {
		return ensureSlice(skips), nil
	}
	s.log.WarnContext(ctx, "upstream fetch failed, falling back to local store",
		"postcode", postcode, "area", area, "error", err)

	skips, err = s.skips.ListByLocation(ctx, postcode, area)
	if err != nil {
		return nil, fmt.Errorf("service.LocatorService.FetchByLocation: fallback: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	return ensureSlice(skips), nil
}

// ensureSlice keeps the contract that consumers never see a nil list.
func ensureSlice(skips []domain.Skip) []domain.Skip {
	if skips == nil {
		return []domain.Skip{}
	}
	return skips
}
