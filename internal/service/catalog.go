package service

import (
	"context"
	"fmt"

	"github.com/remwaste/skip-catalog/internal/domain"
	"github.com/remwaste/skip-catalog/internal/repo"
)

// CatalogService serves local-store-only listings. Unlike the locator it
// never touches the upstream provider, and a location query is optional:
// without a postcode it lists the whole store.
type CatalogService struct {
	skips repo.SkipRepo
}

// NewCatalogService constructs a CatalogService backed by the provided store.
func NewCatalogService(skips repo.SkipRepo) *CatalogService {
	return &CatalogService{skips: skips}
}

// List returns the stored offerings, optionally narrowed by location.
func (s *CatalogService) List(ctx context.Context, postcode, area string) ([]domain.Skip, error) {
	var (
		skips []domain.Skip
		err   error
	)
	if postcode != "" {
		skips, err = s.skips.ListByLocation(ctx, postcode, area)
	} else {
		skips, err = s.skips.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.List: %w", err)
	}
	return ensureSlice(skips), nil
}

// Add stores a new offering. The store assigns id and timestamps.
func (s *CatalogService) Add(ctx context.Context, skip domain.NewSkip) (domain.Skip, error) {
	created, err := s.skips.Create(ctx, skip)
	if err != nil {
		return domain.Skip{}, fmt.Errorf("service.CatalogService.Add: %w", err)
	}
	return created, nil
}
