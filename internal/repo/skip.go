// Package repo contains the storage implementations for skip offerings.
// Two implementations exist: a seeded in-memory store used by default and a
// Postgres store selected when DATABASE_URL is configured. No business logic
// lives here, only storage and type mapping.
package repo

import (
	"context"

	"github.com/remwaste/skip-catalog/internal/domain"
)

// SkipRepo defines the storage operations for skip offerings.
// The service layer depends on this interface, not a concrete implementation,
// which allows it to be unit-tested with a mock.
type SkipRepo interface {
	// List returns every offering in the store.
	List(ctx context.Context) ([]domain.Skip, error)

	// ListByLocation returns the offerings matching the given location.
	// An offering matches when the query postcode is a case-insensitive
	// substring of its stored postcode, and, when area is non-empty, the
	// query area is likewise a substring of its stored area.
	// No match yields an empty slice, not an error.
	ListByLocation(ctx context.Context, postcode, area string) ([]domain.Skip, error)

	// Create inserts a new offering and returns the stored record with its
	// assigned id and timestamps populated. Assigned ids strictly increase
	// and are never reused.
	Create(ctx context.Context, skip domain.NewSkip) (domain.Skip, error)
}
