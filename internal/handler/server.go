// Package handler implements the HTTP handlers for the skip catalog API.
// All handlers are methods on Server; methods are split into endpoint files
// (skips.go, health.go) but share the same struct so they can access its
// dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/remwaste/skip-catalog/internal/domain"
)

// Locator defines the by-location operation the handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer or a live upstream.
type Locator interface {
	FetchByLocation(ctx context.Context, postcode, area string) ([]domain.Skip, error)
}

// Cataloger defines the local-store-only listing operation.
type Cataloger interface {
	List(ctx context.Context, postcode, area string) ([]domain.Skip, error)
}

// Server implements the API endpoints. Wire it in main.go via Routes.
type Server struct {
	locator Locator
	catalog Cataloger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(locator Locator, catalog Cataloger) *Server {
	return &Server{locator: locator, catalog: catalog}
}

// Routes registers every endpoint on a new chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/api/skips", s.ListSkips)
	r.Get("/api/skips/by-location", s.SkipsByLocation)
	return r
}
