package handler

import (
	"errors"
	"net/http"

	"github.com/remwaste/skip-catalog/internal/domain"
)

// SkipsByLocation handles GET /api/skips/by-location?postcode=..&area=..
//
// The try-upstream-then-fallback behavior lives in the locator; by the time
// this handler sees an error, both the provider and the local store have
// failed. An empty result list is a success, not an error.
func (s *Server) SkipsByLocation(w http.ResponseWriter, r *http.Request) {
	postcode := r.URL.Query().Get("postcode")
	area := r.URL.Query().Get("area")

	if postcode == "" {
		writeError(w, http.StatusBadRequest, "Postcode is required", "")
		return
	}

	skips, err := s.locator.FetchByLocation(r.Context(), postcode, area)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, "Postcode is required", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch skips", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, skips)
}

// ListSkips handles GET /api/skips?postcode=..&area=..
// Serves the local store only; both query parameters are optional.
func (s *Server) ListSkips(w http.ResponseWriter, r *http.Request) {
	postcode := r.URL.Query().Get("postcode")
	area := r.URL.Query().Get("area")

	skips, err := s.catalog.List(r.Context(), postcode, area)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch skips", "")
		return
	}

	writeJSON(w, http.StatusOK, skips)
}
