package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remwaste/skip-catalog/internal/domain"
	"github.com/remwaste/skip-catalog/internal/handler"
)

// mockLocator is a test double for handler.Locator.
type mockLocator struct {
	fetch func(ctx context.Context, postcode, area string) ([]domain.Skip, error)
}

func (m *mockLocator) FetchByLocation(ctx context.Context, postcode, area string) ([]domain.Skip, error) {
	return m.fetch(ctx, postcode, area)
}

var _ handler.Locator = (*mockLocator)(nil)

// mockCataloger is a test double for handler.Cataloger.
type mockCataloger struct {
	list func(ctx context.Context, postcode, area string) ([]domain.Skip, error)
}

func (m *mockCataloger) List(ctx context.Context, postcode, area string) ([]domain.Skip, error) {
	return m.list(ctx, postcode, area)
}

var _ handler.Cataloger = (*mockCataloger)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its chi router,
// mirroring how main.go wires it in production.
func newHTTPHandler(loc handler.Locator, cat handler.Cataloger) http.Handler {
	return handler.NewServer(loc, cat).Routes()
}

func skipFixture() domain.Skip {
	return domain.Skip{
		ID:               1,
		Size:             4,
		HirePeriodDays:   14,
		PriceBeforeVAT:   decimal.NewFromInt(278),
		VAT:              decimal.NewFromInt(20),
		Postcode:         "NR32",
		Area:             "Lowestoft",
		AllowedOnRoad:    true,
		AllowsHeavyWaste: true,
	}
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ---- GET /api/skips/by-location --------------------------------------------

func TestSkipsByLocation_returnsSkips(t *testing.T) {
	loc := &mockLocator{fetch: func(_ context.Context, postcode, area string) ([]domain.Skip, error) {
		assert.Equal(t, "NR32", postcode)
		assert.Equal(t, "Lowestoft", area)
		return []domain.Skip{skipFixture()}, nil
	}}
	h := newHTTPHandler(loc, &mockCataloger{})

	rec := doGet(t, h, "/api/skips/by-location?postcode=NR32&area=Lowestoft")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.EqualValues(t, 1, body[0]["id"])
	assert.EqualValues(t, 4, body[0]["size"])
	assert.Equal(t, "278", body[0]["price_before_vat"])
}

// TestSkipsByLocation_missingPostcode pins the exact wire contract of the
// 400 response.
func TestSkipsByLocation_missingPostcode(t *testing.T) {
	loc := &mockLocator{fetch: func(_ context.Context, _, _ string) ([]domain.Skip, error) {
		t.Fatal("locator must not be called without a postcode")
		return nil, nil
	}}
	h := newHTTPHandler(loc, &mockCataloger{})

	rec := doGet(t, h, "/api/skips/by-location?area=Lowestoft")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Postcode is required", body["error"])
}

// TestSkipsByLocation_emptyResultIsJSONArray: an empty result must serialize
// as [] and not null.
func TestSkipsByLocation_emptyResultIsJSONArray(t *testing.T) {
	loc := &mockLocator{fetch: func(_ context.Context, _, _ string) ([]domain.Skip, error) {
		return []domain.Skip{}, nil
	}}
	h := newHTTPHandler(loc, &mockCataloger{})

	rec := doGet(t, h, "/api/skips/by-location?postcode=SW1A")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSkipsByLocation_locatorInvalidRequestMapsTo400(t *testing.T) {
	loc := &mockLocator{fetch: func(_ context.Context, _, _ string) ([]domain.Skip, error) {
		return nil, domain.ErrInvalidRequest
	}}
	h := newHTTPHandler(loc, &mockCataloger{})

	// Whitespace postcode passes the handler's presence check but is
	// rejected by the service.
	rec := doGet(t, h, "/api/skips/by-location?postcode=%20%20")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSkipsByLocation_failureMapsTo500(t *testing.T) {
	loc := &mockLocator{fetch: func(_ context.Context, _, _ string) ([]domain.Skip, error) {
		return nil, errors.New("fallback: upstream unavailable: store corrupted")
	}}
	h := newHTTPHandler(loc, &mockCataloger{})

	rec := doGet(t, h, "/api/skips/by-location?postcode=NR32")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Failed to fetch skips", body["error"])
	assert.Contains(t, body["message"], "store corrupted")
}

// ---- GET /api/skips ---------------------------------------------------------

func TestListSkips_withoutParams(t *testing.T) {
	cat := &mockCataloger{list: func(_ context.Context, postcode, area string) ([]domain.Skip, error) {
		assert.Empty(t, postcode)
		assert.Empty(t, area)
		return []domain.Skip{skipFixture()}, nil
	}}
	h := newHTTPHandler(&mockLocator{}, cat)

	rec := doGet(t, h, "/api/skips")

	require.Equal(t, http.StatusOK, rec.Code)

	var body []json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body, 1)
}

func TestListSkips_passesLocationParams(t *testing.T) {
	cat := &mockCataloger{list: func(_ context.Context, postcode, area string) ([]domain.Skip, error) {
		assert.Equal(t, "NR32", postcode)
		assert.Equal(t, "Lowestoft", area)
		return []domain.Skip{}, nil
	}}
	h := newHTTPHandler(&mockLocator{}, cat)

	rec := doGet(t, h, "/api/skips?postcode=NR32&area=Lowestoft")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListSkips_failureMapsTo500(t *testing.T) {
	cat := &mockCataloger{list: func(_ context.Context, _, _ string) ([]domain.Skip, error) {
		return nil, errors.New("store exploded")
	}}
	h := newHTTPHandler(&mockLocator{}, cat)

	rec := doGet(t, h, "/api/skips")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Failed to fetch skips", body["error"])
}
