package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/remwaste/skip-catalog/internal/domain"
)

// MemoryRepo is an in-process SkipRepo backed by a map. It is the default
// store when no database is configured and the fallback data source for the
// locator when the upstream provider is down.
//
// All operations are safe for concurrent use; the mutex guards both the map
// and the id counter so no two Create calls ever observe the same id.
type MemoryRepo struct {
	mu     sync.Mutex
	skips  map[int]domain.Skip
	nextID int
}

// compile-time check: MemoryRepo must satisfy SkipRepo.
var _ SkipRepo = (*MemoryRepo)(nil)

// NewMemoryRepo returns an empty in-memory store.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		skips:  make(map[int]domain.Skip),
		nextID: 1,
	}
}

// NewSeededMemoryRepo returns an in-memory store pre-populated with the demo
// offerings for the NR32 / Lowestoft area: sizes 4 through 14 on a 14-day
// hire, of which only the 4 and 6 yard skips may be placed on the road.
func NewSeededMemoryRepo() *MemoryRepo {
	r := NewMemoryRepo()
	ctx := context.Background()

	seed := []struct {
		size        int
		price       int64
		roadAllowed bool
	}{
		{4, 278, true},
		{6, 320, true},
		{8, 385, false},
		{10, 435, false},
		{12, 485, false},
		{14, 535, false},
	}

	for _, s := range seed {
		// Create on a fresh MemoryRepo cannot fail.
		_, _ = r.Create(ctx, domain.NewSkip{
			Size:             s.size,
			HirePeriodDays:   14,
			PriceBeforeVAT:   decimal.NewFromInt(s.price),
			VAT:              decimal.NewFromInt(20),
			Postcode:         "NR32",
			Area:             "Lowestoft",
			AllowedOnRoad:    s.roadAllowed,
			AllowsHeavyWaste: true,
		})
	}
	return r
}

// List returns every stored offering ordered by id.
func (r *MemoryRepo) List(ctx context.Context) ([]domain.Skip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Skip, 0, len(r.skips))
	for id := 1; id < r.nextID; id++ {
		if s, ok := r.skips[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// ListByLocation returns the offerings whose stored postcode contains the
// query postcode, case-insensitively. The direction matters: the query must
// be a substring of the stored value, so "nr3" matches a stored "NR32" but
// "NR32EXTRA" does not.
func (r *MemoryRepo) ListByLocation(ctx context.Context, postcode, area string) ([]domain.Skip, error) {
	all, _ := r.List(ctx)

	pc := strings.ToLower(postcode)
	ar := strings.ToLower(area)

	out := make([]domain.Skip, 0, len(all))
	for _, s := range all {
		if !strings.Contains(strings.ToLower(s.Postcode), pc) {
			continue
		}
		if ar != "" && !strings.Contains(strings.ToLower(s.Area), ar) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// Create assigns the next id and timestamps and inserts the offering.
func (r *MemoryRepo) Create(ctx context.Context, skip domain.NewSkip) (domain.Skip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	s := domain.Skip{
		ID:               r.nextID,
		Size:             skip.Size,
		HirePeriodDays:   skip.HirePeriodDays,
		TransportCost:    skip.TransportCost,
		PerTonneCost:     skip.PerTonneCost,
		PriceBeforeVAT:   skip.PriceBeforeVAT,
		VAT:              skip.VAT,
		Postcode:         skip.Postcode,
		Area:             skip.Area,
		Forbidden:        skip.Forbidden,
		AllowedOnRoad:    skip.AllowedOnRoad,
		AllowsHeavyWaste: skip.AllowsHeavyWaste,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	r.nextID++
	r.skips[s.ID] = s
	return s, nil
}
