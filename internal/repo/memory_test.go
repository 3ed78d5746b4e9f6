package repo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remwaste/skip-catalog/internal/domain"
	"github.com/remwaste/skip-catalog/internal/repo"
)

func newSkipFixture(size int, postcode, area string) domain.NewSkip {
	return domain.NewSkip{
		Size:             size,
		HirePeriodDays:   14,
		PriceBeforeVAT:   decimal.NewFromInt(300),
		VAT:              decimal.NewFromInt(20),
		Postcode:         postcode,
		Area:             area,
		AllowedOnRoad:    true,
		AllowsHeavyWaste: true,
	}
}

func TestMemoryRepo_Create_assignsSequentialIDs(t *testing.T) {
	r := repo.NewMemoryRepo()
	ctx := context.Background()

	first, err := r.Create(ctx, newSkipFixture(4, "NR32", "Lowestoft"))
	require.NoError(t, err)
	second, err := r.Create(ctx, newSkipFixture(6, "NR32", "Lowestoft"))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.NotEmpty(t, first.CreatedAt)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
}

// TestMemoryRepo_Create_concurrent verifies the id counter is safe under
// concurrent callers: every assigned id is unique.
func TestMemoryRepo_Create_concurrent(t *testing.T) {
	r := repo.NewMemoryRepo()
	ctx := context.Background()

	const n = 100
	ids := make(chan int, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, _ := r.Create(ctx, newSkipFixture(4, "NR32", "Lowestoft"))
			ids <- s.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMemoryRepo_List_returnsAllInIDOrder(t *testing.T) {
	r := repo.NewMemoryRepo()
	ctx := context.Background()

	for _, size := range []int{14, 4, 8} {
		_, err := r.Create(ctx, newSkipFixture(size, "NR32", "Lowestoft"))
		require.NoError(t, err)
	}

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})
}

// TestMemoryRepo_ListByLocation_substringDirection pins the matching rule in
// both directions: the query must be a substring of the stored value, never
// the other way around.
func TestMemoryRepo_ListByLocation_substringDirection(t *testing.T) {
	r := repo.NewMemoryRepo()
	ctx := context.Background()
	_, err := r.Create(ctx, newSkipFixture(4, "NR32", "Lowestoft"))
	require.NoError(t, err)

	// Query is a substring of the stored postcode: matches.
	got, err := r.ListByLocation(ctx, "nr3", "")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Stored postcode is a substring of the query: does not match.
	got, err = r.ListByLocation(ctx, "NR32EXTRA", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryRepo_ListByLocation_caseInsensitive(t *testing.T) {
	r := repo.NewMemoryRepo()
	ctx := context.Background()
	_, err := r.Create(ctx, newSkipFixture(4, "NR32", "Lowestoft"))
	require.NoError(t, err)

	got, err := r.ListByLocation(ctx, "nr32", "LOWESTOFT")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMemoryRepo_ListByLocation_areaOptional(t *testing.T) {
	r := repo.NewMemoryRepo()
	ctx := context.Background()
	_, err := r.Create(ctx, newSkipFixture(4, "NR32", "Lowestoft"))
	require.NoError(t, err)
	_, err = r.Create(ctx, newSkipFixture(6, "NR32", "Oulton Broad"))
	require.NoError(t, err)

	// Empty area matches everything at the postcode.
	got, err := r.ListByLocation(ctx, "NR32", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Given area narrows by substring.
	got, err = r.ListByLocation(ctx, "NR32", "oulton")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Oulton Broad", got[0].Area)
}

// TestMemoryRepo_ListByLocation_noMatchIsEmptyNotError verifies the contract
// that a miss yields an empty slice, never an error.
func TestMemoryRepo_ListByLocation_noMatchIsEmptyNotError(t *testing.T) {
	r := repo.NewSeededMemoryRepo()

	got, err := r.ListByLocation(context.Background(), "SW1A", "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestNewSeededMemoryRepo verifies the demo seed: six offerings, sizes 4-14,
// 14-day hire, prices 278-535, road placement only for the two smallest.
func TestNewSeededMemoryRepo(t *testing.T) {
	r := repo.NewSeededMemoryRepo()

	got, err := r.ListByLocation(context.Background(), "NR32", "Lowestoft")
	require.NoError(t, err)
	require.Len(t, got, 6)

	wantPrices := map[int]int64{4: 278, 6: 320, 8: 385, 10: 435, 12: 485, 14: 535}
	for _, s := range got {
		want, ok := wantPrices[s.Size]
		require.True(t, ok, "unexpected size %d", s.Size)
		assert.True(t, s.PriceBeforeVAT.Equal(decimal.NewFromInt(want)), "size %d price", s.Size)
		assert.Equal(t, 14, s.HirePeriodDays)
		assert.Equal(t, s.Size <= 6, s.AllowedOnRoad, "size %d road placement", s.Size)
		assert.True(t, s.AllowsHeavyWaste)
	}
}
