package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/remwaste/skip-catalog/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepo is the Postgres implementation of SkipRepo. Id assignment is
// delegated to the table's identity column, which satisfies the same
// strictly-increasing, never-reused contract as the in-memory counter.
type PostgresRepo struct {
	db db
}

var _ SkipRepo = (*PostgresRepo)(nil)

// NewPostgresRepo constructs a SkipRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresRepo(db db) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// Money columns are selected as text so shopspring decimals stay exact.
const skipColumns = `id, size, hire_period_days, transport_cost::text, per_tonne_cost::text,
	price_before_vat::text, vat::text, postcode, area, forbidden, allowed_on_road,
	allows_heavy_waste, created_at, updated_at`

// List returns every offering ordered by id.
func (r *PostgresRepo) List(ctx context.Context) ([]domain.Skip, error) {
	q := `SELECT ` + skipColumns + ` FROM skips ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PostgresRepo.List: %w", err)
	}
	defer rows.Close()

	return collectSkips(rows)
}

// ListByLocation filters with ILIKE so the matching rule is identical to the
// in-memory store: query substring of stored value, case-insensitive.
func (r *PostgresRepo) ListByLocation(ctx context.Context, postcode, area string) ([]domain.Skip, error) {
	q := `
		SELECT ` + skipColumns + `
		FROM skips
		WHERE postcode ILIKE '%' || @postcode || '%'
		  AND (@area = '' OR area ILIKE '%' || @area || '%')
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"postcode": postcode, "area": area})
	if err != nil {
		return nil, fmt.Errorf("repo.PostgresRepo.ListByLocation: %w", err)
	}
	defer rows.Close()

	return collectSkips(rows)
}

// Create inserts a new offering row and returns the full stored record.
func (r *PostgresRepo) Create(ctx context.Context, skip domain.NewSkip) (domain.Skip, error) {
	q := `
		INSERT INTO skips (size, hire_period_days, transport_cost, per_tonne_cost,
			price_before_vat, vat, postcode, area, forbidden, allowed_on_road,
			allows_heavy_waste, created_at, updated_at)
		VALUES (@size, @hire_period_days, @transport_cost, @per_tonne_cost,
			@price_before_vat, @vat, @postcode, @area, @forbidden, @allowed_on_road,
			@allows_heavy_waste, to_char(now() at time zone 'utc', 'YYYY-MM-DD"T"HH24:MI:SS"Z"'),
			to_char(now() at time zone 'utc', 'YYYY-MM-DD"T"HH24:MI:SS"Z"'))
		RETURNING ` + skipColumns

	args := pgx.NamedArgs{
		"size":               skip.Size,
		"hire_period_days":   skip.HirePeriodDays,
		"transport_cost":     decimalPtrArg(skip.TransportCost), // nil becomes NULL
		"per_tonne_cost":     decimalPtrArg(skip.PerTonneCost),
		"price_before_vat":   skip.PriceBeforeVAT.String(),
		"vat":                skip.VAT.String(),
		"postcode":           skip.Postcode,
		"area":               skip.Area,
		"forbidden":          skip.Forbidden,
		"allowed_on_road":    skip.AllowedOnRoad,
		"allows_heavy_waste": skip.AllowsHeavyWaste,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanSkip(row)
	if err != nil {
		return domain.Skip{}, fmt.Errorf("repo.PostgresRepo.Create: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanSkip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanSkip maps a single database row into a domain.Skip.
// Money columns are NUMERIC in Postgres and scanned through strings to keep
// shopspring decimals exact.
func scanSkip(s scanner) (domain.Skip, error) {
	var (
		sk                   domain.Skip
		transport, perTonne  *string
		price, vat           string
		createdAt, updatedAt *string
	)

	err := s.Scan(&sk.ID, &sk.Size, &sk.HirePeriodDays, &transport, &perTonne,
		&price, &vat, &sk.Postcode, &sk.Area, &sk.Forbidden, &sk.AllowedOnRoad,
		&sk.AllowsHeavyWaste, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Skip{}, domain.ErrNotFound
		}
		return domain.Skip{}, err
	}

	if sk.PriceBeforeVAT, err = decimal.NewFromString(price); err != nil {
		return domain.Skip{}, fmt.Errorf("price_before_vat: %w", err)
	}
	if sk.VAT, err = decimal.NewFromString(vat); err != nil {
		return domain.Skip{}, fmt.Errorf("vat: %w", err)
	}
	if sk.TransportCost, err = parseOptionalDecimal(transport); err != nil {
		return domain.Skip{}, fmt.Errorf("transport_cost: %w", err)
	}
	if sk.PerTonneCost, err = parseOptionalDecimal(perTonne); err != nil {
		return domain.Skip{}, fmt.Errorf("per_tonne_cost: %w", err)
	}
	if createdAt != nil {
		sk.CreatedAt = *createdAt
	}
	if updatedAt != nil {
		sk.UpdatedAt = *updatedAt
	}

	return sk, nil
}

// collectSkips drains rows into a slice, never returning nil on success.
func collectSkips(rows pgx.Rows) ([]domain.Skip, error) {
	skips := make([]domain.Skip, 0, 8)
	for rows.Next() {
		s, err := scanSkip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo: scan: %w", err)
		}
		skips = append(skips, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo: rows: %w", err)
	}
	return skips, nil
}

func parseOptionalDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// decimalPtrArg converts an optional decimal into a driver-friendly value.
func decimalPtrArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}
