//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProduct(t *testing.T, db DBLike, name string, priceCents int64, quantity int) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO products (id, name, price_cents, buying_price_cents, quantity, category)
		VALUES ($1, $2, $3, $4, $5, 'protein')`,
		productID, name, priceCents, priceCents/2, quantity)
	require.NoError(t, err)

	return productID
}

func CreateTestZone(t *testing.T, db DBLike, state, city string, feeCents int64) uuid.UUID {
	t.Helper()

	zoneID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO shipping_zones (id, state, city, fee_cents)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (state, city) DO NOTHING`,
		zoneID, state, city, feeCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM shipping_zones WHERE state = $1 AND city = $2", state, city).Scan(&zoneID)
	}

	return zoneID
}

func CreateTestPromo(t *testing.T, db DBLike, code string, amountOffCents int64) uuid.UUID {
	t.Helper()

	promoID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO promo_codes (id, code, amount_off_cents, used)
		VALUES ($1, $2, $3, FALSE)
		ON CONFLICT (code) DO NOTHING`,
		promoID, code, amountOffCents)
	require.NoError(t, err)

	return promoID
}

func CreateTestLedger(t *testing.T, db DBLike, coachID uuid.UUID, rate int, pendingCents int64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO coach_ledgers (coach_id, commission_rate, total_earnings_cents, paid_out_cents, pending_payout_cents)
		VALUES ($1, $2, $3, 0, $3)
		ON CONFLICT (coach_id) DO NOTHING`,
		coachID, rate, pendingCents)
	require.NoError(t, err)
}

func PromoUsed(t *testing.T, db DBLike, code string) bool {
	t.Helper()

	var used bool
	err := db.QueryRow(context.Background(), "SELECT used FROM promo_codes WHERE code = $1", code).Scan(&used)
	require.NoError(t, err)
	return used
}

func ProductQuantity(t *testing.T, db DBLike, productID uuid.UUID) int {
	t.Helper()

	var quantity int
	err := db.QueryRow(context.Background(), "SELECT quantity FROM products WHERE id = $1", productID).Scan(&quantity)
	require.NoError(t, err)
	return quantity
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Default shipping zone used by most checkout tests
	_, err := pool.Exec(ctx, `
		INSERT INTO shipping_zones (id, state, city, fee_cents) VALUES
		    (gen_random_uuid(), 'Illinois', 'Springfield', 700),
		    (gen_random_uuid(), 'Illinois', 'Chicago', 500)
		ON CONFLICT (state, city) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
