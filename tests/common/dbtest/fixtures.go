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

	"storefront/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "password123"
)

func CreateTestProduct(t *testing.T, db DBLike, name, basePrice string) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO products (id, name, description, base_price) VALUES ($1, $2, '', $3::numeric)",
		productID, name, basePrice)
	require.NoError(t, err)

	return productID
}

func CreateTestVariation(t *testing.T, db DBLike, productID uuid.UUID, name, additionalPrice, sku string) uuid.UUID {
	t.Helper()

	variationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO variations (id, product_id, name, additional_price, sku) VALUES ($1, $2, $3, $4::numeric, $5)",
		variationID, productID, name, additionalPrice, sku)
	require.NoError(t, err)

	return variationID
}

func SetTestStock(t *testing.T, db DBLike, productID uuid.UUID, variationID *uuid.UUID, quantity int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO stock (product_id, variation_id, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (product_id, (COALESCE(variation_id, '00000000-0000-0000-0000-000000000000'::uuid)))
		DO UPDATE SET quantity = EXCLUDED.quantity`,
		productID, variationID, quantity)
	require.NoError(t, err)
}

func CreateTestCoupon(t *testing.T, db DBLike, code, kind, value, minSubtotal string, maxUses *int32) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO coupons (id, code, kind, value, min_subtotal, max_uses, current_uses, active)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6, 0, TRUE)`,
		couponID, code, kind, value, minSubtotal, maxUses)
	require.NoError(t, err)

	return couponID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	hash, err := password.HashPassword(AdminPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO admins (id, email, password_hash)
		VALUES (gen_random_uuid(), $1, $2)
		ON CONFLICT (email) DO NOTHING`,
		AdminEmail, hash)
	return err
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
