package readstore

import (
	"context"

	"suppstore/internal/infra"
	"suppstore/internal/infra/db"
	"suppstore/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

const listProductsSQL = `
SELECT id, name, price_cents, quantity, category, sizes, colors, flavors, created_at
FROM products
WHERE ($1 = '' OR category = $1)
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

// List deliberately omits the buying price; storefront callers never
// see margins.
func (r *ProductReadStore) List(ctx context.Context, category string, limit, offset int32) ([]*queries.ProductView, error) {
	rows, err := r.db.Query(ctx, listProductsSQL, category, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var views []*queries.ProductView
	for rows.Next() {
		var (
			view      queries.ProductView
			createdAt pgtype.Timestamptz
		)
		err := rows.Scan(&view.ID, &view.Name, &view.PriceCents, &view.Quantity, &view.Category,
			&view.Sizes, &view.Colors, &view.Flavors, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		view.CreatedAt = createdAt.Time
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}

	return views, nil
}
