package repository

import (
	"context"

	"suppstore/internal/domain/catalog"
	"suppstore/internal/infra"
	"suppstore/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(dbtx db.DBTX) *ProductRepository {
	return &ProductRepository{db: dbtx}
}

const lockProductsSQL = `
SELECT id, name, price_cents, buying_price_cents, quantity, category,
       sizes, colors, flavors, created_at, updated_at
FROM products
WHERE id = ANY($1)
ORDER BY id
FOR UPDATE`

// LockForUpdate loads the requested products with row locks held until
// the transaction ends. Callers pass ids in sorted order so concurrent
// checkouts acquire locks in the same sequence.
func (r *ProductRepository) LockForUpdate(ctx context.Context, ids []uuid.UUID) ([]*catalog.Product, error) {
	rows, err := r.db.Query(ctx, lockProductsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock products", err)
	}
	defer rows.Close()

	var products []*catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}

	return products, nil
}

const decrementStockSQL = `
UPDATE products
SET quantity = quantity - $2, updated_at = now()
WHERE id = $1 AND quantity >= $2`

// DecrementStock applies a guarded decrement. The quantity predicate
// backstops the domain check so stock can never go negative even if a
// caller skips CanFulfill.
func (r *ProductRepository) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	tag, err := r.db.Exec(ctx, decrementStockSQL, productID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("stock no longer covers requested quantity", nil, infra.KindConflict)
	}
	return nil
}

type productScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row productScanner) (*catalog.Product, error) {
	var (
		id                      uuid.UUID
		name, category          string
		priceCents, buyingCents int64
		quantity                int
		sizes, colors, flavors  []string
		createdAt, updatedAt    pgtype.Timestamptz
	)

	err := row.Scan(&id, &name, &priceCents, &buyingCents, &quantity, &category,
		&sizes, &colors, &flavors, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	options := catalog.OptionSet{Sizes: sizes, Colors: colors, Flavors: flavors}
	return catalog.ReconstructProduct(id, name, priceCents, buyingCents, quantity, category, options, createdAt.Time, updatedAt.Time), nil
}
