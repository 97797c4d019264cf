package repository

import (
	"context"

	"suppstore/internal/infra"
	"suppstore/internal/infra/db"
)

type OrderNumberRepository struct {
	db db.DBTX
}

func NewOrderNumberRepository(dbtx db.DBTX) *OrderNumberRepository {
	return &OrderNumberRepository{db: dbtx}
}

// The counter lives in a single row; the upsert both seeds it on first
// use and increments it afterwards. The row lock taken by the UPDATE
// serializes allocation, and because Next runs inside the order
// transaction an aborted checkout rolls the increment back, so numbers
// only ever reach customers in issue order.
const nextOrderNumberSQL = `
INSERT INTO order_counters (id, current_number)
VALUES (1, 1)
ON CONFLICT (id) DO UPDATE
SET current_number = order_counters.current_number + 1
RETURNING current_number`

func (r *OrderNumberRepository) Next(ctx context.Context) (int64, error) {
	var number int64
	if err := r.db.QueryRow(ctx, nextOrderNumberSQL).Scan(&number); err != nil {
		return 0, infra.WrapRepoErr("failed to allocate order number", err)
	}
	return number, nil
}
