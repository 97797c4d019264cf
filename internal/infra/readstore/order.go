package readstore

import (
	"context"
	"encoding/json"

	"suppstore/internal/infra"
	"suppstore/internal/infra/db"
	"suppstore/internal/pkg/pgconv"
	"suppstore/internal/usecase/queries"
	"suppstore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const findOrderByIDSQL = `
SELECT id, order_number, customer_name, customer_email,
       address_line, city, state, phone, zip_code,
       items, promo_code,
       subtotal_cents, discount_cents, shipping_cents, total_cents,
       status, created_at, updated_at
FROM orders
WHERE id = $1`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var (
		view                 queries.OrderView
		itemsJSON            []byte
		promoCode            pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findOrderByIDSQL, id).Scan(
		&view.ID, &view.OrderNumber, &view.CustomerName, &view.CustomerEmail,
		&view.AddressLine, &view.City, &view.State, &view.Phone, &view.ZipCode,
		&itemsJSON, &promoCode,
		&view.SubtotalCents, &view.DiscountCents, &view.ShippingCents, &view.TotalCents,
		&view.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	if err := json.Unmarshal(itemsJSON, &view.Items); err != nil {
		return nil, infra.WrapRepoErr("failed to decode order items", err)
	}

	view.PromoCode = pgconv.StringPtrFromPgtype(promoCode)
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time

	return &view, nil
}

const listOrdersSQL = `
SELECT id, order_number, customer_name, total_cents, status, created_at
FROM orders
ORDER BY order_number DESC
LIMIT $1 OFFSET $2`

func (r *OrderReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, listOrdersSQL, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []*queries.OrderListItem
	for rows.Next() {
		var (
			item      queries.OrderListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.OrderNumber, &item.CustomerName, &item.TotalCents, &item.Status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		item.CreatedAt = createdAt.Time
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}

	return items, nil
}

const orderSnapshotSQL = `
SELECT id, order_number, status
FROM orders
WHERE id = $1`

// Snapshot is the command-side read: just enough to validate a status
// transition without hydrating the whole view.
func (r *OrderReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	var snapshot shared.OrderSnapshot
	err := r.db.QueryRow(ctx, orderSnapshotSQL, id).
		Scan(&snapshot.ID, &snapshot.OrderNumber, &snapshot.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return &snapshot, nil
}
