package repository

import (
	"context"
	"encoding/json"

	"suppstore/internal/domain/order"
	"suppstore/internal/infra"
	"suppstore/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

// orderItemRecord is the persisted shape of one line item inside the
// orders.items jsonb column.
type orderItemRecord struct {
	ProductID        uuid.UUID `json:"product_id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	UnitPriceCents   int64     `json:"unit_price_cents"`
	BuyingPriceCents int64     `json:"buying_price_cents"`
	Quantity         int       `json:"quantity"`
	Size             *string   `json:"size,omitempty"`
	Color            *string   `json:"color,omitempty"`
	Flavor           *string   `json:"flavor,omitempty"`
}

const createOrderSQL = `
INSERT INTO orders (
	id, order_number, customer_name, customer_email,
	address_line, city, state, phone, zip_code,
	items, promo_id, promo_code,
	subtotal_cents, discount_cents, shipping_cents, total_cents,
	status, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9,
	$10, $11, $12, $13, $14, $15, $16, $17, now(), now()
)
RETURNING id`

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	items := make([]orderItemRecord, len(o.Items()))
	for i, li := range o.Items() {
		items[i] = orderItemRecord{
			ProductID:        li.ProductID,
			Name:             li.Name,
			Category:         li.Category,
			UnitPriceCents:   li.UnitPrice.Cents(),
			BuyingPriceCents: li.BuyingPrice.Cents(),
			Quantity:         li.Quantity,
			Size:             li.Selection.Size,
			Color:            li.Selection.Color,
			Flavor:           li.Selection.Flavor,
		}
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode order items", err)
	}

	var promoID *uuid.UUID
	var promoCode *string
	if p := o.Promo(); p != nil {
		id := p.ID
		code := p.Code
		promoID = &id
		promoCode = &code
	}

	amounts := o.Amounts()

	var resultID uuid.UUID
	err = r.db.QueryRow(ctx, createOrderSQL,
		o.ID(), o.OrderNumber(), o.Customer().Name(), o.Customer().Email(),
		o.Address().Line(), o.Address().City(), o.Address().State(), o.Address().Phone(), o.Address().ZipCode(),
		itemsJSON, promoID, promoCode,
		amounts.Subtotal.Cents(), amounts.Discount.Cents(), amounts.Shipping.Cents(), amounts.Total.Cents(),
		o.Status().String(),
	).Scan(&resultID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	return resultID, nil
}

const updateOrderStatusSQL = `
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	tag, err := r.db.Exec(ctx, updateOrderStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
