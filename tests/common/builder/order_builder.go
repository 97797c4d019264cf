//go:build unit || e2e

package builder

import (
	"time"

	reqdto "suppstore/internal/handler/dto/request"
	"suppstore/internal/usecase/commands"
	"suppstore/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	OrderID       uuid.UUID
	OrderNumber   int64
	CustomerName  string
	CustomerEmail string
	AddressLine   string
	City          string
	State         string
	Phone         string
	ZipCode       string
	ProductID     uuid.UUID
	ProductName   string
	Category      string
	UnitPrice     int64
	Quantity      int
	PromoCode     *string
	SubtotalCents int64
	DiscountCents int64
	ShippingCents int64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		OrderID:       uuid.New(),
		OrderNumber:   1042,
		CustomerName:  "Jane Customer",
		CustomerEmail: "jane@example.com",
		AddressLine:   "12 Protein St",
		City:          "Springfield",
		State:         "Illinois",
		Phone:         "555-0100",
		ZipCode:       "62701",
		ProductID:     uuid.New(),
		ProductName:   "Whey Isolate 2kg",
		Category:      "protein",
		UnitPrice:     4999,
		Quantity:      2,
		SubtotalCents: 9998,
		DiscountCents: 0,
		ShippingCents: 700,
		Status:        "pending",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) TotalCents() int64 {
	return b.SubtotalCents - b.DiscountCents + b.ShippingCents
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		AddressLine:   b.AddressLine,
		City:          b.City,
		State:         b.State,
		Phone:         b.Phone,
		ZipCode:       b.ZipCode,
		Items: []reqdto.CheckoutItemRequest{
			{ProductID: b.ProductID, Quantity: b.Quantity},
		},
		PromoCode: b.PromoCode,
	}
}

func (b *OrderBuilder) BuildResult() *commands.CreateOrderResult {
	return &commands.CreateOrderResult{
		OrderID:     b.OrderID,
		OrderNumber: b.OrderNumber,
		TotalCents:  b.TotalCents(),
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:            b.OrderID,
		OrderNumber:   b.OrderNumber,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		AddressLine:   b.AddressLine,
		City:          b.City,
		State:         b.State,
		Phone:         b.Phone,
		ZipCode:       b.ZipCode,
		Items: []queries.OrderItemView{
			{
				ProductID:      b.ProductID,
				Name:           b.ProductName,
				Category:       b.Category,
				UnitPriceCents: b.UnitPrice,
				Quantity:       b.Quantity,
			},
		},
		PromoCode:     b.PromoCode,
		SubtotalCents: b.SubtotalCents,
		DiscountCents: b.DiscountCents,
		ShippingCents: b.ShippingCents,
		TotalCents:    b.TotalCents(),
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *OrderBuilder) BuildListItem() *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:           b.OrderID,
		OrderNumber:  b.OrderNumber,
		CustomerName: b.CustomerName,
		TotalCents:   b.TotalCents(),
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}
