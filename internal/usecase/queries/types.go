package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type OrderItemView struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
	Size           *string   `json:"size,omitempty"`
	Color          *string   `json:"color,omitempty"`
	Flavor         *string   `json:"flavor,omitempty"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   int64           `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	AddressLine   string          `json:"address_line"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	Phone         string          `json:"phone,omitempty"`
	ZipCode       string          `json:"zip_code,omitempty"`
	Items         []OrderItemView `json:"items"`
	PromoCode     *string         `json:"promo_code,omitempty"`
	SubtotalCents int64           `json:"subtotal_cents"`
	DiscountCents int64           `json:"discount_cents"`
	ShippingCents int64           `json:"shipping_cents"`
	TotalCents    int64           `json:"total_cents"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type OrderListItem struct {
	ID           uuid.UUID `json:"id"`
	OrderNumber  int64     `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	TotalCents   int64     `json:"total_cents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Quantity   int       `json:"quantity"`
	Category   string    `json:"category"`
	Sizes      []string  `json:"sizes,omitempty"`
	Colors     []string  `json:"colors,omitempty"`
	Flavors    []string  `json:"flavors,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type PaymentView struct {
	ID              uuid.UUID `json:"id"`
	CoachID         uuid.UUID `json:"coach_id"`
	ClientName      string    `json:"client_name"`
	PlanTitle       string    `json:"plan_title"`
	AmountCents     int64     `json:"amount_cents"`
	CoachShareCents int64     `json:"coach_share_cents"`
	Status          string    `json:"status"`
	PaidAt          time.Time `json:"paid_at"`
}

type PayoutView struct {
	ID          uuid.UUID `json:"id"`
	CoachID     uuid.UUID `json:"coach_id"`
	ClientName  string    `json:"client_name"`
	PlanTitle   string    `json:"plan_title"`
	AmountCents int64     `json:"amount_cents"`
	Status      string    `json:"status"`
	PayoutDate  time.Time `json:"payout_date"`
}

// CoachFinanceView is the admin finance dashboard for one coach.
type CoachFinanceView struct {
	CoachID            uuid.UUID    `json:"coach_id"`
	CommissionRate     int          `json:"commission_rate"`
	TotalEarningsCents int64        `json:"total_earnings_cents"`
	PaidOutCents       int64        `json:"paid_out_cents"`
	PendingPayoutCents int64        `json:"pending_payout_cents"`
	Payments           []PaymentView `json:"payments"`
	Payouts            []PayoutView  `json:"payouts"`
}
