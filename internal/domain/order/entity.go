package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoLineItems        = errors.New("order must contain at least one line item")
	ErrInvalidOrderNumber = errors.New("order number must be positive")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrStatusFinal        = errors.New("order status can no longer change")
)

type Order struct {
	id          uuid.UUID
	orderNumber int64
	customer    Customer
	address     Address
	items       []LineItem
	promo       *AppliedPromo
	amounts     Amounts
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewOrder composes a checkout result. The amounts must already have
// been computed by the PricingEngine from server-side data.
func NewOrder(
	orderNumber int64,
	customer Customer,
	address Address,
	items []LineItem,
	promo *AppliedPromo,
	amounts Amounts,
) (*Order, error) {
	if orderNumber <= 0 {
		return nil, ErrInvalidOrderNumber
	}
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}

	return &Order{
		id:          uuid.New(),
		orderNumber: orderNumber,
		customer:    customer,
		address:     address,
		items:       items,
		promo:       promo,
		amounts:     amounts,
		status:      StatusPending,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	orderNumber int64,
	customer Customer,
	address Address,
	items []LineItem,
	promo *AppliedPromo,
	amounts Amounts,
	status Status,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:          id,
		orderNumber: orderNumber,
		customer:    customer,
		address:     address,
		items:       items,
		promo:       promo,
		amounts:     amounts,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ChangeStatus is the only mutation an order supports after creation.
func (o *Order) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if o.status.IsTerminal() {
		return ErrStatusFinal
	}
	o.status = next
	return nil
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) OrderNumber() int64   { return o.orderNumber }
func (o *Order) Customer() Customer   { return o.customer }
func (o *Order) Address() Address     { return o.address }
func (o *Order) Items() []LineItem    { return o.items }
func (o *Order) Promo() *AppliedPromo { return o.promo }
func (o *Order) Amounts() Amounts     { return o.amounts }
func (o *Order) Status() Status       { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
