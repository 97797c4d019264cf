package order

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName  = errors.New("customer name cannot be empty")
	ErrEmptyCustomerEmail = errors.New("customer email cannot be empty")
	ErrEmptyState         = errors.New("shipping state cannot be empty")
	ErrEmptyCity          = errors.New("shipping city cannot be empty")
	ErrNegativeMoney      = errors.New("money cannot be negative")
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegativeMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) MulQty(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

// Customer is the snapshot of the buyer captured at checkout.
type Customer struct {
	name  string
	email string
}

func NewCustomer(name, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if email == "" {
		return Customer{}, ErrEmptyCustomerEmail
	}
	return Customer{name: name, email: email}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }

// Address is the shipping destination snapshot. State and city are
// required because they resolve the shipping fee.
type Address struct {
	line    string
	city    string
	state   string
	phone   string
	zipCode string
}

func NewAddress(line, city, state, phone, zipCode string) (Address, error) {
	state = strings.TrimSpace(state)
	city = strings.TrimSpace(city)
	if state == "" {
		return Address{}, ErrEmptyState
	}
	if city == "" {
		return Address{}, ErrEmptyCity
	}
	return Address{
		line:    strings.TrimSpace(line),
		city:    city,
		state:   state,
		phone:   strings.TrimSpace(phone),
		zipCode: strings.TrimSpace(zipCode),
	}, nil
}

func (a Address) Line() string    { return a.line }
func (a Address) City() string    { return a.city }
func (a Address) State() string   { return a.state }
func (a Address) Phone() string   { return a.phone }
func (a Address) ZipCode() string { return a.zipCode }

// Selection carries the variant the customer picked. Nil fields mean
// the product has no such option.
type Selection struct {
	Size   *string
	Color  *string
	Flavor *string
}

// LineItem embeds the authoritative product data at time of purchase.
// Prices come from the product record, never from client input.
type LineItem struct {
	ProductID   uuid.UUID
	Name        string
	Category    string
	UnitPrice   Money
	BuyingPrice Money
	Quantity    int
	Selection   Selection
}

func (li LineItem) Total() Money {
	return li.UnitPrice.MulQty(li.Quantity)
}

// AppliedPromo records the promo code and the discount it produced,
// snapshotted so later promo edits cannot rewrite order history.
type AppliedPromo struct {
	ID       uuid.UUID
	Code     string
	Discount Money
}
