package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductName    = errors.New("product name cannot be empty")
	ErrProductNameTooLong  = errors.New("product name is too long (max 255 characters)")
	ErrNegativePrice       = errors.New("product price cannot be negative")
	ErrNegativeQuantity    = errors.New("product quantity cannot be negative")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidDecrementQty = errors.New("decrement quantity must be positive")
)

const MaxProductNameLength = 255

// OptionSet holds the variants a product can be ordered in. Empty
// slices mean the product has no such option.
type OptionSet struct {
	Sizes   []string
	Colors  []string
	Flavors []string
}

type Product struct {
	id          uuid.UUID
	name        string
	priceCents  int64
	buyingCents int64
	quantity    int
	category    string
	options     OptionSet
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(id uuid.UUID, name string, priceCents, buyingCents int64, quantity int, category string, options OptionSet) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if len(name) > MaxProductNameLength {
		return nil, ErrProductNameTooLong
	}
	if priceCents < 0 || buyingCents < 0 {
		return nil, ErrNegativePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	return &Product{
		id:          id,
		name:        name,
		priceCents:  priceCents,
		buyingCents: buyingCents,
		quantity:    quantity,
		category:    category,
		options:     options,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name string,
	priceCents, buyingCents int64,
	quantity int,
	category string,
	options OptionSet,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		priceCents:  priceCents,
		buyingCents: buyingCents,
		quantity:    quantity,
		category:    category,
		options:     options,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// CanFulfill reports whether the requested quantity is available.
func (p *Product) CanFulfill(requested int) bool {
	return requested > 0 && p.quantity >= requested
}

// Decrement reduces the available quantity. The quantity never goes
// negative; callers must have checked CanFulfill inside the same
// transaction that persists the decrement.
func (p *Product) Decrement(requested int) error {
	if requested <= 0 {
		return ErrInvalidDecrementQty
	}
	if p.quantity < requested {
		return ErrInsufficientStock
	}
	p.quantity -= requested
	return nil
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) PriceCents() int64    { return p.priceCents }
func (p *Product) BuyingCents() int64   { return p.buyingCents }
func (p *Product) Quantity() int        { return p.quantity }
func (p *Product) Category() string     { return p.category }
func (p *Product) Options() OptionSet   { return p.options }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
