package promo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPromoExpired     = errors.New("promo code has expired")
	ErrPromoNotYetValid = errors.New("promo code is not yet valid")
	ErrPromoAlreadyUsed = errors.New("promo code has already been used")
)

type PromoCode struct {
	id        uuid.UUID
	code      Code
	discount  Discount
	used      bool
	validFrom *time.Time
	validTo   *time.Time
	createdAt time.Time
}

func NewPromoCode(
	id uuid.UUID,
	code string,
	amountOffCents *int64,
	percentOff *float64,
	used bool,
	validFrom, validTo *time.Time,
) (*PromoCode, error) {
	promoCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(amountOffCents, percentOff)
	if err != nil {
		return nil, err
	}

	return &PromoCode{
		id:        id,
		code:      promoCode,
		discount:  discount,
		used:      used,
		validFrom: validFrom,
		validTo:   validTo,
	}, nil
}

func (p *PromoCode) IsValidAt(t time.Time) bool {
	if p.validFrom != nil && t.Before(*p.validFrom) {
		return false
	}
	if p.validTo != nil && t.After(*p.validTo) {
		return false
	}
	return true
}

// ValidateUsage rejects a code that is used, expired or not yet valid.
// Redemption itself (flipping the used flag) happens in the same
// transaction as order creation so a code can never be applied twice.
func (p *PromoCode) ValidateUsage(t time.Time) error {
	if p.used {
		return ErrPromoAlreadyUsed
	}
	if !p.IsValidAt(t) {
		if p.validFrom != nil && t.Before(*p.validFrom) {
			return ErrPromoNotYetValid
		}
		return ErrPromoExpired
	}
	return nil
}

func (p *PromoCode) ID() uuid.UUID         { return p.id }
func (p *PromoCode) Code() Code            { return p.code }
func (p *PromoCode) Discount() Discount    { return p.discount }
func (p *PromoCode) Used() bool            { return p.used }
func (p *PromoCode) ValidFrom() *time.Time { return p.validFrom }
func (p *PromoCode) ValidTo() *time.Time   { return p.validTo }
func (p *PromoCode) CreatedAt() time.Time  { return p.createdAt }
