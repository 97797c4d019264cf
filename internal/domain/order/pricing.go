package order

import (
	"suppstore/internal/domain/promo"
)

// Amounts is the server-computed money breakdown of an order.
// Invariant: Total == Subtotal - Discount + Shipping, with Discount
// clamped to [0, Subtotal], so Total never drops below Shipping.
type Amounts struct {
	Subtotal Money
	Discount Money
	Shipping Money
	Total    Money
}

// PricingEngine recomputes order totals from authoritative product
// snapshots. Client-submitted prices are never consulted.
type PricingEngine struct{}

func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

func (e *PricingEngine) ComputeTotals(items []LineItem, promoCode *promo.PromoCode, shippingFee Money) (Amounts, *AppliedPromo) {
	subtotal := NewMoney(0)
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}

	discount := NewMoney(0)
	var applied *AppliedPromo
	if promoCode != nil {
		discount = NewMoney(promoCode.Discount().AmountFor(subtotal.Cents()))
		applied = &AppliedPromo{
			ID:       promoCode.ID(),
			Code:     promoCode.Code().String(),
			Discount: discount,
		}
	}

	total := subtotal.Sub(discount).Add(shippingFee)

	return Amounts{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shippingFee,
		Total:    total,
	}, applied
}
