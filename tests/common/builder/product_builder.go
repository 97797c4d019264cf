//go:build unit || e2e

package builder

import (
	"time"

	"suppstore/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID          uuid.UUID
	Name        string
	PriceCents  int64
	BuyingCents int64
	Quantity    int
	Category    string
	Sizes       []string
	Colors      []string
	Flavors     []string
	CreatedAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          uuid.New(),
		Name:        "Creatine Monohydrate 500g",
		PriceCents:  2499,
		BuyingCents: 1100,
		Quantity:    50,
		Category:    "performance",
		Flavors:     []string{"unflavored", "lemon"},
		CreatedAt:   time.Now(),
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:         b.ID,
		Name:       b.Name,
		PriceCents: b.PriceCents,
		Quantity:   b.Quantity,
		Category:   b.Category,
		Sizes:      b.Sizes,
		Colors:     b.Colors,
		Flavors:    b.Flavors,
		CreatedAt:  b.CreatedAt,
	}
}
