package response

import (
	"suppstore/internal/usecase/queries"
)

type ProductResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PriceCents int64    `json:"price_cents"`
	Quantity   int      `json:"quantity"`
	Category   string   `json:"category"`
	Sizes      []string `json:"sizes,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Flavors    []string `json:"flavors,omitempty"`
	CreatedAt  int64    `json:"created_at"`
}

func FromProductList(views []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = &ProductResponse{
			ID:         v.ID.String(),
			Name:       v.Name,
			PriceCents: v.PriceCents,
			Quantity:   v.Quantity,
			Category:   v.Category,
			Sizes:      v.Sizes,
			Colors:     v.Colors,
			Flavors:    v.Flavors,
			CreatedAt:  v.CreatedAt.Unix(),
		}
	}
	return res
}
