package response

import (
	"suppstore/internal/usecase/commands"
	"suppstore/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreateOrderResponse struct {
	ID          string `json:"id"`
	OrderNumber int64  `json:"order_number"`
	TotalCents  int64  `json:"total_cents"`
}

func FromCreateOrderResult(r *commands.CreateOrderResult) *CreateOrderResponse {
	return &CreateOrderResponse{
		ID:          r.OrderID.String(),
		OrderNumber: r.OrderNumber,
		TotalCents:  r.TotalCents,
	}
}

type OrderItemResponse struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	UnitPriceCents int64   `json:"unit_price_cents"`
	Quantity       int     `json:"quantity"`
	Size           *string `json:"size,omitempty"`
	Color          *string `json:"color,omitempty"`
	Flavor         *string `json:"flavor,omitempty"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   int64               `json:"order_number"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	AddressLine   string              `json:"address_line"`
	City          string              `json:"city"`
	State         string              `json:"state"`
	Phone         string              `json:"phone,omitempty"`
	ZipCode       string              `json:"zip_code,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	PromoCode     *string             `json:"promo_code,omitempty"`
	SubtotalCents int64               `json:"subtotal_cents"`
	DiscountCents int64               `json:"discount_cents"`
	ShippingCents int64               `json:"shipping_cents"`
	TotalCents    int64               `json:"total_cents"`
	Status        string              `json:"status"`
	CreatedAt     int64               `json:"created_at"`
	UpdatedAt     int64               `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	resp := &OrderResponse{}
	// Field-for-field identical shapes; copier handles everything but
	// the representation changes below.
	_ = copier.Copy(resp, v)
	resp.ID = v.ID.String()
	resp.Items = make([]OrderItemResponse, len(v.Items))
	for i, it := range v.Items {
		_ = copier.Copy(&resp.Items[i], &it)
		resp.Items[i].ProductID = it.ProductID.String()
	}
	resp.CreatedAt = v.CreatedAt.Unix()
	resp.UpdatedAt = v.UpdatedAt.Unix()
	return resp
}

type OrderListItemResponse struct {
	ID           string `json:"id"`
	OrderNumber  int64  `json:"order_number"`
	CustomerName string `json:"customer_name"`
	TotalCents   int64  `json:"total_cents"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
}

func FromOrderList(items []*queries.OrderListItem) []*OrderListItemResponse {
	res := make([]*OrderListItemResponse, len(items))
	for i, it := range items {
		res[i] = &OrderListItemResponse{
			ID:           it.ID.String(),
			OrderNumber:  it.OrderNumber,
			CustomerName: it.CustomerName,
			TotalCents:   it.TotalCents,
			Status:       it.Status,
			CreatedAt:    it.CreatedAt.Unix(),
		}
	}
	return res
}
