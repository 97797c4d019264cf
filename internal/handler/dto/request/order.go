package request

import (
	"suppstore/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Size      *string   `json:"size,omitempty"`
	Color     *string   `json:"color,omitempty"`
	Flavor    *string   `json:"flavor,omitempty"`
}

type CreateOrderRequest struct {
	CustomerName  string                `json:"customer_name" binding:"required,max=255"`
	CustomerEmail string                `json:"customer_email" binding:"required,email"`
	AddressLine   string                `json:"address_line" binding:"max=500"`
	City          string                `json:"city" binding:"required,max=100"`
	State         string                `json:"state" binding:"required,max=100"`
	Phone         string                `json:"phone" binding:"max=30"`
	ZipCode       string                `json:"zip_code" binding:"max=20"`
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	PromoCode     *string               `json:"promo_code,omitempty"`
}

func (r *CreateOrderRequest) ToInput() commands.CreateOrderInput {
	items := make([]commands.CheckoutItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.CheckoutItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
			Flavor:    it.Flavor,
		}
	}

	return commands.CreateOrderInput{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		AddressLine:   r.AddressLine,
		City:          r.City,
		State:         r.State,
		Phone:         r.Phone,
		ZipCode:       r.ZipCode,
		Items:         items,
		PromoCode:     r.PromoCode,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered canceled"`
}
