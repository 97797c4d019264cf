package api

import (
	"net/http"
	"strconv"

	reqdto "suppstore/internal/handler/dto/request"
	resdto "suppstore/internal/handler/dto/response"
	"suppstore/internal/handler/httperr"
	"suppstore/internal/pkg/errs"
	"suppstore/internal/usecase/commands"
	"suppstore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Checkout
// @Description Place an order: reserve stock, price the cart server-side and allocate an order number
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Checkout request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errs.Is(err, commands.ErrPromoNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promo code not found", nil)
		case errs.Is(err, commands.ErrOutOfStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "Out of stock", nil)
		case errs.Is(err, commands.ErrAllocationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order could not be allocated, please retry", nil)
		case errs.Is(err, commands.ErrInvalidPromo):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid or expired promo code", nil)
		case errs.Is(err, commands.ErrUnknownShippingZone):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "We do not ship to this address", nil)
		case errs.Is(err, commands.ErrValidation), errs.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Header("Location", "/api/admin/orders/"+result.OrderID.String())
	c.JSON(http.StatusCreated, resdto.FromCreateOrderResult(result))
}

// @Summary Get order
// @Description Get one order with its line items
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List orders newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.OrderListItemResponse
// @Router /admin/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	items, err := h.q.List(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromOrderList(items)})
}

// @Summary Update order status
// @Description Move an order along its lifecycle; delivered and canceled orders are final
// @Tags orders
// @Accept json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateOrderStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errs.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusConflict, err, "Status can no longer change", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	iv, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return iv
}
