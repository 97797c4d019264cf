package api

import (
	"net/http"

	resdto "suppstore/internal/handler/dto/response"
	"suppstore/internal/handler/httperr"
	"suppstore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.ProductQueries
}

func NewCatalogHandler(q queries.ProductQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List products
// @Description List storefront products, optionally filtered by category
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter"
// @Param limit query int false "Max items (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.ProductResponse
// @Failure 500 {object} map[string]string
// @Router /products [get]
func (h *CatalogHandler) List(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	views, err := h.q.List(c.Request.Context(), c.Query("category"), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(views)})
}
