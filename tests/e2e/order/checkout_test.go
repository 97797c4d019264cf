//go:build e2e

package order_test

import (
	"net/http"
	"sync"
	"testing"

	"suppstore/internal/handler/dto/response"
	"suppstore/internal/handler/middleware"
	"suppstore/tests/common/authtest"
	"suppstore/tests/common/builder"
	"suppstore/tests/common/dbtest"
	"suppstore/tests/common/httptest"
	"suppstore/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL      = "/api/orders"
	adminOrdersURL = "/api/admin/orders"
)

type CheckoutSuite struct {
	e2e.SharedSuite
}

func (s *CheckoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

func (s *CheckoutSuite) staffToken() string {
	helper := authtest.NewJWTHelper(s.Config.JWT)
	return helper.GenerateToken(s.T(), uuid.New(), middleware.RoleStaff)
}

// =============================================================================
// TestCheckout - storefront checkout API tests
// =============================================================================

func (s *CheckoutSuite) TestCheckout() {
	s.Run("Normal case: checkout reserves stock and allocates an order number", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Whey Isolate 2kg", 4999, 10)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.ProductID = productID
			b.Quantity = 2
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CreateOrderResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.Equal(t, int64(1), created.OrderNumber, "first order gets number 1")
		// 2 * 4999 + Springfield shipping fee (700)
		require.Equal(t, int64(10698), created.TotalCents)

		require.Equal(t, 8, dbtest.ProductQuantity(t, s.DB, productID), "stock should be decremented")

		// Fetch the detail through the admin API and compare
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminOrdersURL+"/"+created.ID, nil, s.staffToken())
		require.Equal(t, http.StatusOK, dw.Code, dw.Body.String())

		var actual response.OrderResponse
		err = httptest.DecodeResponseBody(t, dw.Body, &actual)
		require.NoError(t, err)

		expected := response.OrderResponse{
			ID:            created.ID,
			OrderNumber:   1,
			CustomerName:  reqBody.CustomerName,
			CustomerEmail: reqBody.CustomerEmail,
			AddressLine:   reqBody.AddressLine,
			City:          reqBody.City,
			State:         reqBody.State,
			Phone:         reqBody.Phone,
			ZipCode:       reqBody.ZipCode,
			Items: []response.OrderItemResponse{
				{
					ProductID:      productID.String(),
					Name:           "Whey Isolate 2kg",
					Category:       "protein",
					UnitPriceCents: 4999,
					Quantity:       2,
				},
			},
			SubtotalCents: 9998,
			DiscountCents: 0,
			ShippingCents: 700,
			TotalCents:    10698,
			Status:        "pending",
		}
		if diff := cmp.Diff(expected, actual,
			cmpopts.IgnoreFields(response.OrderResponse{}, "CreatedAt", "UpdatedAt")); diff != "" {
			t.Errorf("order detail mismatch (-expected +actual):\n%s", diff)
		}
	})

	s.Run("Normal case: order numbers are strictly increasing", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Creatine 500g", 2499, 10)

		var lastNumber int64
		for i := 0; i < 3; i++ {
			reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
				b.ProductID = productID
				b.Quantity = 1
			}).BuildCreateRequestDTO()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

			var created response.CreateOrderResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
			require.Greater(t, created.OrderNumber, lastNumber)
			lastNumber = created.OrderNumber
		}
	})

	s.Run("Error case: insufficient stock returns 409 without partial reservation", func() {
		t := s.T()

		wheyID := dbtest.CreateTestProduct(t, s.DB, "Whey Isolate 2kg", 4999, 10)
		barsID := dbtest.CreateTestProduct(t, s.DB, "Protein Bars 12ct", 1999, 1)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.ProductID = wheyID
			b.Quantity = 2
		}).BuildCreateRequestDTO()
		reqBody.Items = append(reqBody.Items, reqBody.Items[0])
		reqBody.Items[1].ProductID = barsID
		reqBody.Items[1].Quantity = 3

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// Nothing was reserved for either line
		require.Equal(t, 10, dbtest.ProductQuantity(t, s.DB, wheyID))
		require.Equal(t, 1, dbtest.ProductQuantity(t, s.DB, barsID))
	})

	s.Run("Error case: unknown product returns 404", func() {
		t := s.T()

		reqBody := builder.NewOrderBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: unmatched shipping zone returns 422", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Whey Isolate 2kg", 4999, 10)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.ProductID = productID
			b.State = "Atlantis"
			b.City = "Underwater"
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Concurrency: stock never oversells", func() {
		t := s.T()

		const stock = 3
		const attempts = 8
		productID := dbtest.CreateTestProduct(t, s.DB, "Limited Pre-Workout", 3499, stock)

		var wg sync.WaitGroup
		results := make([]int, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
					b.ProductID = productID
					b.Quantity = 1
				}).BuildCreateRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
				results[idx] = w.Code
			}(i)
		}
		wg.Wait()

		var succeeded int
		for _, code := range results {
			if code == http.StatusCreated {
				succeeded++
			} else {
				require.Equal(t, http.StatusConflict, code)
			}
		}
		require.Equal(t, stock, succeeded, "exactly the available stock should be sold")
		require.Equal(t, 0, dbtest.ProductQuantity(t, s.DB, productID))
	})
}

// =============================================================================
// TestPromoRedemption - single-use promo codes
// =============================================================================

func (s *CheckoutSuite) TestPromoRedemption() {
	s.Run("Normal case: promo discount applies and the code burns", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Whey Isolate 2kg", 4999, 10)
		dbtest.CreateTestPromo(t, s.DB, "WELCOME10", 1000)

		code := "WELCOME10"
		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.ProductID = productID
			b.Quantity = 1
			b.PromoCode = &code
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CreateOrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		// 4999 - 1000 + 700 shipping
		require.Equal(t, int64(4699), created.TotalCents)
		require.True(t, dbtest.PromoUsed(t, s.DB, "WELCOME10"))
	})

	s.Run("Error case: a used promo code is rejected", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Whey Isolate 2kg", 4999, 10)
		dbtest.CreateTestPromo(t, s.DB, "ONCE", 500)

		code := "ONCE"
		build := func() any {
			return builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
				b.ProductID = productID
				b.Quantity = 1
				b.PromoCode = &code
			}).BuildCreateRequestDTO()
		}

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, build(), "")
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, build(), "")
		require.Equal(t, http.StatusUnprocessableEntity, second.Code, second.Body.String())
	})
}

// =============================================================================
// TestOrderAdmin - back-office order management
// =============================================================================

func (s *CheckoutSuite) TestOrderAdmin() {
	s.Run("Normal case: staff can list orders newest first and update status", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Whey Isolate 2kg", 4999, 10)
		token := s.staffToken()

		var lastID string
		for i := 0; i < 2; i++ {
			reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
				b.ProductID = productID
				b.Quantity = 1
			}).BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
			require.Equal(t, http.StatusCreated, w.Code)
			var created response.CreateOrderResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
			lastID = created.ID
		}

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminOrdersURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		var listing struct {
			Orders []response.OrderListItemResponse `json:"orders"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listing))
		require.Len(t, listing.Orders, 2)
		require.Equal(t, lastID, listing.Orders[0].ID, "newest order first")

		uw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			adminOrdersURL+"/"+lastID+"/status", map[string]any{"status": "shipped"}, token)
		require.Equal(t, http.StatusNoContent, uw.Code, uw.Body.String())
	})

	s.Run("Error case: delivered orders are final", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Whey Isolate 2kg", 4999, 10)
		token := s.staffToken()

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.ProductID = productID
			b.Quantity = 1
		}).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code)
		var created response.CreateOrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		statusURL := adminOrdersURL + "/" + created.ID + "/status"
		dw := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL, map[string]any{"status": "delivered"}, token)
		require.Equal(t, http.StatusNoContent, dw.Code)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL, map[string]any{"status": "pending"}, token)
		require.Equal(t, http.StatusConflict, rw.Code, rw.Body.String())
	})

	s.Run("Error case: admin endpoints require a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminOrdersURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
