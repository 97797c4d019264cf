//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"suppstore/internal/handler/api"
	resdto "suppstore/internal/handler/dto/response"
	"suppstore/internal/usecase/queries"
	"suppstore/tests/common/builder"
	"suppstore/tests/common/httptest"
	queriesmock "suppstore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockProductQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/products", s.handler.List)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestList() {
	url := "/products"

	protein := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
		b.Category = "protein"
		b.Name = "Whey Isolate 2kg"
	})
	creatine := builder.NewProductBuilder()

	s.Run("success: returns 200 OK with products", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "", 50, 0).
			Return([]*queries.ProductView{protein.BuildView(), creatine.BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response struct {
			Products []resdto.ProductResponse `json:"products"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Products, 2)
		s.Equal(protein.Name, response.Products[0].Name)
	})

	s.Run("success: passes category filter through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "performance", 50, 0).
			Return([]*queries.ProductView{creatine.BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?category=performance", nil, "")

		var response struct {
			Products []resdto.ProductResponse `json:"products"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Products, 1)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "", 50, 0).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}
