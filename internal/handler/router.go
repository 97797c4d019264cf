package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"suppstore/internal/handler/api"
	"suppstore/internal/handler/middleware"
	"suppstore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	orderHandler *api.OrderHandler,
	financeHandler *api.FinanceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, orderHandler, financeHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	orderHandler *api.OrderHandler,
	financeHandler *api.FinanceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Storefront: anonymous browsing and checkout.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: catalogHandler.List},
			{Method: http.MethodPost, Path: "/orders", Handler: orderHandler.Create},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRoleAtLeast(middleware.RoleStaff))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/orders", Handler: orderHandler.List},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: orderHandler.Get},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: orderHandler.UpdateStatus},
			})

			finance := admin.Group("/finance")
			finance.Use(authMiddleware.RequireRoleAtLeast(middleware.RoleAdmin))
			addRoutes(finance, []route{
				{Method: http.MethodPost, Path: "/payments", Handler: financeHandler.RecordPayment},
				{Method: http.MethodDelete, Path: "/payments/:id", Handler: financeHandler.DeletePayment},
				{Method: http.MethodPost, Path: "/payouts", Handler: financeHandler.RecordPayout},
				{Method: http.MethodPost, Path: "/payouts/:id/process", Handler: financeHandler.ProcessPayout},
				{Method: http.MethodGet, Path: "/coaches/:id", Handler: financeHandler.CoachDashboard},
				{Method: http.MethodPut, Path: "/coaches/:id/commission-rate", Handler: financeHandler.SetCommissionRate},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
