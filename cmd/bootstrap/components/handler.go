package components

import (
	"suppstore/internal/handler"
	"suppstore/internal/handler/api"
	"suppstore/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewOrderHandler,
		api.NewFinanceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
