package components

import (
	"suppstore/internal/domain/order"
	"suppstore/internal/pkg/clock"
	"suppstore/internal/usecase/commands"
	"suppstore/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	order.NewPricingEngine,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
		commands.NewFinanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewProductQueries,
		queries.NewFinanceQueries,
	),
)
