package components

import (
	"suppstore/internal/infra/db"
	"suppstore/internal/infra/readstore"
	"suppstore/internal/infra/uow"
	"suppstore/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side: everything goes through the unit of work, which
		// constructs transaction-bound repositories itself.
		uow.NewPostgresUoW,
		// Read side
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewFinanceReadStore,
			fx.As(new(queries.FinanceReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
