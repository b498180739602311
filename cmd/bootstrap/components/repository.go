package components

import (
	"masterbikes-api/internal/infra"
	"masterbikes-api/internal/infra/readstore"
	repo_impl "masterbikes-api/internal/infra/repository"
	"masterbikes-api/internal/usecase/commands"
	"masterbikes-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewRentalRepository,
			fx.As(new(commands.RentalRepository)),
		),
		fx.Annotate(
			repo_impl.NewSequenceRepository,
			fx.As(new(commands.RentalSequencer)),
		),
		fx.Annotate(
			repo_impl.NewCartRepository,
			fx.As(new(commands.CartRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalReadStore)),
		),
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
