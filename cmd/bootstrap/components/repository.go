package components

import (
	"voucher-pipeline/internal/infra/readstore"
	"voucher-pipeline/internal/infra/repository"
	sqlc "voucher-pipeline/internal/infra/sqlc/generated"
	"voucher-pipeline/internal/usecase/commands"
	"voucher-pipeline/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.VoucherWriteQueries)),
		),
		fx.Annotate(
			repository.NewVoucherRepository,
			fx.As(new(commands.VoucherRepository)),
		),
		// Read side
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VoucherReadQueries)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
