package bootstrap

import (
	"context"
	"log/slog"

	"voucher-pipeline/internal/infra/db"
	"voucher-pipeline/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool eagerly so a bad DSN fails startup, not the first
// consumed command.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database pool ready",
		slog.String("host", cfg.DB.Host),
		slog.String("database", cfg.DB.DBName),
		slog.Int("max_conns", int(pool.Config().MaxConns)))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing database pool",
				slog.Int("acquired_conns", int(stat.AcquiredConns())),
				slog.Int("total_conns", int(stat.TotalConns())))
			cleanup()
			return nil
		},
	})

	return pool, nil
}
