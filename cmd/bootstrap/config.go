package bootstrap

import (
	"log/slog"

	"voucher-pipeline/internal/handler/middleware"
	"voucher-pipeline/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// LoggerModule provides the one *slog.Logger injected into the HTTP layer,
// the use cases, the broker adapters and the consumer.
var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
