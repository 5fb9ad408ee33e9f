package bootstrap

import (
	"voucher-pipeline/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MetricsModule,
	components.RepositoryModule,
	components.UseCaseModule,
	QueueModule,
	components.ConsumerModule,
	components.HandlerModule,
)
