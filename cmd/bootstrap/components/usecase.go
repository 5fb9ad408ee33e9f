package components

import (
	"voucher-pipeline/internal/pkg/clock"
	"voucher-pipeline/internal/usecase"
	"voucher-pipeline/internal/usecase/commands"
	"voucher-pipeline/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseGatewayModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewVoucherCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVoucherQueries,
	),
)

var usecaseGatewayModule = fx.Module("usecase/gateway",
	fx.Provide(
		usecase.NewVoucherUseCase,
	),
)
