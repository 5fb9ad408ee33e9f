package components

import (
	"voucher-pipeline/internal/handler"
	"voucher-pipeline/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVoucherHandler,
	),
	fx.Invoke(handler.NewRouter),
)
