package components

import (
	"context"
	"log/slog"

	"voucher-pipeline/internal/infra/messaging"
	"voucher-pipeline/internal/pkg/config"
	"voucher-pipeline/internal/pkg/metrics"
	"voucher-pipeline/internal/usecase/commands"
	"voucher-pipeline/internal/worker"

	"go.uber.org/fx"
)

var ConsumerModule = fx.Module("consumer",
	fx.Provide(
		NewConsumer,
	),
	fx.Invoke(func(*worker.Consumer) {}),
)

func NewConsumer(
	lc fx.Lifecycle,
	cfg config.Config,
	source messaging.Source,
	applier commands.VoucherCommands,
	pipeline *metrics.Pipeline,
	logger *slog.Logger,
) *worker.Consumer {
	consumer := worker.NewConsumer(source, applier, pipeline, logger, worker.Options{
		Workers:       cfg.Queue.Workers,
		MaxDeliveries: cfg.Queue.MaxDeliveries,
		RetryBackoff:  cfg.Queue.RetryBackoff,
	})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			consumer.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return consumer.Stop(ctx)
		},
	})
	return consumer
}
