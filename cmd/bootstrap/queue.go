package bootstrap

import (
	"context"
	"log/slog"

	"voucher-pipeline/internal/infra/messaging"
	"voucher-pipeline/internal/infra/messaging/memory"
	"voucher-pipeline/internal/infra/messaging/rabbitmq"
	"voucher-pipeline/internal/pkg/clock"
	"voucher-pipeline/internal/pkg/config"
	"voucher-pipeline/internal/usecase"

	"go.uber.org/fx"
)

const memoryQueueCapacity = 1024

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewQueue,
	),
)

type QueueResult struct {
	fx.Out

	Publisher usecase.CommandPublisher
	Source    messaging.Source
}

// NewQueue selects the broker by QUEUE_DRIVER. The memory driver serves
// both ends from one in-process queue.
func NewQueue(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (QueueResult, error) {
	if cfg.Queue.Driver == config.QueueDriverMemory {
		q := memory.NewQueue(memoryQueueCapacity, cfg.Queue.MaxDeliveries)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return q.Close()
			},
		})
		logger.Warn("using in-memory queue, commands are lost on restart")
		return QueueResult{Publisher: q, Source: q}, nil
	}

	publisher := rabbitmq.NewPublisher(cfg.Queue, clk, logger)
	subscriber := rabbitmq.NewSubscriber(cfg.Queue, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return publisher.Connect(ctx)
		},
		OnStop: func(_ context.Context) error {
			if err := subscriber.Close(); err != nil {
				logger.Warn("failed to close subscriber", slog.String("error", err.Error()))
			}
			return publisher.Close()
		},
	})
	return QueueResult{Publisher: publisher, Source: subscriber}, nil
}
