package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"voucher-pipeline/internal/infra/messaging"
	"voucher-pipeline/internal/pkg/errs"
	"voucher-pipeline/internal/pkg/metrics"
	"voucher-pipeline/internal/usecase/commands"

	"golang.org/x/sync/errgroup"
)

// Outcome is what the consumer did with one delivery.
type Outcome string

const (
	OutcomeApplied      Outcome = "applied"
	OutcomeRejected     Outcome = "rejected"
	OutcomePoison       Outcome = "poison"
	OutcomeDiscarded    Outcome = "discarded"
	OutcomeRetried      Outcome = "retried"
	OutcomeDeadLettered Outcome = "dead_lettered"
)

const unknownKind = "UNKNOWN"

type Options struct {
	Workers       int
	MaxDeliveries int
	RetryBackoff  time.Duration
}

type Consumer struct {
	source  messaging.Source
	applier commands.VoucherCommands
	metrics *metrics.Pipeline
	logger  *slog.Logger
	opts    Options

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewConsumer(
	source messaging.Source,
	applier commands.VoucherCommands,
	metrics *metrics.Pipeline,
	logger *slog.Logger,
	opts Options,
) *Consumer {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Consumer{
		source:  source,
		applier: applier,
		metrics: metrics,
		logger:  logger,
		opts:    opts,
	}
}

// Start runs the pool in the background until Stop is called.
func (c *Consumer) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})

	go func() {
		defer close(c.done)
		if err := c.Run(ctx); err != nil {
			c.logger.Error("consumer stopped with error", slog.String("error", err.Error()))
		}
	}()
}

// Stop cancels the subscription and waits for in-flight deliveries to finish.
func (c *Consumer) Stop(ctx context.Context) error {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "consumer did not drain before shutdown deadline")
	}
}

// Run consumes until ctx is cancelled. A subscription that ends while ctx is
// still live is re-established after a backoff.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("consumer started", slog.Int("workers", c.opts.Workers))

	for attempt := 0; ctx.Err() == nil; attempt++ {
		deliveries, err := c.source.Consume(ctx)
		if err != nil {
			wait := calculateBackoff(attempt, c.opts.RetryBackoff)
			c.logger.Error("failed to subscribe, retrying",
				slog.String("error", err.Error()),
				slog.Int64("wait_ms", wait.Milliseconds()))
			sleep(ctx.Done(), wait)
			continue
		}
		attempt = 0

		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < c.opts.Workers; i++ {
			worker := i
			g.Go(func() error {
				c.work(gctx, worker, deliveries)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if ctx.Err() == nil {
			c.logger.Warn("subscription ended, resubscribing")
			sleep(ctx.Done(), calculateBackoff(0, c.opts.RetryBackoff))
		}
	}

	c.logger.Info("consumer stopped")
	return nil
}

// work handles one delivery at a time until the channel is closed.
func (c *Consumer) work(ctx context.Context, worker int, deliveries <-chan messaging.Delivery) {
	for d := range deliveries {
		outcome := c.Handle(ctx, d)
		c.logger.Debug("delivery handled",
			slog.Int("worker", worker),
			slog.String("message_id", d.MessageID()),
			slog.String("outcome", string(outcome)))
	}
}

// Handle decodes, applies and settles a single delivery.
func (c *Consumer) Handle(ctx context.Context, d messaging.Delivery) Outcome {
	start := time.Now()
	kind := unknownKind
	outcome := c.handle(ctx, d, &kind)
	c.metrics.ObserveProcessed(kind, string(outcome), time.Since(start))
	return outcome
}

func (c *Consumer) handle(ctx context.Context, d messaging.Delivery, kind *string) Outcome {
	log := c.logger.With(
		slog.String("message_id", d.MessageID()),
		slog.Int("attempt", d.Attempt()))

	cmd, err := messaging.Decode(d.Body())
	if err != nil {
		c.settle(log, d.Ack)
		if errs.Is(err, messaging.ErrUnknownCommand) {
			log.Warn("discarding command of unknown kind", slog.String("error", err.Error()))
			return OutcomeDiscarded
		}
		log.Error("discarding malformed message",
			slog.String("error", err.Error()),
			slog.String("body", string(d.Body())))
		return OutcomePoison
	}

	*kind = cmd.Kind().String()
	log = log.With(
		slog.String("action", *kind),
		slog.String("voucher_code", cmd.VoucherCode().String()))

	// an in-flight command runs to completion even during shutdown
	err = c.applier.Apply(context.WithoutCancel(ctx), cmd)
	switch {
	case err == nil:
		c.settle(log, d.Ack)
		return OutcomeApplied

	case commands.IsRejection(err):
		c.settle(log, d.Ack)
		log.Warn("command rejected", slog.String("reason", err.Error()))
		return OutcomeRejected

	case d.Attempt() >= c.opts.MaxDeliveries:
		c.settle(log, func() error { return d.Nack(false) })
		log.Error("command failed on final attempt, dead-lettering",
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, 10)))
		return OutcomeDeadLettered

	default:
		wait := calculateBackoff(d.Attempt()-1, c.opts.RetryBackoff)
		log.Warn("command failed, requeueing",
			slog.String("error", err.Error()),
			slog.Int64("wait_ms", wait.Milliseconds()))
		sleep(ctx.Done(), wait)
		c.settle(log, func() error { return d.Nack(true) })
		return OutcomeRetried
	}
}

func (c *Consumer) settle(log *slog.Logger, fn func() error) {
	if err := fn(); err != nil {
		log.Error("failed to settle delivery", slog.String("error", err.Error()))
	}
}
