package rabbitmq

import (
	"context"
	"log/slog"
	"sync"

	"voucher-pipeline/internal/domain/command"
	"voucher-pipeline/internal/infra/messaging"
	"voucher-pipeline/internal/pkg/clock"
	"voucher-pipeline/internal/pkg/config"
	"voucher-pipeline/internal/pkg/errs"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrNotConnected = errs.New("not connected to RabbitMQ")

// Publisher sends commands to the work queue and waits for the broker's
// publisher confirm before returning.
type Publisher struct {
	cfg    config.QueueConfig
	clock  clock.Clock
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(cfg config.QueueConfig, clock clock.Clock, logger *slog.Logger) *Publisher {
	return &Publisher{
		cfg:    cfg,
		clock:  clock,
		logger: logger,
	}
}

func (p *Publisher) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connectLocked()
}

func (p *Publisher) connectLocked() error {
	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		return errs.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "failed to open channel")
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "failed to enable publisher confirms")
	}

	if err := declareTopology(ch, p.cfg); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	p.conn = conn
	p.ch = ch
	p.logger.Info("RabbitMQ publisher connected", slog.String("queue", p.cfg.Queue))
	return nil
}

// channel returns the open channel, reconnecting once if the previous
// connection was lost.
func (p *Publisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn, p.ch = nil, nil
	}

	p.logger.Warn("RabbitMQ publisher channel closed, reconnecting")
	if err := p.connectLocked(); err != nil {
		return nil, errs.Mark(err, ErrNotConnected)
	}
	return p.ch, nil
}

func (p *Publisher) Publish(ctx context.Context, cmd command.Command) error {
	body, err := messaging.Encode(cmd)
	if err != nil {
		return errs.Mark(err, errs.ErrDeliveryFailed)
	}

	ch, err := p.channel()
	if err != nil {
		return errs.Mark(err, errs.ErrDeliveryFailed)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.PublishTimeout)
	defer cancel()

	msg := amqp.Publishing{
		ContentType:  messaging.ContentType,
		Type:         messaging.MessageType,
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    p.clock.Now(),
		Body:         body,
	}

	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx, "", p.cfg.Queue, false, false, msg)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to publish command"), errs.ErrDeliveryFailed)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "publisher confirm not received"), errs.ErrDeliveryFailed)
	}
	if !acked {
		return errs.Mark(errs.Newf("broker nacked message %s", msg.MessageId), errs.ErrDeliveryFailed)
	}

	p.logger.DebugContext(ctx, "command confirmed by broker",
		slog.String("message_id", msg.MessageId),
		slog.String("action", cmd.Kind().String()))
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
			lastErr = err
		}
		p.ch = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
			lastErr = err
		}
		p.conn = nil
	}
	return lastErr
}

