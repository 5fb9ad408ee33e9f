package rabbitmq

import (
	"context"
	"log/slog"
	"sync"

	"voucher-pipeline/internal/infra/messaging"
	"voucher-pipeline/internal/pkg/config"
	"voucher-pipeline/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const consumerTag = "voucher-consumer"

// Subscriber consumes the work queue with manual acknowledgement.
//
// The connection outlives the subscription context so that in-flight
// deliveries can still be acked after shutdown begins; Close releases it.
type Subscriber struct {
	cfg    config.QueueConfig
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewSubscriber(cfg config.QueueConfig, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Subscriber) Consume(ctx context.Context) (<-chan messaging.Delivery, error) {
	ch, err := s.open()
	if err != nil {
		return nil, err
	}

	deliveries, err := ch.ConsumeWithContext(
		ctx,
		s.cfg.Queue,
		consumerTag,
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to consume from %s", s.cfg.Queue)
	}

	s.logger.Info("RabbitMQ subscription started",
		slog.String("queue", s.cfg.Queue),
		slog.Int("prefetch", s.cfg.Prefetch))

	out := make(chan messaging.Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				s.logger.Debug("subscription context cancelled")
				return
			case d, ok := <-deliveries:
				if !ok {
					s.logger.Warn("RabbitMQ delivery channel closed")
					return
				}
				select {
				case out <- &delivery{raw: d}:
				case <-ctx.Done():
					// not handed to a worker: return it to the queue untouched
					_ = d.Nack(false, true)
					return
				}
			}
		}
	}()
	return out, nil
}

// open (re)establishes the connection and channel used for consuming.
func (s *Subscriber) open() (*amqp.Channel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ch != nil && !s.ch.IsClosed() {
		return s.ch, nil
	}
	s.closeLocked()

	conn, err := amqp.Dial(s.cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to RabbitMQ")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open channel")
	}
	if err := ch.Qos(s.cfg.Prefetch, 0, false); err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to set QoS")
	}
	if err := declareTopology(ch, s.cfg); err != nil {
		_ = conn.Close()
		return nil, err
	}

	s.conn = conn
	s.ch = ch
	return ch, nil
}

func (s *Subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *Subscriber) closeLocked() error {
	var lastErr error
	if s.ch != nil {
		if err := s.ch.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
			lastErr = err
		}
		s.ch = nil
	}
	if s.conn != nil {
		if err := s.conn.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
			lastErr = err
		}
		s.conn = nil
	}
	return lastErr
}

type delivery struct {
	raw amqp.Delivery
}

func (d *delivery) Body() []byte      { return d.raw.Body }
func (d *delivery) Attempt() int      { return deliveryAttempt(d.raw.Headers) }
func (d *delivery) MessageID() string { return d.raw.MessageId }
func (d *delivery) Ack() error        { return d.raw.Ack(false) }

func (d *delivery) Nack(requeue bool) error {
	return d.raw.Nack(false, requeue)
}
