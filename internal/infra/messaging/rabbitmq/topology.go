package rabbitmq

import (
	"voucher-pipeline/internal/pkg/config"
	"voucher-pipeline/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// declareTopology declares the work queue and its dead-letter queue.
// Both sides declare it, so whichever connects first creates it.
//
// The work queue is a quorum queue: the broker tracks x-delivery-count and
// dead-letters a message once it exceeds x-delivery-limit.
func declareTopology(ch *amqp.Channel, cfg config.QueueConfig) error {
	if _, err := ch.QueueDeclare(
		cfg.DeadLetterQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return errs.Wrapf(err, "failed to declare dead-letter queue %s", cfg.DeadLetterQueue)
	}

	if _, err := ch.QueueDeclare(
		cfg.Queue,
		true,
		false,
		false,
		false,
		queueArgs(cfg),
	); err != nil {
		return errs.Wrapf(err, "failed to declare queue %s", cfg.Queue)
	}
	return nil
}

func queueArgs(cfg config.QueueConfig) amqp.Table {
	return amqp.Table{
		amqp.QueueTypeArg:           amqp.QueueTypeQuorum,
		"x-delivery-limit":          int32(cfg.MaxDeliveries),
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.DeadLetterQueue,
	}
}

// deliveryAttempt turns the broker's x-delivery-count (previous failed
// deliveries, absent on the first one) into a 1-based attempt number.
func deliveryAttempt(headers amqp.Table) int {
	switch v := headers["x-delivery-count"].(type) {
	case int64:
		return int(v) + 1
	case int32:
		return int(v) + 1
	case int:
		return v + 1
	default:
		return 1
	}
}
