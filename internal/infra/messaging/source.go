package messaging

import "context"

// Delivery is one received message. Exactly one of Ack or Nack must be
// called per delivery.
type Delivery interface {
	Body() []byte
	// Attempt is 1 on first delivery and grows with every redelivery.
	Attempt() int
	MessageID() string
	Ack() error
	// Nack with requeue=false dead-letters the message.
	Nack(requeue bool) error
}

type Source interface {
	// Consume returns a channel that is closed when the subscription ends,
	// either because ctx was cancelled or the connection dropped.
	Consume(ctx context.Context) (<-chan Delivery, error)
}
