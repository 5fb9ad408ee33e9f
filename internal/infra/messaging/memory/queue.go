// Package memory is an in-process queue with the same delivery contract as
// the RabbitMQ driver: manual ack, requeue on nack, a delivery limit and a
// dead-letter list.
package memory

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"voucher-pipeline/internal/domain/command"
	"voucher-pipeline/internal/infra/messaging"
	"voucher-pipeline/internal/pkg/errs"
)

var ErrQueueClosed = errs.New("memory queue closed")

type Queue struct {
	deliveries    chan *delivery
	done          chan struct{}
	closeOnce     sync.Once
	maxDeliveries int
	seq           atomic.Int64
	outstanding   atomic.Int64

	mu          sync.Mutex
	deadLetters [][]byte
}

func NewQueue(capacity, maxDeliveries int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{
		deliveries:    make(chan *delivery, capacity),
		done:          make(chan struct{}),
		maxDeliveries: maxDeliveries,
	}
}

func (q *Queue) Publish(ctx context.Context, cmd command.Command) error {
	body, err := messaging.Encode(cmd)
	if err != nil {
		return errs.Mark(err, errs.ErrDeliveryFailed)
	}
	return q.PublishRaw(ctx, body)
}

// PublishRaw enqueues an already encoded body.
func (q *Queue) PublishRaw(ctx context.Context, body []byte) error {
	d := &delivery{
		queue:   q,
		body:    body,
		id:      strconv.FormatInt(q.seq.Add(1), 10),
		attempt: 1,
	}
	q.outstanding.Add(1)
	if err := q.enqueue(ctx, d); err != nil {
		q.outstanding.Add(-1)
		return errs.Mark(err, errs.ErrDeliveryFailed)
	}
	return nil
}

func (q *Queue) enqueue(ctx context.Context, d *delivery) error {
	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}
	select {
	case q.deliveries <- d:
		return nil
	case <-q.done:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) Consume(ctx context.Context) (<-chan messaging.Delivery, error) {
	select {
	case <-q.done:
		return nil, ErrQueueClosed
	default:
	}

	out := make(chan messaging.Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-q.done:
				return
			case d := <-q.deliveries:
				select {
				case out <- d:
				case <-ctx.Done():
					q.requeue(d, false)
					return
				case <-q.done:
					q.outstanding.Add(-1)
					return
				}
			}
		}
	}()
	return out, nil
}

// requeue puts d back. A redelivery bumps the attempt counter, so a
// message that reaches the delivery limit goes to the dead-letter list.
func (q *Queue) requeue(d *delivery, redeliver bool) {
	next := &delivery{queue: q, body: d.body, id: d.id, attempt: d.attempt}
	if redeliver {
		next.attempt++
		if q.maxDeliveries > 0 && next.attempt > q.maxDeliveries {
			q.deadLetter(d.body)
			return
		}
	}
	go func() {
		if err := q.enqueue(context.Background(), next); err != nil {
			q.outstanding.Add(-1)
		}
	}()
}

func (q *Queue) deadLetter(body []byte) {
	q.mu.Lock()
	q.deadLetters = append(q.deadLetters, body)
	q.mu.Unlock()
	q.outstanding.Add(-1)
}

func (q *Queue) DeadLetters() [][]byte {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([][]byte, len(q.deadLetters))
	copy(out, q.deadLetters)
	return out
}

// Outstanding counts messages that are queued or in flight. Close discards
// queued messages, so afterwards only unsettled deliveries are counted.
func (q *Queue) Outstanding() int64 {
	return q.outstanding.Load()
}

func (q *Queue) Close() error {
	q.closeOnce.Do(func() {
		close(q.done)
		for {
			select {
			case <-q.deliveries:
				q.outstanding.Add(-1)
			default:
				return
			}
		}
	})
	return nil
}

type delivery struct {
	queue   *Queue
	body    []byte
	id      string
	attempt int
	settled atomic.Bool
}

var errAlreadySettled = errs.New("delivery already acknowledged")

func (d *delivery) Body() []byte      { return d.body }
func (d *delivery) Attempt() int      { return d.attempt }
func (d *delivery) MessageID() string { return d.id }

func (d *delivery) Ack() error {
	if !d.settled.CompareAndSwap(false, true) {
		return errAlreadySettled
	}
	d.queue.outstanding.Add(-1)
	return nil
}

func (d *delivery) Nack(requeue bool) error {
	if !d.settled.CompareAndSwap(false, true) {
		return errAlreadySettled
	}
	if requeue {
		d.queue.requeue(d, true)
		return nil
	}
	d.queue.deadLetter(d.body)
	return nil
}
