//go:build unit

package memory_test

import (
	"context"
	"testing"
	"time"

	"voucher-pipeline/internal/infra/messaging"
	"voucher-pipeline/internal/infra/messaging/memory"
	"voucher-pipeline/internal/pkg/errs"
	"voucher-pipeline/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, deliveries <-chan messaging.Delivery) messaging.Delivery {
	t.Helper()
	select {
	case d, ok := <-deliveries:
		require.True(t, ok, "delivery channel closed")
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
		return nil
	}
}

func TestQueue_PublishAndAck(t *testing.T) {
	q := memory.NewQueue(8, 3)
	defer q.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := builder.NewVoucherBuilder().BuildRedeemCommand()
	require.NoError(t, q.Publish(ctx, cmd))
	assert.Equal(t, int64(1), q.Outstanding())

	deliveries, err := q.Consume(ctx)
	require.NoError(t, err)

	d := receive(t, deliveries)
	assert.Equal(t, 1, d.Attempt())
	assert.NotEmpty(t, d.MessageID())

	decoded, err := messaging.Decode(d.Body())
	require.NoError(t, err)
	assert.Equal(t, cmd, decoded)

	require.NoError(t, d.Ack())
	assert.Equal(t, int64(0), q.Outstanding())
	assert.Error(t, d.Ack(), "second settle must fail")
}

func TestQueue_NackRequeueIncrementsAttempt(t *testing.T) {
	q := memory.NewQueue(8, 3)
	defer q.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, q.PublishRaw(ctx, []byte(`{"voucherCode":"V1","action":"REDEEM"}`)))
	deliveries, err := q.Consume(ctx)
	require.NoError(t, err)

	first := receive(t, deliveries)
	require.NoError(t, first.Nack(true))

	second := receive(t, deliveries)
	assert.Equal(t, 2, second.Attempt())
	assert.Equal(t, first.MessageID(), second.MessageID())
	assert.Equal(t, first.Body(), second.Body())
	require.NoError(t, second.Ack())
	assert.Empty(t, q.DeadLetters())
}

func TestQueue_DeliveryLimitDeadLetters(t *testing.T) {
	q := memory.NewQueue(8, 2)
	defer q.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	body := []byte(`{"voucherCode":"V1","action":"EXPIRE"}`)
	require.NoError(t, q.PublishRaw(ctx, body))
	deliveries, err := q.Consume(ctx)
	require.NoError(t, err)

	require.NoError(t, receive(t, deliveries).Nack(true))
	require.NoError(t, receive(t, deliveries).Nack(true))

	require.Eventually(t, func() bool { return len(q.DeadLetters()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, body, q.DeadLetters()[0])
	assert.Equal(t, int64(0), q.Outstanding())
}

func TestQueue_NackWithoutRequeueDeadLetters(t *testing.T) {
	q := memory.NewQueue(8, 5)
	defer q.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, q.PublishRaw(ctx, []byte(`{}`)))
	deliveries, err := q.Consume(ctx)
	require.NoError(t, err)

	require.NoError(t, receive(t, deliveries).Nack(false))
	assert.Len(t, q.DeadLetters(), 1)
}

func TestQueue_ConsumeClosesOnCancel(t *testing.T) {
	q := memory.NewQueue(1, 1)
	defer q.Close()
	ctx, cancel := context.WithCancel(context.Background())

	deliveries, err := q.Consume(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-deliveries:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestQueue_Closed(t *testing.T) {
	q := memory.NewQueue(1, 1)
	require.NoError(t, q.Close())

	err := q.PublishRaw(context.Background(), []byte(`{}`))
	assert.True(t, errs.Is(err, errs.ErrDeliveryFailed))
	assert.Equal(t, int64(0), q.Outstanding())

	_, err = q.Consume(context.Background())
	assert.ErrorIs(t, err, memory.ErrQueueClosed)
}

func TestQueue_CloseReleasesUndeliveredMessages(t *testing.T) {
	q := memory.NewQueue(8, 3)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for i := 0; i < 3; i++ {
		require.NoError(t, q.PublishRaw(ctx, []byte(`{}`)))
	}
	deliveries, err := q.Consume(ctx)
	require.NoError(t, err)

	inFlight := receive(t, deliveries)
	require.NoError(t, q.Close())

	// only the delivery that is still unsettled counts after close
	require.Eventually(t, func() bool { return q.Outstanding() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, inFlight.Ack())
	assert.Equal(t, int64(0), q.Outstanding())
}
