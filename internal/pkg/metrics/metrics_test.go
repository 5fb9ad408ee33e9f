//go:build unit

package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_ObservePublished(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPipeline(reg)

	p.ObservePublished("CREATE", ResultConfirmed)
	p.ObservePublished("CREATE", ResultConfirmed)
	p.ObservePublished("REDEEM", ResultFailed)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.Published("CREATE", ResultConfirmed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.Published("REDEEM", ResultFailed)))
	assert.Equal(t, 0.0, testutil.ToFloat64(p.Published("EXPIRE", ResultConfirmed)))
}

func TestPipeline_ObserveProcessed(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPipeline(reg)

	p.ObserveProcessed("REDEEM", "rejected", 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(p.Processed("REDEEM", "rejected")))

	expected := `
# HELP voucher_commands_processed_total Deliveries handled by the consumer, by kind and outcome.
# TYPE voucher_commands_processed_total counter
voucher_commands_processed_total{kind="REDEEM",outcome="rejected"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "voucher_commands_processed_total")
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "voucher_command_processing_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewPipeline_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPipeline(reg)

	assert.Panics(t, func() { NewPipeline(reg) })
}
