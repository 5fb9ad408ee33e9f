package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "voucher"

// Publish results.
const (
	ResultConfirmed = "confirmed"
	ResultFailed    = "failed"
)

type Pipeline struct {
	published *prometheus.CounterVec
	processed *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func NewPipeline(reg prometheus.Registerer) *Pipeline {
	p := &Pipeline{
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_published_total",
			Help:      "Commands submitted to the queue, by kind and publish result.",
		}, []string{"kind", "result"}),
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_processed_total",
			Help:      "Deliveries handled by the consumer, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_processing_seconds",
			Help:      "Time spent handling one delivery.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind", "outcome"}),
	}
	reg.MustRegister(p.published, p.processed, p.duration)
	return p
}

func (p *Pipeline) ObservePublished(kind, result string) {
	p.published.WithLabelValues(kind, result).Inc()
}

func (p *Pipeline) ObserveProcessed(kind, outcome string, elapsed time.Duration) {
	p.processed.WithLabelValues(kind, outcome).Inc()
	p.duration.WithLabelValues(kind, outcome).Observe(elapsed.Seconds())
}

// Processed returns the counter for tests and health probes.
func (p *Pipeline) Processed(kind, outcome string) prometheus.Counter {
	return p.processed.WithLabelValues(kind, outcome)
}

func (p *Pipeline) Published(kind, result string) prometheus.Counter {
	return p.published.WithLabelValues(kind, result)
}
