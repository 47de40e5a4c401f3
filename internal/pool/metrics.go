package pool

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsSet holds the Prometheus collectors for one Pool. Constructed
// only when the caller supplies WithMetrics; a Pool with a nil metricsSet
// collects nothing and takes no Prometheus dependency at runtime.
type metricsSet struct {
	processing  prometheus.Gauge
	emptySweeps prometheus.Counter
	pauses      prometheus.Counter
	unpauses    prometheus.Counter
	stops       prometheus.Counter
	queueDepth  *prometheus.GaugeVec
}

func newMetricsSet(reg prometheus.Registerer, poolName string) *metricsSet {
	factory := promauto.With(reg)

	constLabels := prometheus.Labels{"pool": poolName}

	return &metricsSet{
		processing: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   "wqpool",
			Name:        "processing_workers",
			Help:        "Number of workers currently inside a Process hook.",
			ConstLabels: constLabels,
		}),
		emptySweeps: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "wqpool",
			Name:        "empty_sweeps_total",
			Help:        "Number of full sweeps across all queues that found no work.",
			ConstLabels: constLabels,
		}),
		pauses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "wqpool",
			Name:        "pauses_total",
			Help:        "Number of times the pool has been paused.",
			ConstLabels: constLabels,
		}),
		unpauses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "wqpool",
			Name:        "unpauses_total",
			Help:        "Number of times the pool has been unpaused.",
			ConstLabels: constLabels,
		}),
		stops: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "wqpool",
			Name:        "stops_total",
			Help:        "Number of times the pool has been stopped.",
			ConstLabels: constLabels,
		}),
		queueDepth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "wqpool",
			Name:        "queue_depth",
			Help:        "Number of items pending in a queue as of its most recent Enqueue, for queues whose Hooks supply Len.",
			ConstLabels: constLabels,
		}, []string{"queue", "queue_id"}),
	}
}

// observeQueueLen updates the queue-depth gauge for the queue named
// queueName and identified by id, if lenFn is non-nil. Called with the
// pool's lock held, same as the other hooks besides Process. Only
// Queue.Enqueue calls it, so the gauge is not refreshed when items are
// processed, dequeued or cleared.
func (m *metricsSet) observeQueueLen(queueName string, id uuid.UUID, lenFn func() int) {
	if lenFn == nil {
		return
	}
	m.queueDepth.WithLabelValues(queueName, id.String()).Set(float64(lenFn()))
}
