package metric

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const PromNamespace = "lognorm"

// Ctl registers metrics of one subsystem and deduplicates registrations,
// so packages can declare their counters at init time without caring
// whether another instance already did.
type Ctl struct {
	subsystem string
	register  prometheus.Registerer

	metrics map[string]prometheus.Collector
	mu      sync.Mutex
}

func NewCtl(subsystem string, registerer prometheus.Registerer) *Ctl {
	return &Ctl{
		subsystem: subsystem,
		register:  registerer,
		metrics:   make(map[string]prometheus.Collector),
	}
}

func (mc *Ctl) RegisterCounter(name, help string) prometheus.Counter {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: PromNamespace,
		Subsystem: mc.subsystem,
		Name:      name,
		Help:      help,
	})

	return mc.registerMetric(name, counter).(prometheus.Counter)
}

func (mc *Ctl) RegisterCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: PromNamespace,
		Subsystem: mc.subsystem,
		Name:      name,
		Help:      help,
	}, labels)

	return mc.registerMetric(name, counterVec).(*prometheus.CounterVec)
}

func (mc *Ctl) RegisterHistogram(name, help string, buckets []float64) prometheus.Histogram {
	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: PromNamespace,
		Subsystem: mc.subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	})

	return mc.registerMetric(name, histogram).(prometheus.Histogram)
}

func (mc *Ctl) registerMetric(name string, collector prometheus.Collector) prometheus.Collector {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	metric, has := mc.metrics[name]
	if !has {
		metric = collector
		mc.metrics[name] = metric
		mc.register.MustRegister(metric)
	}

	return metric
}
