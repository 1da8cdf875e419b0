package allocator

import (
	"fmt"

	"github.com/c2h5oh/datasize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/atomic"

	"github.com/pavanmanishd/vector"
)

// Instrumented records metrics for every call to the wrapped allocator and
// logs failed allocations.
type Instrumented struct {
	next   vector.Allocator
	logger log.Logger

	// Metrics.
	allocations    prometheus.Counter
	deallocations  prometheus.Counter
	failures       prometheus.Counter
	allocatedBytes prometheus.Counter
	bytesInUse     prometheus.Gauge

	stats struct {
		allocations   atomic.Int64
		deallocations atomic.Int64
		failures      atomic.Int64
		bytesInUse    atomic.Int64
	}
}

// NewInstrumented wraps next. Metrics are registered with r unless r is nil.
// A nil logger discards log lines.
func NewInstrumented(next vector.Allocator, r prometheus.Registerer, logger log.Logger) *Instrumented {
	if next == nil {
		next = vector.DefaultAllocator
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Instrumented{
		next:   next,
		logger: logger,
		allocations: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "vector_allocator_allocations_total",
			Help: "Total number of successful allocations.",
		}),
		deallocations: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "vector_allocator_deallocations_total",
			Help: "Total number of deallocations.",
		}),
		failures: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "vector_allocator_failures_total",
			Help: "Total number of failed allocations.",
		}),
		allocatedBytes: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "vector_allocator_allocated_bytes_total",
			Help: "Total number of bytes handed out.",
		}),
		bytesInUse: promauto.With(r).NewGauge(prometheus.GaugeOpts{
			Name: "vector_allocator_bytes_in_use",
			Help: "Bytes allocated and not yet released.",
		}),
	}
}

// Allocate implements vector.Allocator.
func (a *Instrumented) Allocate(size int) ([]byte, error) {
	b, err := a.next.Allocate(size)
	if err != nil {
		a.failures.Inc()
		a.stats.failures.Inc()
		level.Warn(a.logger).Log("msg", "allocation failed", "bytes", size, "err", err)
		return nil, err
	}
	a.allocations.Inc()
	a.allocatedBytes.Add(float64(len(b)))
	a.bytesInUse.Add(float64(len(b)))
	a.stats.allocations.Inc()
	a.stats.bytesInUse.Add(int64(len(b)))
	level.Debug(a.logger).Log("msg", "allocated", "bytes", len(b))
	return b, nil
}

// Deallocate implements vector.Allocator.
func (a *Instrumented) Deallocate(b []byte) {
	a.deallocations.Inc()
	a.bytesInUse.Sub(float64(len(b)))
	a.stats.deallocations.Inc()
	a.stats.bytesInUse.Sub(int64(len(b)))
	a.next.Deallocate(b)
}

// Stats returns a snapshot of the allocator's counters.
func (a *Instrumented) Stats() Stats {
	return Stats{
		Allocations:   a.stats.allocations.Load(),
		Deallocations: a.stats.deallocations.Load(),
		Failures:      a.stats.failures.Load(),
		BytesInUse:    a.stats.bytesInUse.Load(),
	}
}

// Stats contains counters collected by an Instrumented allocator.
type Stats struct {
	Allocations   int64 // Successful Allocate calls
	Deallocations int64 // Deallocate calls
	Failures      int64 // Failed Allocate calls
	BytesInUse    int64 // Bytes allocated and not yet released
}

func (s Stats) String() string {
	return fmt.Sprintf("allocations=%d deallocations=%d failures=%d in_use=%s",
		s.Allocations, s.Deallocations, s.Failures, datasize.ByteSize(s.BytesInUse).HumanReadable())
}
