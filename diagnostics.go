package flexbind

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/agiangrant/flexbind"

// NewLogger creates the structured logger used by an engine.
// Output goes to w (stderr when nil) at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("component", "flexbind"))
}

// engineMetrics holds the collectors registered by WithMetrics.
// A nil *engineMetrics records nothing.
type engineMetrics struct {
	passDuration prometheus.Histogram
	slowPasses   prometheus.Counter
	measureCalls prometheus.Counter
	associations prometheus.Gauge
}

func newEngineMetrics(reg prometheus.Registerer) (*engineMetrics, error) {
	m := &engineMetrics{
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flexbind",
			Subsystem: "render",
			Name:      "pass_seconds",
			Help:      "Wall-clock duration of a render pass in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10), // 0.5ms to ~256ms
		}),
		slowPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flexbind",
			Subsystem: "render",
			Name:      "slow_passes_total",
			Help:      "Total number of render passes that exceeded the frame budget",
		}),
		measureCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flexbind",
			Name:      "measure_calls_total",
			Help:      "Total number of widget measurements requested by the solver",
		}),
		associations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flexbind",
			Name:      "associations",
			Help:      "Number of widgets currently associated with a layout node",
		}),
	}

	for _, c := range []prometheus.Collector{m.passDuration, m.slowPasses, m.measureCalls, m.associations} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *engineMetrics) observePass(stats PassStats) {
	if m == nil {
		return
	}
	m.passDuration.Observe(stats.Elapsed.Seconds())
	if stats.OverBudget {
		m.slowPasses.Inc()
	}
}

func (m *engineMetrics) measured() {
	if m != nil {
		m.measureCalls.Inc()
	}
}

func (m *engineMetrics) setAssociations(n int64) {
	if m != nil {
		m.associations.Set(float64(n))
	}
}

// defaultTracer returns a tracer from the global provider.
func defaultTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
