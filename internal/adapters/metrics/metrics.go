// Package metrics records task and reload server measurements with the
// Prometheus client.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/assetpipe/internal/core/ports"
)

var _ ports.Metrics = (*Recorder)(nil)

const namespace = "assetpipe"

// Recorder implements ports.Metrics on a private registry.
type Recorder struct {
	registry     *prometheus.Registry
	taskDuration *prometheus.HistogramVec
	taskRuns     *prometheus.CounterVec
	reloads      *prometheus.CounterVec
	clients      prometheus.Gauge
}

// New creates a Recorder with the Go runtime and process collectors
// registered beside the pipeline metrics.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		taskDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "task_duration_seconds",
			Help:      "Duration of task runs.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 4, 8),
		}, []string{"task"}),
		taskRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_runs_total",
			Help:      "Task runs by outcome.",
		}, []string{"task", "status"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reloads_total",
			Help:      "Reload broadcasts by target.",
		}, []string{"target"}),
		clients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reload_clients",
			Help:      "Browsers connected to the reload channel.",
		}),
	}

	r.registry.MustRegister(
		r.taskDuration,
		r.taskRuns,
		r.reloads,
		r.clients,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveTask records one finished task run.
func (r *Recorder) ObserveTask(name string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	r.taskDuration.WithLabelValues(name).Observe(duration.Seconds())
	r.taskRuns.WithLabelValues(name, status).Inc()
}

// ObserveReload records one reload broadcast.
func (r *Recorder) ObserveReload(target string) {
	r.reloads.WithLabelValues(target).Inc()
}

// ClientConnected records a browser joining the reload channel.
func (r *Recorder) ClientConnected() {
	r.clients.Inc()
}

// ClientDisconnected records a browser leaving the reload channel.
func (r *Recorder) ClientDisconnected() {
	r.clients.Dec()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
