package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	inspectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "condmon_inspections_total",
			Help: "Total number of evaluated inspections by overall status.",
		},
		[]string{"status"},
	)

	inspectionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "condmon_inspection_duration_seconds",
			Help:    "Time spent evaluating and storing one inspection.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// ReportCounter is the subset of the store needed to export report counts.
type ReportCounter interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// reportCollector queries the store on each scrape to report stored report
// counts broken down by overall status.
type reportCollector struct {
	store       ReportCounter
	reportsDesc *prometheus.Desc
}

func (c *reportCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.reportsDesc
}

func (c *reportCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	counts, err := c.store.CountByStatus(ctx)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.reportsDesc, err)
		return
	}
	for status, n := range counts {
		ch <- prometheus.MustNewConstMetric(
			c.reportsDesc,
			prometheus.GaugeValue,
			float64(n),
			status,
		)
	}
}

// Register registers all metrics with the default Prometheus registry,
// which already carries the Go and process collectors. Call once at
// startup after the store is initialised.
func Register(store ReportCounter) {
	prometheus.MustRegister(
		inspectionsTotal,
		inspectionDuration,

		&reportCollector{
			store: store,
			reportsDesc: prometheus.NewDesc(
				"condmon_reports_total",
				"Number of stored reports, partitioned by overall status.",
				[]string{"status"},
				nil,
			),
		},
	)
}

// ObserveInspection records one completed inspection evaluation.
func ObserveInspection(status string, elapsed time.Duration) {
	inspectionsTotal.WithLabelValues(status).Inc()
	inspectionDuration.Observe(elapsed.Seconds())
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
