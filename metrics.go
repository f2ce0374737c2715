package tinytindb

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "tinytindb"

const (
	rejectTableFull = "table_full"
	rejectEncode    = "encode"
	rejectOther     = "other"
)

// Metrics counts what the executor does to a table
type Metrics struct {
	RowsInserted    prometheus.Counter
	InsertsRejected *prometheus.CounterVec
	Selects         prometheus.Counter
	RowsScanned     prometheus.Counter
	PagesAllocated  prometheus.Gauge
}

// NewMetrics create the collectors and register them on reg, a nil reg keeps them private
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RowsInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rows_inserted_total",
			Help:      "Rows appended to the table.",
		}),
		InsertsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "inserts_rejected_total",
			Help:      "Insert statements that left the table unchanged.",
		}, []string{"reason"}),
		Selects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "selects_total",
			Help:      "Full table scans.",
		}),
		RowsScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rows_scanned_total",
			Help:      "Rows decoded by table scans.",
		}),
		PagesAllocated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "pages_allocated",
			Help:      "Pages currently held by the table.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.RowsInserted, m.InsertsRejected, m.Selects, m.RowsScanned, m.PagesAllocated)
	}
	return m
}
