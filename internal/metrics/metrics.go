package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SheetFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "propfirms",
		Name:      "sheet_fetches_total",
		Help:      "Firm sheet loads by result (live, cached, error).",
	}, []string{"result"})

	FallbackLoads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "propfirms",
		Name:      "fallback_loads_total",
		Help:      "Times the bundled firm list was served instead of the live sheet.",
	})

	RowIssues = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "propfirms",
		Name:      "sheet_row_issues",
		Help:      "Rows with data quality issues in the most recently built directory.",
	})

	Redirects = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "propfirms",
		Name:      "affiliate_redirects_total",
		Help:      "Outbound affiliate redirects served, by slug.",
	}, []string{"slug"})
)
