package web

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	filterEvaluations  *prometheus.CounterVec
	filterResultSize   prometheus.Histogram
	revealSkipped      prometheus.Counter
	contactSubmissions *prometheus.CounterVec
	pageVisits         *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		filterEvaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "filter_evaluations_total",
			Help:      "Project filter evaluations by surface.",
		}, []string{"surface"}),
		filterResultSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Name:      "filter_result_size",
			Help:      "Number of projects returned per filter evaluation.",
			Buckets:   prometheus.LinearBuckets(0, 1, 10),
		}),
		revealSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "reveal_skipped_total",
			Help:      "Result fragments not re-rendered because the id sequence was unchanged.",
		}),
		contactSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		pageVisits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "page_visits_total",
			Help:      "Tracked page visits by route.",
		}, []string{"route"}),
	}
	reg.MustRegister(
		m.filterEvaluations,
		m.filterResultSize,
		m.revealSkipped,
		m.contactSubmissions,
		m.pageVisits,
	)
	return m
}

func (m *metrics) observeFilter(surface string, size int) {
	m.filterEvaluations.WithLabelValues(surface).Inc()
	m.filterResultSize.Observe(float64(size))
}
