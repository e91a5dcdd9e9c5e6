package feed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesServedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_pages_served_total",
			Help: "Total number of feed pages served",
		},
	)

	profilesFilteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_profiles_filtered_total",
			Help: "Total number of profiles dropped from pages by block filtering",
		},
	)
)

func RecordPageServed() {
	pagesServedTotal.Inc()
}

func RecordProfileFiltered() {
	profilesFilteredTotal.Inc()
}
