package matches

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	likesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_likes_total",
			Help: "Total number of likes recorded",
		},
	)

	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_transitions_total",
			Help: "Match status transitions by resulting status",
		},
		[]string{"to"},
	)

	deletionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_deletions_total",
			Help: "Total number of matches deleted",
		},
	)
)

func RecordLike() {
	likesTotal.Inc()
}

func RecordTransition(to Status) {
	transitionsTotal.WithLabelValues(string(to)).Inc()
}

func RecordDeletion() {
	deletionsTotal.Inc()
}
