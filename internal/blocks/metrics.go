package blocks

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var blocksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "blocks_recorded_total",
		Help: "Total number of block relations recorded",
	},
)

func RecordBlock() {
	blocksTotal.Inc()
}
