package runtime

import (
	"github.com/nspcc-dev/tiny-runtime/common"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "tinyrt"

// Metrics used in monitoring service.
var (
	blockNumber = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Help:      "Current block number",
			Name:      "current_block_number",
			Namespace: metricsNamespace,
		},
	)
	blocksExecuted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Help:      "Number of executed blocks",
			Name:      "blocks_executed_total",
			Namespace: metricsNamespace,
		},
	)
	blocksRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Help:      "Number of blocks rejected because of block number mismatch",
			Name:      "blocks_rejected_total",
			Namespace: metricsNamespace,
		},
	)
	extrinsics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of executed extrinsics by result",
			Name:      "extrinsics_total",
			Namespace: metricsNamespace,
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		blockNumber,
		blocksExecuted,
		blocksRejected,
		extrinsics,
	)
}

func updateBlockNumberMetric(n common.BlockNumber) {
	blockNumber.Set(float64(n))
}

func updateExtrinsicMetric(err error) {
	if err != nil {
		extrinsics.WithLabelValues("failure").Inc()
		return
	}
	extrinsics.WithLabelValues("success").Inc()
}
