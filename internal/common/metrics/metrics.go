// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AgentExecutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_executions_total",
			Help: "Total number of agent executions",
		},
		[]string{"agent"},
	)

	AgentFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_failures_total",
			Help: "Total number of agent executions that degraded to a fallback",
		},
		[]string{"agent", "error_code"},
	)

	AgentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "agent_duration_seconds",
			Help: "Duration of agent execution in seconds",
		},
		[]string{"agent"},
	)

	TurnsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "turns_active",
			Help: "Number of conversation turns currently in flight",
		},
	)
)
