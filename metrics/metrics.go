package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var StoreWriteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "pitchside_store_write_duration_seconds",
	Help: "Duration of collection snapshot writes to the store",
}, []string{"key"})

var AssessmentsGeneratedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pitchside_assessments_generated_total",
	Help: "Number of four-corner assessments generated, by mode",
}, []string{"mode"})

var AnthropicRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "pitchside_anthropic_request_duration_seconds",
	Help: "Duration of requests to the remote assessment service",
})

var AnthropicResponseCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pitchside_anthropic_response_total",
	Help: "The total number of responses by status code from the remote assessment service",
}, []string{"status_code"})

var BackupCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pitchside_backup_total",
	Help: "Number of backup exports and imports",
}, []string{"direction"})
