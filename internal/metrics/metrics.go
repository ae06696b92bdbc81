package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	PlantingsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlantingsRecorded,
			Help: HelpTextPlantingsRecorded,
		},
	)

	PlantingsRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlantingsRemoved,
			Help: HelpTextPlantingsRemoved,
		},
	)

	CalendarRebuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCalendarRebuilds,
			Help: HelpTextCalendarRebuilds,
		},
	)

	CalendarCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCalendarCacheHits,
			Help: HelpTextCalendarCacheHits,
		},
	)

	CalendarSkippedEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCalendarSkippedEntries,
			Help: HelpTextCalendarSkippedEntries,
		},
		[]string{LabelReason},
	)

	JournalEntriesAppended = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJournalEntriesAppended,
			Help: HelpTextJournalEntriesAppended,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)
