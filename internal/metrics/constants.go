package metrics

// HTTP Metric Names
const (
	MetricNameHTTPRequestsTotal    = "sproutlog_http_requests_total"
	MetricNameHTTPRequestDuration  = "sproutlog_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "sproutlog_http_requests_in_flight"
)

// Business Metric Names
const (
	MetricNamePlantingsRecorded      = "sproutlog_plantings_recorded_total"
	MetricNamePlantingsRemoved       = "sproutlog_plantings_removed_total"
	MetricNameCalendarRebuilds       = "sproutlog_calendar_rebuilds_total"
	MetricNameCalendarCacheHits      = "sproutlog_calendar_cache_hits_total"
	MetricNameCalendarSkippedEntries = "sproutlog_calendar_skipped_entries_total"
	MetricNameJournalEntriesAppended = "sproutlog_journal_entries_appended_total"
)

// Event Metric Names
const (
	MetricNameEventsPublished    = "sproutlog_events_published_total"
	MetricNameEventHandlerErrors = "sproutlog_event_handler_errors_total"
)

// Metric Help Texts
const (
	HelpTextHTTPRequestsTotal      = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration    = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight   = "Number of HTTP requests currently being served"
	HelpTextPlantingsRecorded      = "Total number of planting records created"
	HelpTextPlantingsRemoved       = "Total number of planting records removed"
	HelpTextCalendarRebuilds       = "Total number of full calendar annotation rebuilds"
	HelpTextCalendarCacheHits      = "Total number of calendar views served from cache"
	HelpTextCalendarSkippedEntries = "Total number of calendar input entries skipped"
	HelpTextJournalEntriesAppended = "Total number of journal entries appended"
	HelpTextEventsPublished        = "Total number of events published to the bus"
	HelpTextEventHandlerErrors     = "Total number of event handler failures"
)

// Metric Label Names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelReason = "reason"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
