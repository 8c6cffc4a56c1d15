package common

// Metric names used as keys in the published aggregated attributes
const (
	// FirstDrawAverageName is the average time-to-first-draw on application launch
	FirstDrawAverageName = "first_draw_avg"

	// HangTimeAverageName is the average UI hang time
	HangTimeAverageName = "hang_time_avg"
)

// AggregatedAttributes maps a metric name to its averaged value, expressed in milliseconds.
// A new instance is built for every delivered payload batch and discarded after publishing.
type AggregatedAttributes map[string]float64
