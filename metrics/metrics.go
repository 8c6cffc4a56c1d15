package metrics

import "github.com/multiversx/mx-chain-core-go/core/check"

// TimeToFirstDrawMetric holds the histogram of launch durations until the first frame was drawn
type TimeToFirstDrawMetric struct {
	Buckets Histogram
}

// Histogram returns the inner histogram
func (metric *TimeToFirstDrawMetric) Histogram() Histogram {
	return metric.Buckets
}

// IsInterfaceNil returns true if the value under the interface is nil
func (metric *TimeToFirstDrawMetric) IsInterfaceNil() bool {
	return metric == nil
}

// HangTimeMetric holds the histogram of durations the UI was unresponsive
type HangTimeMetric struct {
	Buckets Histogram
}

// Histogram returns the inner histogram
func (metric *HangTimeMetric) Histogram() Histogram {
	return metric.Buckets
}

// IsInterfaceNil returns true if the value under the interface is nil
func (metric *HangTimeMetric) IsInterfaceNil() bool {
	return metric == nil
}

// AverageMilliseconds applies the histogram averaging to any histogrammed time metric,
// treating a nil metric as carrying no value
func AverageMilliseconds(metric HistogrammedTimeMetric) (float64, bool) {
	if check.IfNil(metric) {
		return 0, false
	}

	return metric.Histogram().AverageMilliseconds()
}
