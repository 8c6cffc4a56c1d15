package metrics

import (
	"math"
	"time"
)

// Bucket holds one histogram bucket: how many samples fell at or below End
type Bucket struct {
	Count uint64
	End   time.Duration
}

// Histogram is an ordered set of duration buckets, as delivered by the host metric payloads
type Histogram []Bucket

// AverageMilliseconds computes the mean duration of the histogram, in milliseconds.
// Each bucket's mass is assumed concentrated at its upper bound, so the result is biased
// high by up to one bucket width. This matches the way the host reports these histograms
// and consumers calibrate against it, so the approximation is kept as is.
// The second return value is false when the histogram holds no samples.
func (h Histogram) AverageMilliseconds() (float64, bool) {
	var totalCount uint64
	weightedSum := 0.0
	for _, bucket := range h {
		totalCount += bucket.Count
		weightedSum += float64(bucket.Count) * durationToMilliseconds(bucket.End)
	}

	if totalCount == 0 {
		return 0, false
	}

	avg := weightedSum / float64(totalCount)
	if math.IsNaN(avg) {
		return 0, false
	}

	return avg, true
}

func durationToMilliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
