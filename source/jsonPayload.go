package source

import (
	"time"

	"github.com/iulianpascalau/app-vitals-monitoring/metrics"
	"github.com/tidwall/gjson"
)

// JSON paths inside a payload export file
const (
	multipleVersionsPath = "includesMultipleApplicationVersions"
	appVersionPath       = "metaData.appVersion"
	firstDrawPath        = "applicationLaunchMetrics.histogrammedTimeToFirstDraw.histogramValue"
	hangTimePath         = "applicationResponsivenessMetrics.histogrammedAppHangTime.histogramValue"
	bucketCountField     = "bucketCount"
	bucketEndField       = "bucketEnd" // milliseconds
)

// jsonPayload is one metric payload parsed from its JSON export
type jsonPayload struct {
	appVersion       string
	multipleVersions bool
	launch           metrics.HistogrammedTimeMetric
	responsiveness   metrics.HistogrammedTimeMetric
}

// ParsePayload parses one JSON payload export. The tracked metric sections are optional,
// the version metadata is not.
func ParsePayload(data []byte) (*jsonPayload, error) {
	appVersion := gjson.GetBytes(data, appVersionPath)
	if !appVersion.Exists() {
		return nil, errFieldNotFound(appVersionPath)
	}
	if len(appVersion.String()) == 0 {
		return nil, errEmptyField(appVersionPath)
	}

	payload := &jsonPayload{
		appVersion:       appVersion.String(),
		multipleVersions: gjson.GetBytes(data, multipleVersionsPath).Bool(),
	}

	launchBuckets := parseHistogram(gjson.GetBytes(data, firstDrawPath))
	if launchBuckets != nil {
		payload.launch = &metrics.TimeToFirstDrawMetric{Buckets: launchBuckets}
	}

	hangBuckets := parseHistogram(gjson.GetBytes(data, hangTimePath))
	if hangBuckets != nil {
		payload.responsiveness = &metrics.HangTimeMetric{Buckets: hangBuckets}
	}

	return payload, nil
}

func parseHistogram(value gjson.Result) metrics.Histogram {
	if !value.IsArray() {
		return nil
	}

	buckets := make(metrics.Histogram, 0)
	value.ForEach(func(_ gjson.Result, bucket gjson.Result) bool {
		endMilliseconds := bucket.Get(bucketEndField).Float()
		buckets = append(buckets, metrics.Bucket{
			Count: bucket.Get(bucketCountField).Uint(),
			End:   time.Duration(endMilliseconds * float64(time.Millisecond)),
		})

		return true
	})

	return buckets
}

// IncludesMultipleApplicationVersions returns true when the payload spans more than one app version
func (payload *jsonPayload) IncludesMultipleApplicationVersions() bool {
	return payload.multipleVersions
}

// ApplicationVersion returns the application version the payload was recorded under
func (payload *jsonPayload) ApplicationVersion() string {
	return payload.appVersion
}

// LaunchMetric returns the time-to-first-draw metric or nil when the payload does not carry it
func (payload *jsonPayload) LaunchMetric() metrics.HistogrammedTimeMetric {
	return payload.launch
}

// ResponsivenessMetric returns the hang time metric or nil when the payload does not carry it
func (payload *jsonPayload) ResponsivenessMetric() metrics.HistogrammedTimeMetric {
	return payload.responsiveness
}

// IsInterfaceNil returns true if the value under the interface is nil
func (payload *jsonPayload) IsInterfaceNil() bool {
	return payload == nil
}
