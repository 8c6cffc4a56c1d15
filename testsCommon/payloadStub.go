package testsCommon

import (
	"github.com/iulianpascalau/app-vitals-monitoring/metrics"
)

// PayloadStub -
type PayloadStub struct {
	IncludesMultipleApplicationVersionsHandler func() bool
	ApplicationVersionHandler                  func() string
	LaunchMetricHandler                        func() metrics.HistogrammedTimeMetric
	ResponsivenessMetricHandler                func() metrics.HistogrammedTimeMetric
}

// IncludesMultipleApplicationVersions -
func (stub *PayloadStub) IncludesMultipleApplicationVersions() bool {
	if stub.IncludesMultipleApplicationVersionsHandler != nil {
		return stub.IncludesMultipleApplicationVersionsHandler()
	}

	return false
}

// ApplicationVersion -
func (stub *PayloadStub) ApplicationVersion() string {
	if stub.ApplicationVersionHandler != nil {
		return stub.ApplicationVersionHandler()
	}

	return ""
}

// LaunchMetric -
func (stub *PayloadStub) LaunchMetric() metrics.HistogrammedTimeMetric {
	if stub.LaunchMetricHandler != nil {
		return stub.LaunchMetricHandler()
	}

	return nil
}

// ResponsivenessMetric -
func (stub *PayloadStub) ResponsivenessMetric() metrics.HistogrammedTimeMetric {
	if stub.ResponsivenessMetricHandler != nil {
		return stub.ResponsivenessMetricHandler()
	}

	return nil
}

// IsInterfaceNil -
func (stub *PayloadStub) IsInterfaceNil() bool {
	return stub == nil
}
