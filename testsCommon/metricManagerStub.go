package testsCommon

import (
	"github.com/iulianpascalau/app-vitals-monitoring/metrics"
)

// MetricManagerStub -
type MetricManagerStub struct {
	AddSubscriberHandler func(receiver metrics.PayloadsReceiver)
}

// AddSubscriber -
func (stub *MetricManagerStub) AddSubscriber(receiver metrics.PayloadsReceiver) {
	if stub.AddSubscriberHandler != nil {
		stub.AddSubscriberHandler(receiver)
	}
}

// IsInterfaceNil -
func (stub *MetricManagerStub) IsInterfaceNil() bool {
	return stub == nil
}
