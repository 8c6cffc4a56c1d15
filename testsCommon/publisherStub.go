package testsCommon

import (
	"github.com/iulianpascalau/app-vitals-monitoring/common"
)

// PublisherStub -
type PublisherStub struct {
	PublishHandler func(attributes common.AggregatedAttributes)
}

// Publish -
func (stub *PublisherStub) Publish(attributes common.AggregatedAttributes) {
	if stub.PublishHandler != nil {
		stub.PublishHandler(attributes)
	}
}

// IsInterfaceNil -
func (stub *PublisherStub) IsInterfaceNil() bool {
	return stub == nil
}
