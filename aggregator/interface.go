package aggregator

import (
	"github.com/iulianpascalau/app-vitals-monitoring/common"
	"github.com/iulianpascalau/app-vitals-monitoring/metrics"
)

// MetricManager defines the host-side component that pushes metric payloads to its subscribers
type MetricManager interface {
	// AddSubscriber registers a receiver for future payload deliveries. Idempotency and
	// re-registration behavior are owned by the manager.
	AddSubscriber(receiver metrics.PayloadsReceiver)

	IsInterfaceNil() bool
}

// BuildInfoProvider defines the lookup for the running application's version metadata
type BuildInfoProvider interface {
	// AppShortVersion returns the running build's short version string, false when unavailable
	AppShortVersion() (string, bool)

	IsInterfaceNil() bool
}

// Publisher defines the outbound channel the aggregated attributes are pushed on
type Publisher interface {
	Publish(attributes common.AggregatedAttributes)

	IsInterfaceNil() bool
}
