package factory

import (
	"context"

	"github.com/iulianpascalau/app-vitals-monitoring/common"
	"github.com/iulianpascalau/app-vitals-monitoring/metrics"
	"github.com/iulianpascalau/app-vitals-monitoring/notifier"
)

// MetricManager defines the payload delivery source driven by the components handler
type MetricManager interface {
	AddSubscriber(receiver metrics.PayloadsReceiver)
	// Process performs one delivery pass, pushing any pending payloads to the subscribers
	Process(ctx context.Context)
	IsInterfaceNil() bool
}

// Aggregator defines the component bridging payload deliveries into the notifier
type Aggregator interface {
	Start()
	IsInterfaceNil() bool
}

// Notifier defines the subscribable output channel of the monitor
type Notifier interface {
	Publish(attributes common.AggregatedAttributes)
	Subscribe() (*notifier.Subscription, error)
	Close() error
	IsInterfaceNil() bool
}
