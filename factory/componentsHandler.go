package factory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/iulianpascalau/app-vitals-monitoring/aggregator"
	"github.com/iulianpascalau/app-vitals-monitoring/buildinfo"
	"github.com/iulianpascalau/app-vitals-monitoring/common"
	"github.com/iulianpascalau/app-vitals-monitoring/config"
	"github.com/iulianpascalau/app-vitals-monitoring/notifier"
	"github.com/iulianpascalau/app-vitals-monitoring/source"
)

type componentsHandler struct {
	manager          MetricManager
	notifier         Notifier
	aggregator       Aggregator
	mutCancel        sync.Mutex
	cancel           func()
	deliveryInterval time.Duration
}

// NewComponentsHandler creates a new components handler
func NewComponentsHandler(
	appVersion string,
	payloadsDir string,
	cfg config.Config,
) (*componentsHandler, error) {
	if cfg.DeliveryIntervalInSeconds == 0 {
		return nil, errors.New("delivery interval should be at least 1 second")
	}

	manager, err := source.NewDirMetricManager(payloadsDir)
	if err != nil {
		return nil, err
	}

	attributesNotifier, err := notifier.NewAttributesNotifier(cfg.SubscriberBufferSize)
	if err != nil {
		return nil, err
	}

	argsAggregator := aggregator.ArgsMetricsAggregator{
		Manager:   manager,
		BuildInfo: buildinfo.NewBuildInfoProviderWithVersion(appVersion),
		Publisher: attributesNotifier,
	}
	metricsAggregator, err := aggregator.NewMetricsAggregator(argsAggregator)
	if err != nil {
		return nil, err
	}

	metricsAggregator.Start()

	return &componentsHandler{
		manager:          manager,
		notifier:         attributesNotifier,
		aggregator:       metricsAggregator,
		deliveryInterval: time.Duration(cfg.DeliveryIntervalInSeconds) * time.Second,
	}, nil
}

// GetMetricManager returns the metric manager component
func (ch *componentsHandler) GetMetricManager() MetricManager {
	return ch.manager
}

// GetNotifier returns the notifier component
func (ch *componentsHandler) GetNotifier() Notifier {
	return ch.notifier
}

// GetAggregator returns the aggregator component
func (ch *componentsHandler) GetAggregator() Aggregator {
	return ch.aggregator
}

// Start starts the periodic payload delivery
func (ch *componentsHandler) Start() {
	ch.mutCancel.Lock()
	defer ch.mutCancel.Unlock()

	if ch.cancel != nil {
		return
	}

	var ctx context.Context
	ctx, ch.cancel = context.WithCancel(context.Background())

	common.StartPeriodicCalls(ctx, ch.manager.Process, ch.deliveryInterval)
}

// Close closes the inner components
func (ch *componentsHandler) Close() {
	ch.mutCancel.Lock()
	defer ch.mutCancel.Unlock()

	if ch.cancel != nil {
		ch.cancel()
		ch.cancel = nil
	}

	_ = ch.notifier.Close()
}
