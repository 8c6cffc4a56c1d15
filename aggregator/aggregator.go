package aggregator

import (
	"errors"
	"math"

	"github.com/iulianpascalau/app-vitals-monitoring/common"
	"github.com/iulianpascalau/app-vitals-monitoring/metrics"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("aggregator")

// ArgsMetricsAggregator holds the dependencies needed to create a metrics aggregator
type ArgsMetricsAggregator struct {
	Manager   MetricManager
	BuildInfo BuildInfoProvider
	Publisher Publisher
}

// metricsAggregator bridges the host's push-based payload delivery into the internal publish
// channel, averaging the tracked latency metrics across the payloads of the running version
type metricsAggregator struct {
	manager   MetricManager
	buildInfo BuildInfoProvider
	publisher Publisher
}

// NewMetricsAggregator creates a new metrics aggregator instance
func NewMetricsAggregator(args ArgsMetricsAggregator) (*metricsAggregator, error) {
	if check.IfNil(args.Manager) {
		return nil, errors.New("nil metric manager")
	}
	if check.IfNil(args.BuildInfo) {
		return nil, errors.New("nil build info provider")
	}
	if check.IfNil(args.Publisher) {
		return nil, errors.New("nil publisher")
	}

	return &metricsAggregator{
		manager:   args.Manager,
		buildInfo: args.BuildInfo,
		publisher: args.Publisher,
	}, nil
}

// Start registers this instance with the metric manager, enabling future deliveries
func (aggregator *metricsAggregator) Start() {
	aggregator.manager.AddSubscriber(aggregator)
}

// OnPayloadsReceived computes the tracked averages over the received batch and publishes them.
// Every failure mode here is a "nothing to report" condition, never an error.
func (aggregator *metricsAggregator) OnPayloadsReceived(payloads []metrics.Payload) {
	appVersion, found := aggregator.buildInfo.AppShortVersion()
	if !found {
		log.Debug("app version unavailable, discarding payload batch", "num payloads", len(payloads))
		return
	}

	attributes := make(common.AggregatedAttributes)

	avg, ok := crossPayloadAverage(payloads, appVersion, launchMetric)
	if ok {
		attributes[common.FirstDrawAverageName] = avg
	}

	avg, ok = crossPayloadAverage(payloads, appVersion, responsivenessMetric)
	if ok {
		attributes[common.HangTimeAverageName] = avg
	}

	if len(attributes) == 0 {
		log.Debug("no computable metrics in payload batch, nothing to publish",
			"num payloads", len(payloads), "app version", appVersion)
		return
	}

	log.Debug("publishing aggregated attributes", "attributes", attributes)
	aggregator.publisher.Publish(attributes)
}

func launchMetric(payload metrics.Payload) metrics.HistogrammedTimeMetric {
	return payload.LaunchMetric()
}

func responsivenessMetric(payload metrics.Payload) metrics.HistogrammedTimeMetric {
	return payload.ResponsivenessMetric()
}

// crossPayloadAverage averages one metric kind over all payloads recorded exactly under the
// provided app version. Payloads spanning multiple versions or recorded under another version
// do not qualify. Returns false when no qualifying payload carries a computable value.
func crossPayloadAverage(
	payloads []metrics.Payload,
	appVersion string,
	extractMetric func(metrics.Payload) metrics.HistogrammedTimeMetric,
) (float64, bool) {
	values := make([]float64, 0, len(payloads))
	for _, payload := range payloads {
		if check.IfNil(payload) {
			continue
		}
		if payload.IncludesMultipleApplicationVersions() {
			continue
		}
		if payload.ApplicationVersion() != appVersion {
			continue
		}

		value, ok := metrics.AverageMilliseconds(extractMetric(payload))
		if !ok {
			continue
		}

		values = append(values, value)
	}

	if len(values) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, value := range values {
		sum += value
	}

	mean := sum / float64(len(values))
	if math.IsNaN(mean) {
		return 0, false
	}

	return mean, true
}

// IsInterfaceNil returns true if the value under the interface is nil
func (aggregator *metricsAggregator) IsInterfaceNil() bool {
	return aggregator == nil
}
