package metrics

// PayloadsReceiver defines the callback contract a metric manager invokes on each delivery
type PayloadsReceiver interface {
	// OnPayloadsReceived is called with one batch of payloads, processed synchronously to completion
	OnPayloadsReceived(payloads []Payload)

	IsInterfaceNil() bool
}

// HistogrammedTimeMetric defines a metric kind whose samples are delivered as a duration histogram.
// The launch and responsiveness metrics are unrelated otherwise, this capability is what lets a
// single averaging routine handle both.
type HistogrammedTimeMetric interface {
	Histogram() Histogram
	IsInterfaceNil() bool
}

// Payload defines one delivered batch of metric data for a time window, as handed over by the
// host metric manager
type Payload interface {
	// IncludesMultipleApplicationVersions returns true when the payload spans more than one
	// application version. Such payloads can not be attributed to the running build.
	IncludesMultipleApplicationVersions() bool

	// ApplicationVersion returns the application version string the payload was recorded under
	ApplicationVersion() string

	// LaunchMetric returns the time-to-first-draw metric or nil when the payload does not carry it
	LaunchMetric() HistogrammedTimeMetric

	// ResponsivenessMetric returns the hang time metric or nil when the payload does not carry it
	ResponsivenessMetric() HistogrammedTimeMetric

	IsInterfaceNil() bool
}
