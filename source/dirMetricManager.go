package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/iulianpascalau/app-vitals-monitoring/metrics"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("source")

const payloadFileExtension = ".json"

// dirMetricManager delivers metric payloads dropped as JSON exports in a watched directory.
// Each scan parses the files not seen before and pushes them as one batch to all subscribers,
// so every payload is delivered at most once per process lifetime.
type dirMetricManager struct {
	dir            string
	mutSubscribers sync.RWMutex
	subscribers    []metrics.PayloadsReceiver
	mutProcessed   sync.Mutex
	processed      map[string]struct{}
}

// NewDirMetricManager creates a new directory-backed metric manager
func NewDirMetricManager(dir string) (*dirMetricManager, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errNotADirectory(dir)
	}

	return &dirMetricManager{
		dir:       dir,
		processed: make(map[string]struct{}),
	}, nil
}

// AddSubscriber registers a receiver for future payload deliveries
func (manager *dirMetricManager) AddSubscriber(receiver metrics.PayloadsReceiver) {
	manager.mutSubscribers.Lock()
	defer manager.mutSubscribers.Unlock()

	manager.subscribers = append(manager.subscribers, receiver)
}

// Process scans the watched directory once, parses the payload files not yet delivered and
// pushes them as one batch to all subscribers. Unreadable or malformed files are logged and
// skipped, they will not be retried.
func (manager *dirMetricManager) Process(ctx context.Context) {
	batch := manager.collectNewPayloads(ctx)
	if len(batch) == 0 {
		return
	}

	log.Debug("delivering payload batch", "num payloads", len(batch))

	manager.mutSubscribers.RLock()
	defer manager.mutSubscribers.RUnlock()

	for _, subscriber := range manager.subscribers {
		subscriber.OnPayloadsReceived(batch)
	}
}

func (manager *dirMetricManager) collectNewPayloads(ctx context.Context) []metrics.Payload {
	entries, err := os.ReadDir(manager.dir)
	if err != nil {
		log.Warn("can not read the payloads directory", "dir", manager.dir, "error", err)
		return nil
	}

	manager.mutProcessed.Lock()
	defer manager.mutProcessed.Unlock()

	batch := make([]metrics.Payload, 0)
	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), payloadFileExtension) {
			continue
		}
		_, alreadyProcessed := manager.processed[entry.Name()]
		if alreadyProcessed {
			continue
		}
		manager.processed[entry.Name()] = struct{}{}

		fullPath := filepath.Join(manager.dir, entry.Name())
		data, err := os.ReadFile(fullPath)
		if err != nil {
			log.Warn("can not read payload file, skipping", "file", fullPath, "error", err)
			continue
		}

		payload, err := ParsePayload(data)
		if err != nil {
			log.Warn("malformed payload file, skipping", "file", fullPath, "error", err)
			continue
		}

		batch = append(batch, payload)
	}

	return batch
}

// IsInterfaceNil returns true if the value under the interface is nil
func (manager *dirMetricManager) IsInterfaceNil() bool {
	return manager == nil
}
