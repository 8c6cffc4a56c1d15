package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/iulianpascalau/app-vitals-monitoring/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receiverStub struct {
	batches [][]metrics.Payload
}

func (stub *receiverStub) OnPayloadsReceived(payloads []metrics.Payload) {
	stub.batches = append(stub.batches, payloads)
}

func (stub *receiverStub) IsInterfaceNil() bool {
	return stub == nil
}

func writePayloadFile(t *testing.T, dir string, name string, appVersion string) {
	contents := `{"metaData": {"appVersion": "` + appVersion + `"}}`
	require.Nil(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
}

func TestNewDirMetricManager(t *testing.T) {
	t.Parallel()

	t.Run("missing directory should error", func(t *testing.T) {
		t.Parallel()

		manager, err := NewDirMetricManager(filepath.Join(t.TempDir(), "missing"))

		assert.Nil(t, manager)
		assert.True(t, manager.IsInterfaceNil())
		assert.Error(t, err)
	})
	t.Run("path pointing to a file should error", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "payload.json")
		require.Nil(t, os.WriteFile(file, []byte("{}"), 0644))

		manager, err := NewDirMetricManager(file)

		assert.Nil(t, manager)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		manager, err := NewDirMetricManager(t.TempDir())

		assert.NotNil(t, manager)
		assert.False(t, manager.IsInterfaceNil())
		assert.Nil(t, err)
	})
}

func TestDirMetricManager_Process(t *testing.T) {
	t.Parallel()

	t.Run("empty directory should deliver nothing", func(t *testing.T) {
		t.Parallel()

		manager, _ := NewDirMetricManager(t.TempDir())
		receiver := &receiverStub{}
		manager.AddSubscriber(receiver)

		manager.Process(context.Background())

		assert.Empty(t, receiver.batches)
	})
	t.Run("should deliver each payload file once", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePayloadFile(t, dir, "a.json", "1.0.0")
		writePayloadFile(t, dir, "b.json", "1.0.1")

		manager, _ := NewDirMetricManager(dir)
		receiver := &receiverStub{}
		manager.AddSubscriber(receiver)

		manager.Process(context.Background())
		manager.Process(context.Background()) // second scan sees no new files

		require.Len(t, receiver.batches, 1)
		assert.Len(t, receiver.batches[0], 2)
	})
	t.Run("new files should arrive as a new batch", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePayloadFile(t, dir, "a.json", "1.0.0")

		manager, _ := NewDirMetricManager(dir)
		receiver := &receiverStub{}
		manager.AddSubscriber(receiver)

		manager.Process(context.Background())
		writePayloadFile(t, dir, "b.json", "1.0.1")
		manager.Process(context.Background())

		require.Len(t, receiver.batches, 2)
		assert.Equal(t, "1.0.0", receiver.batches[0][0].ApplicationVersion())
		assert.Equal(t, "1.0.1", receiver.batches[1][0].ApplicationVersion())
	})
	t.Run("malformed and foreign files should be skipped", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.Nil(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"noVersion": true}`), 0644))
		require.Nil(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a payload"), 0644))
		writePayloadFile(t, dir, "ok.json", "1.0.0")

		manager, _ := NewDirMetricManager(dir)
		receiver := &receiverStub{}
		manager.AddSubscriber(receiver)

		manager.Process(context.Background())

		require.Len(t, receiver.batches, 1)
		require.Len(t, receiver.batches[0], 1)
		assert.Equal(t, "1.0.0", receiver.batches[0][0].ApplicationVersion())
	})
	t.Run("all subscribers should receive the batch", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePayloadFile(t, dir, "a.json", "1.0.0")

		manager, _ := NewDirMetricManager(dir)
		receiver1 := &receiverStub{}
		receiver2 := &receiverStub{}
		manager.AddSubscriber(receiver1)
		manager.AddSubscriber(receiver2)

		manager.Process(context.Background())

		assert.Len(t, receiver1.batches, 1)
		assert.Len(t, receiver2.batches, 1)
	})
}
