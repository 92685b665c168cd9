package monitor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iryanin/redfish-monitor/internal/redfish"
)

func TestStoreEmptyBeforeFirstReplace(t *testing.T) {
	store := NewStore()

	assert.Empty(t, store.Current())
	assert.True(t, store.LastUpdate().IsZero())
	assert.Empty(t, store.FailureReason("10.0.0.1"))
}

func TestStoreReplaceInstallsWholeCycle(t *testing.T) {
	store := NewStore()

	snap := redfish.Snapshot{
		"10.0.0.1": {PSUInput: redfish.Metric{Value: 420, Valid: true}},
	}
	failures := map[string]string{"10.0.0.2": "connection refused"}
	store.Replace(snap, failures)

	current := store.Current()
	require.Len(t, current, 1)
	assert.Equal(t, uint64(420), current["10.0.0.1"].PSUInput.Value)
	assert.Equal(t, "connection refused", store.FailureReason("10.0.0.2"))
	assert.Empty(t, store.FailureReason("10.0.0.1"))
	assert.False(t, store.LastUpdate().IsZero())
}

func TestStoreReplaceDropsStaleEntries(t *testing.T) {
	store := NewStore()

	store.Replace(redfish.Snapshot{
		"10.0.0.1": {},
		"10.0.0.2": {},
	}, nil)
	store.Replace(redfish.Snapshot{
		"10.0.0.1": {},
	}, map[string]string{"10.0.0.2": "timeout"})

	current := store.Current()
	assert.Len(t, current, 1)
	assert.NotContains(t, current, "10.0.0.2")
	assert.Equal(t, "timeout", store.FailureReason("10.0.0.2"))
}

func TestStoreReplaceNilMaps(t *testing.T) {
	store := NewStore()
	store.Replace(nil, nil)

	assert.NotNil(t, store.Current())
	assert.Empty(t, store.Current())
	assert.False(t, store.LastUpdate().IsZero())
}

func TestStoreConcurrentReadersAndWriter(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			store.Replace(redfish.Snapshot{
				"10.0.0.1": {CPUTotal: redfish.Metric{Value: uint64(i), Valid: true}},
			}, nil)
		}
		close(done)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				snap := store.Current()
				// A reader sees either no entry yet or a complete one.
				if reading, ok := snap["10.0.0.1"]; ok {
					assert.True(t, reading.CPUTotal.Valid)
				}
				_ = store.LastUpdate()
			}
		}()
	}

	wg.Wait()
}
