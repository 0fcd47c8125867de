package signals

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleBuilt_DeliversToListener(t *testing.T) {
	var (
		mu       sync.Mutex
		received []ScheduleBuiltData
	)
	OnScheduleBuilt(func(ctx context.Context, data ScheduleBuiltData) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, data)
	}, "test-listener")
	t.Cleanup(func() { RemoveScheduleBuilt("test-listener") })

	EmitScheduleBuilt(context.Background(), []string{"Monday"}, map[string]int{"Monday": 3})

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, []string{"Monday"}, received[0].Days)
	assert.Equal(t, 3, received[0].Entries["Monday"])
}

func TestScheduleBuilt_RemovedListenerIsNotCalled(t *testing.T) {
	called := false
	OnScheduleBuilt(func(ctx context.Context, data ScheduleBuiltData) {
		called = true
	}, "removed-listener")
	RemoveScheduleBuilt("removed-listener")

	EmitScheduleBuilt(context.Background(), nil, nil)
	assert.False(t, called)
}
