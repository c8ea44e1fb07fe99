package audit

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fit-analyzer/internal/types"
)

func TestMemoryRecorder_AppendAndRecent(t *testing.T) {
	rec := NewMemoryRecorder()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := rec.Append(ctx, &types.AuditRecord{RunID: fmt.Sprintf("run-%d", i)})
		require.NoError(t, err)
	}

	recent := rec.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "run-0", recent[0].RunID)
	assert.Equal(t, "run-2", recent[2].RunID)
}

func TestMemoryRecorder_RingEvictsOldest(t *testing.T) {
	rec := NewMemoryRecorderSize(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, rec.Append(ctx, &types.AuditRecord{RunID: fmt.Sprintf("run-%d", i)}))
	}

	recent := rec.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "run-2", recent[0].RunID)
	assert.Equal(t, "run-4", recent[2].RunID)
}

func TestMemoryRecorder_ConcurrentAppends(t *testing.T) {
	rec := NewMemoryRecorderSize(256)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = rec.Append(ctx, &types.AuditRecord{RunID: fmt.Sprintf("run-%d", n)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, rec.Recent(), 100)
}

func TestMemoryRecorder_StoresACopy(t *testing.T) {
	rec := NewMemoryRecorder()
	record := &types.AuditRecord{RunID: "run-a", RawScore: 70}
	require.NoError(t, rec.Append(context.Background(), record))

	record.RawScore = 99

	recent := rec.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, 70, recent[0].RawScore)
}

func TestHashInput(t *testing.T) {
	a := HashInput([]byte("resume body"))
	b := HashInput([]byte("resume body"))
	c := HashInput([]byte("different body"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
