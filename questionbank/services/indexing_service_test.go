package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConcurrentFirstAccessOpensIndexOnce(t *testing.T) {
	service := NewIndexingService(zap.NewNop(), t.TempDir())

	// All goroutines hit a fresh service at once, so every one of them sees
	// an empty index map and tries to open the same index path.
	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs <- service.IndexDocument("questions", fmt.Sprintf("doc-%d", n), map[string]interface{}{
				"question": fmt.Sprintf("question number %d", n),
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	idx, err := service.GetIndex("questions")
	require.NoError(t, err)

	count, err := idx.DocCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(writers), count)
}

func TestGetIndexReturnsSameInstance(t *testing.T) {
	service := NewIndexingService(zap.NewNop(), t.TempDir())

	first, err := service.GetIndex("questions")
	require.NoError(t, err)

	second, err := service.GetIndex("questions")
	require.NoError(t, err)

	assert.Same(t, first, second)
}
