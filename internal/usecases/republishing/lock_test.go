package republishing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockRegistry_AcquireRelease(t *testing.T) {
	locks := newLockRegistry()

	assert.True(t, locks.Acquire("123"))
	assert.False(t, locks.Acquire("123"))

	// Outra annonce não é afetada
	assert.True(t, locks.Acquire("456"))

	locks.Release("123")
	assert.True(t, locks.Acquire("123"))
}

func TestLockRegistry_Concurrent(t *testing.T) {
	locks := newLockRegistry()

	const goroutines = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if locks.Acquire("123") {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, acquired)
}
