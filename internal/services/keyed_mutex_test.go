package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerialisesSameKey(t *testing.T) {
	km := newKeyedMutex()

	const workers = 8
	const iterations = 100

	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				km.lock("user-1")
				counter++
				km.unlock("user-1")
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, workers*iterations, counter)
}

func TestKeyedMutex_DropsReleasedEntries(t *testing.T) {
	km := newKeyedMutex()

	km.lock("a")
	km.lock("b")
	assert.Len(t, km.locks, 2)

	km.unlock("a")
	km.unlock("b")
	assert.Len(t, km.locks, 0)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := newKeyedMutex()

	km.lock("a")

	done := make(chan struct{})
	go func() {
		km.lock("b")
		km.unlock("b")
		close(done)
	}()

	// A held lock on one key must not block another key
	<-done
	km.unlock("a")
}
