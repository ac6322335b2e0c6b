package locks

import (
	"sync"
	"testing"
)

func TestLockSerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	const workers = 50
	var counter int
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := km.Lock("ledger-1")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Fatalf("counter = %d, want %d", counter, workers)
	}
}

func TestLockIndependentKeys(t *testing.T) {
	km := NewKeyedMutex()

	releaseA := km.Lock("a")
	// a held; b must still be acquirable without blocking
	releaseB := km.Lock("b")
	releaseB()
	releaseA()
}

func TestLockEntryFreedAfterRelease(t *testing.T) {
	km := NewKeyedMutex()

	release := km.Lock("a")
	release()

	km.mu.Lock()
	remaining := len(km.entries)
	km.mu.Unlock()
	if remaining != 0 {
		t.Fatalf("entries = %d after release, want 0", remaining)
	}
}
