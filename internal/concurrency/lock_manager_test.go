package concurrency

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_WithLockSerializes(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock("game", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Zero(t, lm.Len())
}

func TestLockManager_KeysAreIndependent(t *testing.T) {
	lm := NewLockManager()
	entered := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = lm.WithLock("a", func() error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	done := make(chan struct{})
	go func() {
		_ = lm.WithLock("b", func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("key b blocked behind key a")
	}
	assert.Equal(t, 1, lm.Len())
	close(release)
}

func TestLockManager_WithLockReturnsError(t *testing.T) {
	lm := NewLockManager()
	want := errors.New("nope")

	assert.Equal(t, want, lm.WithLock("k", func() error { return want }))
	assert.Zero(t, lm.Len())
	assert.NoError(t, lm.WithLock("k", func() error { return nil }))
}
