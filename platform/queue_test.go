package platform

import (
	"sync"
	"testing"
)

func TestQueuePostQuit(t *testing.T) {
	q := NewQueue()
	if q.QuitRequested() {
		t.Fatal("new queue should not request quit")
	}

	q.PostQuit()
	q.PostQuit()

	if !q.QuitRequested() {
		t.Error("expected quit to be requested after PostQuit")
	}
}

func TestQueuePostQuitFromGoroutines(t *testing.T) {
	q := NewQueue()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.PostQuit()
		}()
	}
	wg.Wait()

	if !q.QuitRequested() {
		t.Error("expected quit to be requested")
	}
}

func TestQueueSatisfiesEvents(t *testing.T) {
	var _ Events = NewQueue()
}
