// Package platform holds window-level events that bypass the launcher's
// state dispatcher.
package platform

import (
	"log"
	"sync/atomic"
)

// Events is the platform event queue as seen by menus
type Events interface {
	PostQuit()
}

// Queue is the platform event queue owned by the game loop. PostQuit may be
// called from any goroutine.
type Queue struct {
	quit atomic.Bool
}

// NewQueue creates an empty platform queue
func NewQueue() *Queue {
	return &Queue{}
}

// PostQuit asks the game loop to terminate after the current frame
func (q *Queue) PostQuit() {
	if q.quit.CompareAndSwap(false, true) {
		log.Printf("Platform: quit requested")
	}
}

// QuitRequested reports whether PostQuit has been called
func (q *Queue) QuitRequested() bool {
	return q.quit.Load()
}
