package session

import (
	"time"
)

// Timer delivers one callback per second until stopped. It is the only
// autonomous driver of session state; the component owning the session must
// call Stop on teardown so a discarded session is never mutated.
//
// The callback runs on the timer's goroutine. Since a Session is
// single-threaded, the owner must route user events through the same
// serialization point as the callback.
type Timer struct {
	stop chan struct{}
	done chan struct{}
}

func NewTimer(onTick func()) *Timer {
	return newTimerWithInterval(time.Second, onTick)
}

func newTimerWithInterval(interval time.Duration, onTick func()) *Timer {
	t := &Timer{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				onTick()
			case <-t.stop:
				return
			}
		}
	}()
	return t
}

// Stop cancels the timer and waits for any in-flight tick to finish. Safe to
// call more than once.
func (t *Timer) Stop() {
	select {
	case <-t.stop:
	default:
		close(t.stop)
	}
	<-t.done
}
