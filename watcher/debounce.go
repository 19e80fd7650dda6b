package watcher

import "time"

// A debounce fires once after a burst of triggers has been quiet for the
// trigger duration.
type debounce struct {
	timer    *time.Timer
	C        <-chan time.Time
	deadline time.Time
}

// trigger schedules the debounce to fire after dt. If it is already
// scheduled, the deadline moves and the timer is rescheduled when it fires.
func (d *debounce) trigger(dt time.Duration) {
	if d.C != nil {
		d.deadline = time.Now().Add(dt)
		return
	}
	if d.timer == nil {
		d.timer = time.NewTimer(dt)
	} else {
		d.timer.Reset(dt)
	}
	d.C = d.timer.C
	d.deadline = time.Time{}
}

// fired must be called after receiving from C. It reports whether the
// deadline has passed, and reschedules the timer if it has not.
func (d *debounce) fired() bool {
	d.C = nil
	if d.deadline.IsZero() {
		return true
	}
	rem := time.Until(d.deadline)
	if rem <= 0 {
		return true
	}
	d.trigger(rem)
	return false
}

func (d *debounce) stop() {
	if d.timer != nil {
		d.timer.Stop()
	}
}
