package test

import (
	"sort"
	"sync"
	"time"
	"toot_scheduler/shared"
)

// FakeClock is a manually advanced clock. Timers fire synchronously inside Advance.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	nextId int
	timers map[int]*fakeTimer
}

type fakeTimer struct {
	clock *FakeClock
	id    int
	due   time.Time
	f     func()
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now, timers: make(map[int]*fakeTimer)}
}

func (fc *FakeClock) Now() time.Time {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.now
}

func (fc *FakeClock) AfterFunc(d time.Duration, f func()) shared.ITimer {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.nextId++
	t := &fakeTimer{clock: fc, id: fc.nextId, due: fc.now.Add(d), f: f}
	fc.timers[t.id] = t
	return t
}

// PendingTimers is the number of timers that have neither fired nor been stopped.
func (fc *FakeClock) PendingTimers() int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return len(fc.timers)
}

// Advance moves time forward, firing due timers in order.
func (fc *FakeClock) Advance(d time.Duration) {
	fc.mu.Lock()
	target := fc.now.Add(d)
	fc.mu.Unlock()
	for {
		fc.mu.Lock()
		var due []*fakeTimer
		for _, t := range fc.timers {
			if !t.due.After(target) {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			fc.now = target
			fc.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].due.Equal(due[j].due) {
				return due[i].id < due[j].id
			}
			return due[i].due.Before(due[j].due)
		})
		next := due[0]
		delete(fc.timers, next.id)
		fc.now = next.due
		fc.mu.Unlock()
		next.f()
	}
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if _, ok := t.clock.timers[t.id]; !ok {
		return false
	}
	delete(t.clock.timers, t.id)
	return true
}
