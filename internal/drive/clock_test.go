package drive

import (
	"testing"
	"time"
)

// fakeNow returns successive times from a script.
type fakeNow struct {
	times []time.Time
	i     int
}

func (f *fakeNow) now() time.Time {
	t := f.times[f.i]
	if f.i < len(f.times)-1 {
		f.i++
	}
	return t
}

func TestClockZeroBeforeStart(t *testing.T) {
	c := NewClock(nil)
	if got := c.Seconds(); got != 0 {
		t.Errorf("Seconds() before Start = %v, want 0", got)
	}
}

func TestClockElapsed(t *testing.T) {
	t0 := time.Unix(1000, 0)
	f := &fakeNow{times: []time.Time{t0, t0.Add(1500 * time.Millisecond)}}
	c := NewClock(f.now)
	c.Start()
	if got := c.Seconds(); got != 1.5 {
		t.Errorf("Seconds() = %v, want 1.5", got)
	}
}

func TestClockNeverDecreases(t *testing.T) {
	t0 := time.Unix(1000, 0)
	f := &fakeNow{times: []time.Time{
		t0,
		t0.Add(2 * time.Second),
		t0.Add(1 * time.Second), // clock stepped back
		t0.Add(3 * time.Second),
	}}
	c := NewClock(f.now)
	c.Start()

	prev := -1.0
	for i := 0; i < 3; i++ {
		s := c.Seconds()
		if s < prev {
			t.Fatalf("read %d: Seconds() = %v after %v", i, s, prev)
		}
		prev = s
	}
	if prev != 3 {
		t.Errorf("last Seconds() = %v, want 3", prev)
	}
}

func TestClockStartOnce(t *testing.T) {
	t0 := time.Unix(1000, 0)
	f := &fakeNow{times: []time.Time{t0, t0.Add(time.Hour), t0.Add(2 * time.Second)}}
	c := NewClock(f.now)
	c.Start()
	c.Start() // ignored, does not consume a time
	if got := c.Seconds(); got != 3600 {
		t.Errorf("Seconds() = %v, want 3600", got)
	}
}

func TestClockRealTimeMonotonic(t *testing.T) {
	c := NewClock(nil)
	c.Start()
	prev := c.Seconds()
	for i := 0; i < 1000; i++ {
		s := c.Seconds()
		if s < prev {
			t.Fatalf("Seconds() went backwards: %v < %v", s, prev)
		}
		prev = s
	}
}
