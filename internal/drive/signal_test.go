package drive

import (
	"sync"
	"testing"
	"time"
)

func TestSignalCoalesces(t *testing.T) {
	s := NewSignal()
	if s.Pending() {
		t.Fatal("new signal should be lowered")
	}

	if !s.Raise() {
		t.Error("first Raise() = false, want true")
	}
	for i := 0; i < 4; i++ {
		if s.Raise() {
			t.Error("Raise() on a raised signal = true, want false")
		}
	}

	if !s.TryConsume() {
		t.Fatal("TryConsume() = false after Raise")
	}
	if s.TryConsume() {
		t.Error("second TryConsume() = true; five raises must coalesce into one")
	}
}

func TestSignalConcurrentRaise(t *testing.T) {
	s := NewSignal()
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Raise()
		}()
	}
	wg.Wait()

	consumed := 0
	for s.TryConsume() {
		consumed++
	}
	if consumed != 1 {
		t.Errorf("consumed %d times, want 1", consumed)
	}
}

func TestSignalChannel(t *testing.T) {
	s := NewSignal()
	go s.Raise()

	select {
	case <-s.C():
	case <-time.After(time.Second):
		t.Fatal("C() did not yield after Raise")
	}
	if s.Pending() {
		t.Error("receiving from C() should consume the signal")
	}
}
