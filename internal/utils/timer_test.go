package utils

import (
	"testing"
	"time"
)

func TestTimer_StopFreezesDuration(t *testing.T) {
	timer := NewTimer()
	time.Sleep(2 * time.Millisecond)

	first := timer.Stop()
	if first < 2*time.Millisecond {
		t.Errorf("Stop() = %v, want at least 2ms", first)
	}

	time.Sleep(2 * time.Millisecond)
	if second := timer.Stop(); second != first {
		t.Errorf("second Stop() = %v, want %v", second, first)
	}
}

func TestTimer_Milliseconds(t *testing.T) {
	timer := NewTimer()
	time.Sleep(time.Millisecond)

	ms := timer.Milliseconds()
	if ms < 1 {
		t.Errorf("Milliseconds() = %v, want at least 1", ms)
	}
	if got := timer.Milliseconds(); got != ms {
		t.Errorf("Milliseconds() changed after stop: %v then %v", ms, got)
	}
}
