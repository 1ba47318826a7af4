package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 100000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d calls, got %d", n, counter)
	}
}

func TestForCoversEveryIndex(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	n := 1000
	seen := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestForSmallRunsInline(t *testing.T) {
	cfg := DefaultConfig()

	// Below MinChunkSize the body runs on the calling goroutine in order.
	var order []int
	For(10, func(i int) {
		order = append(order, i)
	}, cfg)

	for i, v := range order {
		if v != i {
			t.Fatalf("inline run out of order at %d: %v", i, order)
		}
	}
}

func TestForZeroAndNegative(_ *testing.T) {
	cfg := DefaultConfig()
	For(0, func(_ int) { panic("should not be called") }, cfg)
	For(-5, func(_ int) { panic("should not be called") }, cfg)
}

func TestForChunked(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 10}

	n := 1000
	covered := make([]int32, n)
	ForChunked(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
	}, cfg)

	for i, c := range covered {
		if c != 1 {
			t.Fatalf("index %d covered %d times, want 1", i, c)
		}
	}
}

func TestForChunkedSequential(t *testing.T) {
	var calls int
	ForChunked(100, func(start, end int) {
		calls++
		if start != 0 || end != 100 {
			t.Errorf("sequential chunk = [%d, %d), want [0, 100)", start, end)
		}
	}, Sequential())

	if calls != 1 {
		t.Errorf("sequential run made %d calls, want 1", calls)
	}
}
