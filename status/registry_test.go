package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetIsStable(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("engine.ticks")
	b := r.Ints.Get("engine.ticks")
	if a != b {
		t.Fatal("Expected the same pointer for the same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

func TestConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Ints.Get("session.catches").Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Ints.Get("session.catches").Load(); got != 16000 {
		t.Errorf("Expected 16000, got %d", got)
	}
}

func TestAtomicFloatStoreMax(t *testing.T) {
	var f AtomicFloat
	f.StoreMax(2.5)
	f.StoreMax(1.5)
	if f.Load() != 2.5 {
		t.Errorf("Expected 2.5, got %v", f.Load())
	}
	f.Store(1)
	if f.Load() != 1 {
		t.Errorf("Expected 1 after Store, got %v", f.Load())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Zero value should read empty")
	}
	s.Store("abcdefghijklmnopqrstuvwxyz")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected truncation to %d, got %q", MaxStringLen, s.Load())
	}
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("session.items").Store(7)
	r.Ints.Get("engine.ticks").Store(120)
	r.Floats.Get("session.best_combo").Store(2.5)
	r.Strings.Get("session.motion").Store("belt")

	got := r.Snapshot()
	want := []string{"engine.ticks=120", "session.best_combo=2.50", "session.items=7", "session.motion=belt"}
	if len(got) != len(want) {
		t.Fatalf("Snapshot = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Snapshot[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
