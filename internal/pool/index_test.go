package pool

import (
	"errors"
	"testing"
)

func buildTestIndex(t *testing.T, qs []Question) *Index {
	t.Helper()
	p, err := New(qs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	idx, err := BuildIndex(p)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	return idx
}

func TestBuildIndexNilPool(t *testing.T) {
	_, err := BuildIndex(nil)
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("BuildIndex(nil) error = %v, want ErrEmptyPool", err)
	}
}

func TestFetchExactTier(t *testing.T) {
	idx := buildTestIndex(t, []Question{
		makeQuestion("a", 3, 80),
		makeQuestion("b", 5, 60),
	})

	q, err := idx.Fetch(5, nil)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if q.ID != "b" {
		t.Errorf("Fetch(5) = %q, want %q", q.ID, "b")
	}
}

// Within a bucket, candidates come back in insertion order.
func TestFetchDeterministicTieBreak(t *testing.T) {
	idx := buildTestIndex(t, []Question{
		makeQuestion("first", 4, 70),
		makeQuestion("second", 4, 68),
	})

	for i := 0; i < 3; i++ {
		q, err := idx.Fetch(4, nil)
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if q.ID != "first" {
			t.Fatalf("Fetch attempt %d = %q, want %q", i, q.ID, "first")
		}
	}

	q, err := idx.Fetch(4, map[string]bool{"first": true})
	if err != nil {
		t.Fatalf("Fetch with exclude: %v", err)
	}
	if q.ID != "second" {
		t.Errorf("Fetch excluding first = %q, want %q", q.ID, "second")
	}
}

// Lower adjacent tier wins over the higher one at equal distance.
func TestFetchOutwardSearchPrefersLower(t *testing.T) {
	idx := buildTestIndex(t, []Question{
		makeQuestion("below", 3, 80),
		makeQuestion("above", 5, 60),
	})

	q, err := idx.Fetch(4, nil)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if q.ID != "below" {
		t.Errorf("Fetch(4) = %q, want lower-tier %q", q.ID, "below")
	}
}

func TestFetchWalksOutward(t *testing.T) {
	idx := buildTestIndex(t, []Question{
		makeQuestion("far", 8, 20),
	})

	q, err := idx.Fetch(1, nil)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if q.ID != "far" {
		t.Errorf("Fetch(1) = %q, want %q", q.ID, "far")
	}
}

func TestFetchClampsTarget(t *testing.T) {
	idx := buildTestIndex(t, []Question{makeQuestion("only", 2, 85)})

	q, err := idx.Fetch(11, nil)
	if err != nil {
		t.Fatalf("Fetch(11): %v", err)
	}
	if q.ID != "only" {
		t.Errorf("Fetch(11) = %q, want %q", q.ID, "only")
	}
}

// Two questions, both excluded: every tier is spent.
func TestFetchExhausted(t *testing.T) {
	idx := buildTestIndex(t, []Question{
		makeQuestion("t1", 1, 95),
		makeQuestion("t2", 2, 87),
	})

	exclude := map[string]bool{"t1": true, "t2": true}
	_, err := idx.Fetch(1, exclude)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("Fetch error = %v, want ErrExhausted", err)
	}
}

func TestRemaining(t *testing.T) {
	idx := buildTestIndex(t, []Question{
		makeQuestion("t1", 1, 95),
		makeQuestion("t2", 2, 87),
		makeQuestion("t3", 2, 86),
	})

	if got := idx.Remaining(nil); got != 3 {
		t.Errorf("Remaining(nil) = %d, want 3", got)
	}
	if got := idx.Remaining(map[string]bool{"t2": true}); got != 2 {
		t.Errorf("Remaining(excluding t2) = %d, want 2", got)
	}
}
