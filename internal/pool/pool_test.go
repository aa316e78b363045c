package pool

import (
	"errors"
	"fmt"
	"testing"
)

// makeQuestion builds a minimal valid question for tests.
func makeQuestion(id string, tier Tier, predicted int) Question {
	return Question{
		ID:               id,
		Text:             "question " + id,
		Topic:            "General",
		Tier:             tier,
		PredictedCorrect: predicted,
		Options:          []string{"a", "b", "c", "d"},
		CorrectIndex:     1,
		Explanation:      "because",
	}
}

func TestTierFromPredicted(t *testing.T) {
	cases := []struct {
		pct  int
		want Tier
	}{
		{0, 8},
		{29, 8},
		{30, 7},
		{39, 7},
		{40, 6},
		{49, 6},
		{50, 5},
		{64, 5},
		{65, 4},
		{74, 4},
		{75, 3},
		{84, 3},
		{85, 2},
		{89, 2},
		{90, 1},
		{100, 1},
	}
	for _, c := range cases {
		if got := TierFromPredicted(c.pct); got != c.want {
			t.Errorf("TierFromPredicted(%d) = %d, want %d", c.pct, got, c.want)
		}
	}
}

func TestTierLabel(t *testing.T) {
	if got := Tier(1).Label(); got != "Very Easy" {
		t.Errorf("Tier(1).Label() = %q, want %q", got, "Very Easy")
	}
	if got := Tier(8).Label(); got != "Very Hard" {
		t.Errorf("Tier(8).Label() = %q, want %q", got, "Very Hard")
	}
	if got := Tier(0).Label(); got != "Unknown" {
		t.Errorf("Tier(0).Label() = %q, want %q", got, "Unknown")
	}
}

func TestTierClamp(t *testing.T) {
	if got := Tier(0).Clamp(); got != TierMin {
		t.Errorf("Clamp below = %d, want %d", got, TierMin)
	}
	if got := Tier(9).Clamp(); got != TierMax {
		t.Errorf("Clamp above = %d, want %d", got, TierMax)
	}
	if got := Tier(5).Clamp(); got != 5 {
		t.Errorf("Clamp in range = %d, want 5", got)
	}
}

func TestNewEmptyPool(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("New(nil) error = %v, want ErrEmptyPool", err)
	}
}

func TestNewRejectsMalformed(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Question)
	}{
		{"missing id", func(q *Question) { q.ID = "" }},
		{"missing text", func(q *Question) { q.Text = "" }},
		{"tier too low", func(q *Question) { q.Tier = 0 }},
		{"tier too high", func(q *Question) { q.Tier = 9 }},
		{"predicted negative", func(q *Question) { q.PredictedCorrect = -1 }},
		{"predicted over 100", func(q *Question) { q.PredictedCorrect = 101 }},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }},
		{"correct index negative", func(q *Question) { q.CorrectIndex = -1 }},
		{"correct index out of range", func(q *Question) { q.CorrectIndex = 4 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := makeQuestion("q1", 3, 80)
			c.mutate(&q)
			_, err := New([]Question{q})
			if !errors.Is(err, ErrInvalidPool) {
				t.Fatalf("error = %v, want ErrInvalidPool", err)
			}
			var iqe *InvalidQuestionError
			if !errors.As(err, &iqe) {
				t.Fatalf("error %v is not an InvalidQuestionError", err)
			}
		})
	}
}

func TestNewRejectsDuplicateID(t *testing.T) {
	qs := []Question{
		makeQuestion("dup", 2, 85),
		makeQuestion("dup", 3, 80),
	}
	_, err := New(qs)
	if !errors.Is(err, ErrInvalidPool) {
		t.Fatalf("error = %v, want ErrInvalidPool", err)
	}
}

func TestPoolByID(t *testing.T) {
	p, err := New([]Question{makeQuestion("q1", 4, 70), makeQuestion("q2", 5, 60)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	q, ok := p.ByID("q2")
	if !ok || q.Tier != 5 {
		t.Errorf("ByID(q2) = (%+v, %v), want tier-5 question", q, ok)
	}
	if _, ok := p.ByID("missing"); ok {
		t.Error("ByID(missing) reported found")
	}
}

// One question per tier with predicted correctness 20,30,...,90: the
// anchor search for 70% must land on the tier-6 question (70%).
func TestTierNearestPredicted(t *testing.T) {
	var qs []Question
	for tier := 1; tier <= 8; tier++ {
		qs = append(qs, makeQuestion(fmt.Sprintf("q%d", tier), Tier(tier), tier*10+10))
	}
	p, err := New(qs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := p.TierNearestPredicted(70); got != 6 {
		t.Errorf("TierNearestPredicted(70) = %d, want 6", got)
	}
}

func TestTierNearestPredictedTieBreaksLow(t *testing.T) {
	p, err := New([]Question{
		makeQuestion("hi", 5, 75), // distance 5 above
		makeQuestion("lo", 3, 65), // distance 5 below
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := p.TierNearestPredicted(70); got != 3 {
		t.Errorf("TierNearestPredicted(70) = %d, want lower tier 3 on tie", got)
	}
}
