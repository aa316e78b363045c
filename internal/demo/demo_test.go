package demo

import (
	"testing"

	"github.com/ascendquiz/ascendquiz/internal/pool"
)

func TestNewPool(t *testing.T) {
	p, err := NewPool()
	if err != nil {
		t.Fatalf("demo pool failed validation: %v", err)
	}
	if p.Len() != 15 {
		t.Errorf("expected 15 demo questions, got %d", p.Len())
	}
}

func TestQuestions_TiersMatchPredicted(t *testing.T) {
	for _, q := range Questions() {
		if q.Tier != pool.TierFromPredicted(q.PredictedCorrect) {
			t.Errorf("%s: tier %d, predicted %d", q.ID, q.Tier, q.PredictedCorrect)
		}
	}
}

func TestQuestions_CoversMultipleTiers(t *testing.T) {
	tiers := make(map[pool.Tier]bool)
	for _, q := range Questions() {
		tiers[q.Tier] = true
	}
	if len(tiers) < 3 {
		t.Errorf("demo pool only spans %d tiers", len(tiers))
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	a := Questions()
	a[0].Text = "mutated"
	b := Questions()
	if b[0].Text == "mutated" {
		t.Error("Questions returned shared backing slice")
	}
}
