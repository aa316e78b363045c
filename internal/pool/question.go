package pool

// Tier buckets question difficulty on a 1-8 scale, derived from the
// predicted-correctness percentage. Tier 1 is the easiest.
type Tier int

const (
	TierMin Tier = 1
	TierMax Tier = 8
)

// NumTiers is the number of difficulty tiers.
const NumTiers = int(TierMax)

var tierLabels = [NumTiers]string{
	"Very Easy",
	"Easy",
	"Fairly Easy",
	"Medium",
	"Fairly Hard",
	"Hard",
	"Harder",
	"Very Hard",
}

// Label returns the human-readable name for the tier.
// Out-of-range tiers return "Unknown".
func (t Tier) Label() string {
	if t < TierMin || t > TierMax {
		return "Unknown"
	}
	return tierLabels[t-1]
}

// Valid reports whether the tier is within [1,8].
func (t Tier) Valid() bool {
	return t >= TierMin && t <= TierMax
}

// Clamp returns the tier forced into [1,8].
func (t Tier) Clamp() Tier {
	if t < TierMin {
		return TierMin
	}
	if t > TierMax {
		return TierMax
	}
	return t
}

// TierFromPredicted maps a predicted-correctness percentage to a tier.
// Low predicted correctness means few learners would get it right, so the
// question lands in a high tier.
func TierFromPredicted(pct int) Tier {
	switch {
	case pct < 30:
		return 8
	case pct < 40:
		return 7
	case pct < 50:
		return 6
	case pct < 65:
		return 5
	case pct < 75:
		return 4
	case pct < 85:
		return 3
	case pct < 90:
		return 2
	default:
		return 1
	}
}

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question is one multiple-choice question from the generated pool.
// Questions are created once by the generation collaborator and never
// mutated afterwards.
type Question struct {
	// ID uniquely identifies the question within its pool.
	ID string

	// Text is the question prompt shown to the learner.
	Text string

	// Topic is the subject-area tag used for per-topic statistics.
	Topic string

	// Tier is the difficulty tier (1-8) this question belongs to.
	Tier Tier

	// PredictedCorrect is the estimated percentage of learners (0-100)
	// who would answer correctly. The raw difficulty signal behind Tier.
	PredictedCorrect int

	// Options holds exactly 4 answer choices.
	Options []string

	// CorrectIndex is the index into Options of the correct answer.
	CorrectIndex int

	// Explanation is shown after the learner answers.
	Explanation string
}

// IsCorrect reports whether the chosen option index is the right answer.
func (q Question) IsCorrect(chosen int) bool {
	return chosen == q.CorrectIndex
}
