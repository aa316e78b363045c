package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ascendquiz/ascendquiz/internal/pool"
)

func testQuestion(id string, tier pool.Tier, predicted int) pool.Question {
	return pool.Question{
		ID:               id,
		Text:             "question " + id,
		Topic:            "General",
		Tier:             tier,
		PredictedCorrect: predicted,
		Options:          []string{"w", "x", "y", "z"},
		CorrectIndex:     2,
		Explanation:      "explanation " + id,
	}
}

// ladderPool has one question per tier with predicted correctness
// 20,30,...,90, plus extras appended by the caller.
func ladderPool(t *testing.T, extra ...pool.Question) *pool.Pool {
	t.Helper()
	var qs []pool.Question
	for tier := 1; tier <= 8; tier++ {
		qs = append(qs, testQuestion(fmt.Sprintf("t%d", tier), pool.Tier(tier), tier*10+10))
	}
	qs = append(qs, extra...)
	p, err := pool.New(qs)
	if err != nil {
		t.Fatalf("pool.New: %v", err)
	}
	return p
}

// flatPool holds n questions all in the same tier with the same
// predicted correctness.
func flatPool(t *testing.T, n int, tier pool.Tier, predicted int) *pool.Pool {
	t.Helper()
	var qs []pool.Question
	for i := 0; i < n; i++ {
		qs = append(qs, testQuestion(fmt.Sprintf("f%d", i), tier, predicted))
	}
	p, err := pool.New(qs)
	if err != nil {
		t.Fatalf("pool.New: %v", err)
	}
	return p
}

func startController(t *testing.T, p *pool.Pool) (*Controller, pool.Question) {
	t.Helper()
	c, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	events, err := c.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	presented, ok := events[0].(QuestionPresented)
	if !ok {
		t.Fatalf("first event is %T, want QuestionPresented", events[0])
	}
	return c, presented.Question
}

// answer submits a correct or incorrect choice for the current question
// and returns the resulting events.
func answer(t *testing.T, c *Controller, correct bool) []Event {
	t.Helper()
	q, ok := c.Current()
	if !ok {
		t.Fatal("no current question")
	}
	chosen := q.CorrectIndex
	if !correct {
		chosen = (q.CorrectIndex + 1) % pool.OptionCount
	}
	events, err := c.SubmitAnswer(q.ID, chosen)
	if err != nil {
		t.Fatalf("SubmitAnswer(%s): %v", q.ID, err)
	}
	return events
}

func finishedEvent(events []Event) (SessionFinished, bool) {
	for _, e := range events {
		if fin, ok := e.(SessionFinished); ok {
			return fin, true
		}
	}
	return SessionFinished{}, false
}

func TestNewRejectsEmptyPool(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, pool.ErrEmptyPool) {
		t.Fatalf("New(nil) error = %v, want ErrEmptyPool", err)
	}
}

// The first question is anchored at the tier whose predicted correctness
// is nearest 70%: with 20,30,...,90 that is the tier-6 question (70%).
func TestStartAnchorsNearestSeventy(t *testing.T) {
	_, first := startController(t, ladderPool(t))
	if first.Tier != 6 {
		t.Errorf("start tier = %d, want 6", first.Tier)
	}
}

func TestStartTwice(t *testing.T) {
	c, _ := startController(t, ladderPool(t))
	if _, err := c.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("second Start error = %v, want ErrAlreadyStarted", err)
	}
}

func TestSubmitBeforeStart(t *testing.T) {
	c, err := New(ladderPool(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.SubmitAnswer("t1", 0); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("error = %v, want ErrNotStarted", err)
	}
}

func TestUnknownQuestionLeavesStateUnchanged(t *testing.T) {
	c, first := startController(t, ladderPool(t))

	_, err := c.SubmitAnswer("no-such-id", 0)
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("error = %v, want ErrUnknownQuestion", err)
	}

	if len(c.History()) != 0 {
		t.Error("history grew after rejected submission")
	}
	if cur, ok := c.Current(); !ok || cur.ID != first.ID {
		t.Error("current question changed after rejected submission")
	}

	// The correct id still works.
	if _, err := c.SubmitAnswer(first.ID, first.CorrectIndex); err != nil {
		t.Fatalf("retry with correct id: %v", err)
	}
}

// A second SubmitAnswer while one is evaluating is rejected with ErrBusy
// and leaves the first call's outcome intact.
func TestReentrantSubmitRejected(t *testing.T) {
	c, first := startController(t, ladderPool(t))

	c.evaluating.Store(true)
	if _, err := c.SubmitAnswer(first.ID, first.CorrectIndex); !errors.Is(err, ErrBusy) {
		t.Fatalf("re-entrant error = %v, want ErrBusy", err)
	}
	c.evaluating.Store(false)

	events, err := c.SubmitAnswer(first.ID, first.CorrectIndex)
	if err != nil {
		t.Fatalf("serialized submit: %v", err)
	}
	if len(c.History()) != 1 {
		t.Errorf("history length = %d, want 1", len(c.History()))
	}
	if _, ok := events[0].(AnswerEvaluated); !ok {
		t.Errorf("first event is %T, want AnswerEvaluated", events[0])
	}
}

// Correct at tier t<8 moves the target to t+1; incorrect at t>1 moves it
// to t-1.
func TestTierWalk(t *testing.T) {
	p := flatPool(t, 20, 4, 70)
	c, _ := startController(t, p)

	answer(t, c, true)
	if c.TargetTier() != 5 {
		t.Errorf("after correct at 4: target = %d, want 5", c.TargetTier())
	}

	// The next question is a tier-4 substitute; incorrect walks down.
	answer(t, c, false)
	if c.TargetTier() != 3 {
		t.Errorf("after incorrect at 4: target = %d, want 3", c.TargetTier())
	}
}

// Repeated wrong answers walk down to tier 1 and stay clamped there.
func TestIncorrectStreakClampsAtTierOne(t *testing.T) {
	var extra []pool.Question
	for i := 0; i < 5; i++ {
		extra = append(extra, testQuestion(fmt.Sprintf("x%d", i), 1, 92))
	}
	c, _ := startController(t, ladderPool(t, extra...))

	for {
		if _, ok := c.Current(); !ok {
			break
		}
		events := answer(t, c, false)
		if c.Phase() != PhaseFinished && c.TargetTier() < pool.TierMin {
			t.Fatalf("target tier %d fell below 1", c.TargetTier())
		}
		if fin, ok := finishedEvent(events); ok {
			if fin.MasteryAchieved {
				t.Error("all-wrong session reported mastery")
			}
			if fin.Reason != FinishExhausted {
				t.Errorf("reason = %q, want exhausted", fin.Reason)
			}
			return
		}
	}
	t.Fatal("session never finished")
}

// Five correct answers in the tier >= 6 band with 100% accuracy finish
// the session with mastery.
func TestHighTierAccuracyMastery(t *testing.T) {
	p := flatPool(t, 8, 6, 70)
	c, _ := startController(t, p)

	for i := 1; i <= 5; i++ {
		events := answer(t, c, true)
		fin, done := finishedEvent(events)
		if i < 5 {
			if done {
				t.Fatalf("finished after %d answers, want 5", i)
			}
			continue
		}
		if !done {
			t.Fatal("not finished after 5th high-tier correct answer")
		}
		if !fin.MasteryAchieved {
			t.Error("mastery not achieved")
		}
		if fin.Reason != FinishHighTierAccuracy {
			t.Errorf("reason = %q, want %q", fin.Reason, FinishHighTierAccuracy)
		}
		if len(fin.History) != 5 {
			t.Errorf("history length = %d, want 5", len(fin.History))
		}
	}
}

// Below the high-tier band the weighted score rule ends the session once
// enough answers are in.
func TestScoreRuleMastery(t *testing.T) {
	p := flatPool(t, 10, 3, 80)
	c, _ := startController(t, p)

	for i := 1; i <= 5; i++ {
		events := answer(t, c, true)
		fin, done := finishedEvent(events)
		if i < 5 && done {
			t.Fatalf("finished after %d answers, want 5", i)
		}
		if i == 5 {
			if !done {
				t.Fatal("not finished after 5 correct answers")
			}
			if fin.Reason != FinishScore {
				t.Errorf("reason = %q, want %q", fin.Reason, FinishScore)
			}
			if fin.FinalScore < 70 {
				t.Errorf("final score = %.1f, want >= 70", fin.FinalScore)
			}
		}
	}
}

// Index exhaustion before mastery ends the session early, non-mastery,
// with the standing score.
func TestExhaustedFinish(t *testing.T) {
	p, err := pool.New([]pool.Question{
		testQuestion("a", 1, 95),
		testQuestion("b", 2, 87),
	})
	if err != nil {
		t.Fatalf("pool.New: %v", err)
	}
	c, _ := startController(t, p)

	answer(t, c, false)
	events := answer(t, c, false)

	fin, done := finishedEvent(events)
	if !done {
		t.Fatal("session did not finish on exhaustion")
	}
	if fin.MasteryAchieved {
		t.Error("exhausted session reported mastery")
	}
	if fin.Reason != FinishExhausted {
		t.Errorf("reason = %q, want %q", fin.Reason, FinishExhausted)
	}
	if _, err := c.SubmitAnswer("a", 0); !errors.Is(err, ErrFinished) {
		t.Fatalf("submit after finish error = %v, want ErrFinished", err)
	}
}

// When the exact target tier is spent the nearest substitute is served
// without surfacing an error.
func TestNearestTierSubstitution(t *testing.T) {
	p, err := pool.New([]pool.Question{
		testQuestion("mid", 4, 70),
		testQuestion("low", 2, 86),
	})
	if err != nil {
		t.Fatalf("pool.New: %v", err)
	}
	c, _ := startController(t, p)

	// Correct at tier 4 targets tier 5; only the tier-2 question remains.
	events := answer(t, c, true)
	presented, ok := events[1].(QuestionPresented)
	if !ok {
		t.Fatalf("second event is %T, want QuestionPresented", events[1])
	}
	if presented.Question.ID != "low" {
		t.Errorf("substitute = %q, want %q", presented.Question.ID, "low")
	}
}

// The mastery score stays within [0,100] after every update and the
// history never repeats a question id.
func TestScoreBoundsAndUniqueHistory(t *testing.T) {
	c, _ := startController(t, ladderPool(t))

	correct := false
	for {
		if _, ok := c.Current(); !ok {
			break
		}
		correct = !correct
		answer(t, c, correct)

		if s := c.Score(); s < 0 || s > 100 {
			t.Fatalf("score %.2f outside [0,100]", s)
		}
		if c.Phase() == PhaseFinished {
			break
		}
	}

	seen := make(map[string]bool)
	for _, item := range c.History() {
		if seen[item.QuestionID] {
			t.Fatalf("question %s answered twice", item.QuestionID)
		}
		seen[item.QuestionID] = true
	}
}

func TestSnapshotTopicBreakdown(t *testing.T) {
	qa := testQuestion("a", 4, 70)
	qa.Topic = "Algebra"
	qb := testQuestion("b", 5, 60)
	qb.Topic = "Biology"
	qc := testQuestion("c", 5, 58)
	qc.Topic = "Biology"

	p, err := pool.New([]pool.Question{qa, qb, qc})
	if err != nil {
		t.Fatalf("pool.New: %v", err)
	}
	c, _ := startController(t, p)

	answer(t, c, true)
	answer(t, c, false)
	answer(t, c, true)

	snap := c.Snapshot()
	if snap.QuestionsAnswered != 3 {
		t.Errorf("QuestionsAnswered = %d, want 3", snap.QuestionsAnswered)
	}
	if len(snap.Items) != 3 {
		t.Fatalf("Items length = %d, want 3", len(snap.Items))
	}
	total := 0
	for _, tally := range snap.TopicBreakdown {
		total += tally.Attempts
	}
	if total != 3 {
		t.Errorf("topic attempts total = %d, want 3", total)
	}
	if snap.SessionID != c.ID() {
		t.Error("snapshot session id mismatch")
	}
}
