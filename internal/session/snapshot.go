package session

import (
	"time"

	"github.com/ascendquiz/ascendquiz/internal/pool"
)

// Snapshot is the serializable result of a finished (or in-flight)
// session, handed to an external store at SessionFinished. The
// controller itself never reads or writes storage.
type Snapshot struct {
	SessionID         string                `json:"session_id"`
	FinalScore        float64               `json:"final_score"`
	MasteryAchieved   bool                  `json:"mastery_achieved"`
	Reason            FinishReason          `json:"reason,omitempty"`
	QuestionsAnswered int                   `json:"questions_answered"`
	Items             []SnapshotItem        `json:"items"`
	TopicBreakdown    map[string]TopicTally `json:"topic_breakdown"`
}

// SnapshotItem is one answered question with the context a store needs
// to persist it without access to the pool.
type SnapshotItem struct {
	QuestionID   string    `json:"question_id"`
	QuestionText string    `json:"question_text"`
	Topic        string    `json:"topic"`
	Tier         pool.Tier `json:"tier"`
	Correct      bool      `json:"correct"`
	Seq          int       `json:"seq"`
	At           time.Time `json:"at"`
}

// TopicTally counts attempts and correct answers for one topic.
type TopicTally struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

// Snapshot builds the persistence view of the session.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:         c.id,
		FinalScore:        c.Score(),
		MasteryAchieved:   c.masteryAchieved,
		Reason:            c.finishReason,
		QuestionsAnswered: len(c.history),
		TopicBreakdown:    make(map[string]TopicTally),
	}

	for _, item := range c.history {
		q, _ := c.pool.ByID(item.QuestionID)
		snap.Items = append(snap.Items, SnapshotItem{
			QuestionID:   item.QuestionID,
			QuestionText: q.Text,
			Topic:        q.Topic,
			Tier:         item.Tier,
			Correct:      item.Correct,
			Seq:          item.Seq,
			At:           item.At,
		})

		tally := snap.TopicBreakdown[q.Topic]
		tally.Attempts++
		if item.Correct {
			tally.Correct++
		}
		snap.TopicBreakdown[q.Topic] = tally
	}

	return snap
}
