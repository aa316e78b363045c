package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizSession records one completed adaptive quiz, from start to
// mastery or pool exhaustion.
type QuizSession struct {
	ent.Schema
}

func (QuizSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned by the session controller"),
		field.Int("user_id").
			Comment("Owning user"),
		field.String("document_name").
			Default("").
			Comment("Source document the pool was generated from"),
		field.Float("final_score").
			Comment("Weighted mastery score 0-100 at termination"),
		field.Bool("mastery_achieved").
			Comment("Whether the session ended in mastery"),
		field.Int("questions_answered").
			Default(0).
			Comment("Total questions answered"),
		field.String("finish_reason").
			Default("").
			Comment("Why the session ended: high_tier_accuracy, score, exhausted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the session completed"),
	}
}

func (QuizSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("created_at"),
	}
}
