package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single answered question within a quiz
// session. These are the raw data behind topic stats and history.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning quiz session"),
		field.Int("user_id").
			Comment("Owning user"),
		field.String("question_id").
			NotEmpty().
			Comment("Pool question id"),
		field.String("question_text").
			Default("").
			Comment("Question prompt as shown to the learner"),
		field.String("topic").
			Default("").
			Comment("Topic tag of the question"),
		field.Int("tier").
			Comment("Difficulty tier 1-8 of the question"),
		field.Bool("correct").
			Comment("Whether the learner answered correctly"),
		field.Int("seq_in_session").
			Comment("1-based position within the session"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("topic"),
	}
}
