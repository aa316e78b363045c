package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicStat accumulates per-user, per-topic answer counts across all
// sessions. One row per (user, topic), upserted on every answer.
type TopicStat struct {
	ent.Schema
}

func (TopicStat) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("Owning user"),
		field.String("topic").
			NotEmpty().
			Comment("Topic tag"),
		field.Int("attempts").
			Default(0).
			Comment("Total questions answered on this topic"),
		field.Int("correct").
			Default(0).
			Comment("Total answered correctly"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last answer on this topic"),
	}
}

func (TopicStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic").Unique(),
	}
}
