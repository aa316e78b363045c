package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a learner account. Username-only, no authentication: the
// model is a personal or classroom installation, not a hosted service.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty().
			Unique().
			Comment("Login name, unique per installation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the account was created"),
	}
}
