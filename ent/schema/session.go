package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is a tutoring session aggregate. The message count is bumped
// atomically in the database as turns are handled.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("UUID identifying the session"),
		field.String("subject").
			NotEmpty().
			Immutable().
			Comment("Subject configuration id: science, math, ..."),
		field.String("student_name").
			Default("").
			Comment("Optional student display name"),
		field.String("grade").
			Default("").
			Comment("Optional school grade, free text"),
		field.Int("message_count").
			Default(0).
			NonNegative().
			Comment("Student messages handled in this session"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the session was started"),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Refreshed whenever a turn is handled"),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
