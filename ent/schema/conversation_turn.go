package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationTurn is one entry of the append-only conversation log.
// Student turns carry the classification assigned when the turn was handled.
type ConversationTurn struct {
	ent.Schema
}

func (ConversationTurn) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ConversationTurn) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning session"),
		field.String("role").
			NotEmpty().
			Comment("user or model"),
		field.Text("text").
			Comment("Turn content"),
		field.String("response_type").
			Default("").
			Comment("Classification label for student turns"),
		field.Float("confidence").
			Default(0).
			Comment("Classification confidence for student turns"),
	}
}

func (ConversationTurn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "sequence"),
	}
}
