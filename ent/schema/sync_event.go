package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncEvent records a sync attempt against the remote service, for
// auditing the fire-and-forget push/pull paths.
type SyncEvent struct {
	ent.Schema
}

func (SyncEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SyncEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("direction").
			NotEmpty().
			Comment("push or pull"),
		field.String("endpoint").NotEmpty(),
		field.Bool("success"),
		field.String("error_message").Default(""),
	}
}

func (SyncEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("direction"),
	}
}
