package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot captures a learner's engine state for one exam, enabling fast
// restore without replaying the entire answer log.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("stream").
			NotEmpty().
			Comment("Exam code the state belongs to"),
		field.Int64("sequence").
			Comment("Answer event sequence number at the time of snapshot"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.Bytes("data").
			Comment("Encoded engine state"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream", "sequence"),
	}
}
