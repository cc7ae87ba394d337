package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudentProgress is the head row of a student's learning path: the
// current node, the active channel, and the running engagement signals.
// Per-node state hangs off the nodes edge.
type StudentProgress struct {
	ent.Schema
}

func (StudentProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("current_node").
			Comment("Node the student is working on"),
		field.String("channel").
			Comment("Active channel: A, B, or C"),
		field.Float("frustration_level").
			Default(0).
			Comment("Running frustration signal in 0..1"),
		field.Float("total_study_hours").
			Default(0).
			Comment("Denormalized sum of per-node study hours"),
		field.Time("last_activity_at").
			Default(time.Now).
			Comment("When the student last studied or was graded"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (StudentProgress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("nodes", NodeProgress.Type),
	}
}

func (StudentProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
	}
}
