package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NodeProgress is one student's state on one path node.
type NodeProgress struct {
	ent.Schema
}

func (NodeProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("node_id").
			NotEmpty(),
		field.String("status").
			Comment("locked, unlocked, in_progress, completed, or failed"),
		field.String("channel").
			Comment("Channel the node is or was worked on: A, B, or C"),
		field.Float("study_hours").
			Default(0),
		field.Float("mastery_score").
			Default(0).
			Comment("Latest mastery in 0..1"),
		field.Int("retries").
			Default(0).
			Comment("Failed checkpoint attempts on this node"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (NodeProgress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("student", StudentProgress.Type).
			Ref("nodes").
			Unique().
			Required(),
	}
}

func (NodeProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("node_id").
			Edges("student").
			Unique(),
	}
}
