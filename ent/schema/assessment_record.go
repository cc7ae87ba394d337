package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosisEntry is one stored diagnosis finding. Kept as JSON inside
// the assessment row; findings are never queried individually.
type DiagnosisEntry struct {
	Dimension string `json:"dimension"`
	Issue     string `json:"issue"`
	Fix       string `json:"fix"`
	Priority  int    `json:"priority"`
}

// AssessmentRecord is the immutable outcome of one graded submission.
type AssessmentRecord struct {
	ent.Schema
}

func (AssessmentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("student_id").
			NotEmpty().
			Immutable(),
		field.String("node_id").
			NotEmpty().
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("Channel the submission was graded under"),
		field.Float("overall_score").
			Immutable(),
		field.JSON("category_scores", map[string]float64{}).
			Immutable(),
		field.String("level").
			Immutable().
			Comment("excellent, pass, or need_improvement"),
		field.Bool("passed").
			Immutable(),
		field.JSON("diagnosis", []DiagnosisEntry{}).
			Optional().
			Immutable(),
		field.JSON("resources", []string{}).
			Optional().
			Immutable(),
		field.JSON("evidence", []string{}).
			Optional().
			Immutable(),
		field.Text("feedback").
			Default("").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AssessmentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "node_id"),
		index.Fields("created_at"),
	}
}
