// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentRecordsColumns holds the columns for the "assessment_records" table.
	AssessmentRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assessment_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "category_scores", Type: field.TypeJSON},
		{Name: "level", Type: field.TypeString},
		{Name: "passed", Type: field.TypeBool},
		{Name: "diagnosis", Type: field.TypeJSON, Nullable: true},
		{Name: "resources", Type: field.TypeJSON, Nullable: true},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AssessmentRecordsTable holds the schema information for the "assessment_records" table.
	AssessmentRecordsTable = &schema.Table{
		Name:       "assessment_records",
		Columns:    AssessmentRecordsColumns,
		PrimaryKey: []*schema.Column{AssessmentRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentrecord_student_id_node_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentRecordsColumns[2], AssessmentRecordsColumns[3]},
			},
			{
				Name:    "assessmentrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentRecordsColumns[13]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// NodeProgressesColumns holds the columns for the "node_progresses" table.
	NodeProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "node_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "study_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "mastery_score", Type: field.TypeFloat64, Default: 0},
		{Name: "retries", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "student_progress_nodes", Type: field.TypeInt},
	}
	// NodeProgressesTable holds the schema information for the "node_progresses" table.
	NodeProgressesTable = &schema.Table{
		Name:       "node_progresses",
		Columns:    NodeProgressesColumns,
		PrimaryKey: []*schema.Column{NodeProgressesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "node_progresses_student_progresses_nodes",
				Columns:    []*schema.Column{NodeProgressesColumns[9]},
				RefColumns: []*schema.Column{StudentProgressesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "nodeprogress_node_id_student_progress_nodes",
				Unique:  true,
				Columns: []*schema.Column{NodeProgressesColumns[1], NodeProgressesColumns[9]},
			},
		},
	}
	// StudentProgressesColumns holds the columns for the "student_progresses" table.
	StudentProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString, Unique: true},
		{Name: "current_node", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "frustration_level", Type: field.TypeFloat64, Default: 0},
		{Name: "total_study_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudentProgressesTable holds the schema information for the "student_progresses" table.
	StudentProgressesTable = &schema.Table{
		Name:       "student_progresses",
		Columns:    StudentProgressesColumns,
		PrimaryKey: []*schema.Column{StudentProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentprogress_student_id",
				Unique:  false,
				Columns: []*schema.Column{StudentProgressesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentRecordsTable,
		LlmRequestEventsTable,
		NodeProgressesTable,
		StudentProgressesTable,
	}
)

func init() {
	NodeProgressesTable.ForeignKeys[0].RefTable = StudentProgressesTable
}
