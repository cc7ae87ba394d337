// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/akoirala/pathwise/ent/assessmentrecord"
	"github.com/akoirala/pathwise/ent/llmrequestevent"
	"github.com/akoirala/pathwise/ent/nodeprogress"
	"github.com/akoirala/pathwise/ent/schema"
	"github.com/akoirala/pathwise/ent/studentprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentrecordFields := schema.AssessmentRecord{}.Fields()
	_ = assessmentrecordFields
	// assessmentrecordDescAssessmentID is the schema descriptor for assessment_id field.
	assessmentrecordDescAssessmentID := assessmentrecordFields[0].Descriptor()
	// assessmentrecord.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessmentrecord.AssessmentIDValidator = assessmentrecordDescAssessmentID.Validators[0].(func(string) error)
	// assessmentrecordDescStudentID is the schema descriptor for student_id field.
	assessmentrecordDescStudentID := assessmentrecordFields[1].Descriptor()
	// assessmentrecord.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	assessmentrecord.StudentIDValidator = assessmentrecordDescStudentID.Validators[0].(func(string) error)
	// assessmentrecordDescNodeID is the schema descriptor for node_id field.
	assessmentrecordDescNodeID := assessmentrecordFields[2].Descriptor()
	// assessmentrecord.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	assessmentrecord.NodeIDValidator = assessmentrecordDescNodeID.Validators[0].(func(string) error)
	// assessmentrecordDescFeedback is the schema descriptor for feedback field.
	assessmentrecordDescFeedback := assessmentrecordFields[11].Descriptor()
	// assessmentrecord.DefaultFeedback holds the default value on creation for the feedback field.
	assessmentrecord.DefaultFeedback = assessmentrecordDescFeedback.Default.(string)
	// assessmentrecordDescCreatedAt is the schema descriptor for created_at field.
	assessmentrecordDescCreatedAt := assessmentrecordFields[12].Descriptor()
	// assessmentrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	assessmentrecord.DefaultCreatedAt = assessmentrecordDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	nodeprogressFields := schema.NodeProgress{}.Fields()
	_ = nodeprogressFields
	// nodeprogressDescNodeID is the schema descriptor for node_id field.
	nodeprogressDescNodeID := nodeprogressFields[0].Descriptor()
	// nodeprogress.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	nodeprogress.NodeIDValidator = nodeprogressDescNodeID.Validators[0].(func(string) error)
	// nodeprogressDescStudyHours is the schema descriptor for study_hours field.
	nodeprogressDescStudyHours := nodeprogressFields[3].Descriptor()
	// nodeprogress.DefaultStudyHours holds the default value on creation for the study_hours field.
	nodeprogress.DefaultStudyHours = nodeprogressDescStudyHours.Default.(float64)
	// nodeprogressDescMasteryScore is the schema descriptor for mastery_score field.
	nodeprogressDescMasteryScore := nodeprogressFields[4].Descriptor()
	// nodeprogress.DefaultMasteryScore holds the default value on creation for the mastery_score field.
	nodeprogress.DefaultMasteryScore = nodeprogressDescMasteryScore.Default.(float64)
	// nodeprogressDescRetries is the schema descriptor for retries field.
	nodeprogressDescRetries := nodeprogressFields[5].Descriptor()
	// nodeprogress.DefaultRetries holds the default value on creation for the retries field.
	nodeprogress.DefaultRetries = nodeprogressDescRetries.Default.(int)
	studentprogressFields := schema.StudentProgress{}.Fields()
	_ = studentprogressFields
	// studentprogressDescStudentID is the schema descriptor for student_id field.
	studentprogressDescStudentID := studentprogressFields[0].Descriptor()
	// studentprogress.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	studentprogress.StudentIDValidator = studentprogressDescStudentID.Validators[0].(func(string) error)
	// studentprogressDescFrustrationLevel is the schema descriptor for frustration_level field.
	studentprogressDescFrustrationLevel := studentprogressFields[3].Descriptor()
	// studentprogress.DefaultFrustrationLevel holds the default value on creation for the frustration_level field.
	studentprogress.DefaultFrustrationLevel = studentprogressDescFrustrationLevel.Default.(float64)
	// studentprogressDescTotalStudyHours is the schema descriptor for total_study_hours field.
	studentprogressDescTotalStudyHours := studentprogressFields[4].Descriptor()
	// studentprogress.DefaultTotalStudyHours holds the default value on creation for the total_study_hours field.
	studentprogress.DefaultTotalStudyHours = studentprogressDescTotalStudyHours.Default.(float64)
	// studentprogressDescLastActivityAt is the schema descriptor for last_activity_at field.
	studentprogressDescLastActivityAt := studentprogressFields[5].Descriptor()
	// studentprogress.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	studentprogress.DefaultLastActivityAt = studentprogressDescLastActivityAt.Default.(func() time.Time)
	// studentprogressDescCreatedAt is the schema descriptor for created_at field.
	studentprogressDescCreatedAt := studentprogressFields[6].Descriptor()
	// studentprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	studentprogress.DefaultCreatedAt = studentprogressDescCreatedAt.Default.(func() time.Time)
	// studentprogressDescUpdatedAt is the schema descriptor for updated_at field.
	studentprogressDescUpdatedAt := studentprogressFields[7].Descriptor()
	// studentprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studentprogress.DefaultUpdatedAt = studentprogressDescUpdatedAt.Default.(func() time.Time)
	// studentprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studentprogress.UpdateDefaultUpdatedAt = studentprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
}
