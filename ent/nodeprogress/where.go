// Code generated by ent, DO NOT EDIT.

package nodeprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/akoirala/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldID, id))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldNodeID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldStatus, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldChannel, v))
}

// StudyHours applies equality check predicate on the "study_hours" field. It's identical to StudyHoursEQ.
func StudyHours(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldStudyHours, v))
}

// MasteryScore applies equality check predicate on the "mastery_score" field. It's identical to MasteryScoreEQ.
func MasteryScore(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldMasteryScore, v))
}

// Retries applies equality check predicate on the "retries" field. It's identical to RetriesEQ.
func Retries(v int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldRetries, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContainsFold(FieldNodeID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContainsFold(FieldStatus, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContainsFold(FieldChannel, v))
}

// StudyHoursEQ applies the EQ predicate on the "study_hours" field.
func StudyHoursEQ(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldStudyHours, v))
}

// StudyHoursNEQ applies the NEQ predicate on the "study_hours" field.
func StudyHoursNEQ(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldStudyHours, v))
}

// StudyHoursIn applies the In predicate on the "study_hours" field.
func StudyHoursIn(vs ...float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldStudyHours, vs...))
}

// StudyHoursNotIn applies the NotIn predicate on the "study_hours" field.
func StudyHoursNotIn(vs ...float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldStudyHours, vs...))
}

// StudyHoursGT applies the GT predicate on the "study_hours" field.
func StudyHoursGT(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldStudyHours, v))
}

// StudyHoursGTE applies the GTE predicate on the "study_hours" field.
func StudyHoursGTE(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldStudyHours, v))
}

// StudyHoursLT applies the LT predicate on the "study_hours" field.
func StudyHoursLT(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldStudyHours, v))
}

// StudyHoursLTE applies the LTE predicate on the "study_hours" field.
func StudyHoursLTE(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldStudyHours, v))
}

// MasteryScoreEQ applies the EQ predicate on the "mastery_score" field.
func MasteryScoreEQ(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldMasteryScore, v))
}

// MasteryScoreNEQ applies the NEQ predicate on the "mastery_score" field.
func MasteryScoreNEQ(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldMasteryScore, v))
}

// MasteryScoreIn applies the In predicate on the "mastery_score" field.
func MasteryScoreIn(vs ...float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldMasteryScore, vs...))
}

// MasteryScoreNotIn applies the NotIn predicate on the "mastery_score" field.
func MasteryScoreNotIn(vs ...float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldMasteryScore, vs...))
}

// MasteryScoreGT applies the GT predicate on the "mastery_score" field.
func MasteryScoreGT(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldMasteryScore, v))
}

// MasteryScoreGTE applies the GTE predicate on the "mastery_score" field.
func MasteryScoreGTE(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldMasteryScore, v))
}

// MasteryScoreLT applies the LT predicate on the "mastery_score" field.
func MasteryScoreLT(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldMasteryScore, v))
}

// MasteryScoreLTE applies the LTE predicate on the "mastery_score" field.
func MasteryScoreLTE(v float64) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldMasteryScore, v))
}

// RetriesEQ applies the EQ predicate on the "retries" field.
func RetriesEQ(v int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldRetries, v))
}

// RetriesNEQ applies the NEQ predicate on the "retries" field.
func RetriesNEQ(v int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldRetries, v))
}

// RetriesIn applies the In predicate on the "retries" field.
func RetriesIn(vs ...int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldRetries, vs...))
}

// RetriesNotIn applies the NotIn predicate on the "retries" field.
func RetriesNotIn(vs ...int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldRetries, vs...))
}

// RetriesGT applies the GT predicate on the "retries" field.
func RetriesGT(v int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldRetries, v))
}

// RetriesGTE applies the GTE predicate on the "retries" field.
func RetriesGTE(v int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldRetries, v))
}

// RetriesLT applies the LT predicate on the "retries" field.
func RetriesLT(v int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldRetries, v))
}

// RetriesLTE applies the LTE predicate on the "retries" field.
func RetriesLTE(v int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldRetries, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotNull(FieldCompletedAt))
}

// HasStudent applies the HasEdge predicate on the "student" edge.
func HasStudent() predicate.NodeProgress {
	return predicate.NodeProgress(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudentTable, StudentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudentWith applies the HasEdge predicate on the "student" edge with a given conditions (other predicates).
func HasStudentWith(preds ...predicate.StudentProgress) predicate.NodeProgress {
	return predicate.NodeProgress(func(s *sql.Selector) {
		step := newStudentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NodeProgress) predicate.NodeProgress {
	return predicate.NodeProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NodeProgress) predicate.NodeProgress {
	return predicate.NodeProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NodeProgress) predicate.NodeProgress {
	return predicate.NodeProgress(sql.NotPredicates(p))
}
