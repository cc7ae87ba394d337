// Code generated by ent, DO NOT EDIT.

package studentprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/akoirala/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldStudentID, v))
}

// CurrentNode applies equality check predicate on the "current_node" field. It's identical to CurrentNodeEQ.
func CurrentNode(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldCurrentNode, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldChannel, v))
}

// FrustrationLevel applies equality check predicate on the "frustration_level" field. It's identical to FrustrationLevelEQ.
func FrustrationLevel(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldFrustrationLevel, v))
}

// TotalStudyHours applies equality check predicate on the "total_study_hours" field. It's identical to TotalStudyHoursEQ.
func TotalStudyHours(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldTotalStudyHours, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldLastActivityAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContainsFold(FieldStudentID, v))
}

// CurrentNodeEQ applies the EQ predicate on the "current_node" field.
func CurrentNodeEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldCurrentNode, v))
}

// CurrentNodeNEQ applies the NEQ predicate on the "current_node" field.
func CurrentNodeNEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldCurrentNode, v))
}

// CurrentNodeIn applies the In predicate on the "current_node" field.
func CurrentNodeIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldCurrentNode, vs...))
}

// CurrentNodeNotIn applies the NotIn predicate on the "current_node" field.
func CurrentNodeNotIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldCurrentNode, vs...))
}

// CurrentNodeGT applies the GT predicate on the "current_node" field.
func CurrentNodeGT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldCurrentNode, v))
}

// CurrentNodeGTE applies the GTE predicate on the "current_node" field.
func CurrentNodeGTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldCurrentNode, v))
}

// CurrentNodeLT applies the LT predicate on the "current_node" field.
func CurrentNodeLT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldCurrentNode, v))
}

// CurrentNodeLTE applies the LTE predicate on the "current_node" field.
func CurrentNodeLTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldCurrentNode, v))
}

// CurrentNodeContains applies the Contains predicate on the "current_node" field.
func CurrentNodeContains(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContains(FieldCurrentNode, v))
}

// CurrentNodeHasPrefix applies the HasPrefix predicate on the "current_node" field.
func CurrentNodeHasPrefix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasPrefix(FieldCurrentNode, v))
}

// CurrentNodeHasSuffix applies the HasSuffix predicate on the "current_node" field.
func CurrentNodeHasSuffix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasSuffix(FieldCurrentNode, v))
}

// CurrentNodeEqualFold applies the EqualFold predicate on the "current_node" field.
func CurrentNodeEqualFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEqualFold(FieldCurrentNode, v))
}

// CurrentNodeContainsFold applies the ContainsFold predicate on the "current_node" field.
func CurrentNodeContainsFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContainsFold(FieldCurrentNode, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContainsFold(FieldChannel, v))
}

// FrustrationLevelEQ applies the EQ predicate on the "frustration_level" field.
func FrustrationLevelEQ(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldFrustrationLevel, v))
}

// FrustrationLevelNEQ applies the NEQ predicate on the "frustration_level" field.
func FrustrationLevelNEQ(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldFrustrationLevel, v))
}

// FrustrationLevelIn applies the In predicate on the "frustration_level" field.
func FrustrationLevelIn(vs ...float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldFrustrationLevel, vs...))
}

// FrustrationLevelNotIn applies the NotIn predicate on the "frustration_level" field.
func FrustrationLevelNotIn(vs ...float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldFrustrationLevel, vs...))
}

// FrustrationLevelGT applies the GT predicate on the "frustration_level" field.
func FrustrationLevelGT(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldFrustrationLevel, v))
}

// FrustrationLevelGTE applies the GTE predicate on the "frustration_level" field.
func FrustrationLevelGTE(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldFrustrationLevel, v))
}

// FrustrationLevelLT applies the LT predicate on the "frustration_level" field.
func FrustrationLevelLT(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldFrustrationLevel, v))
}

// FrustrationLevelLTE applies the LTE predicate on the "frustration_level" field.
func FrustrationLevelLTE(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldFrustrationLevel, v))
}

// TotalStudyHoursEQ applies the EQ predicate on the "total_study_hours" field.
func TotalStudyHoursEQ(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldTotalStudyHours, v))
}

// TotalStudyHoursNEQ applies the NEQ predicate on the "total_study_hours" field.
func TotalStudyHoursNEQ(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldTotalStudyHours, v))
}

// TotalStudyHoursIn applies the In predicate on the "total_study_hours" field.
func TotalStudyHoursIn(vs ...float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldTotalStudyHours, vs...))
}

// TotalStudyHoursNotIn applies the NotIn predicate on the "total_study_hours" field.
func TotalStudyHoursNotIn(vs ...float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldTotalStudyHours, vs...))
}

// TotalStudyHoursGT applies the GT predicate on the "total_study_hours" field.
func TotalStudyHoursGT(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldTotalStudyHours, v))
}

// TotalStudyHoursGTE applies the GTE predicate on the "total_study_hours" field.
func TotalStudyHoursGTE(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldTotalStudyHours, v))
}

// TotalStudyHoursLT applies the LT predicate on the "total_study_hours" field.
func TotalStudyHoursLT(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldTotalStudyHours, v))
}

// TotalStudyHoursLTE applies the LTE predicate on the "total_study_hours" field.
func TotalStudyHoursLTE(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldTotalStudyHours, v))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldLastActivityAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasNodes applies the HasEdge predicate on the "nodes" edge.
func HasNodes() predicate.StudentProgress {
	return predicate.StudentProgress(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NodesTable, NodesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodesWith applies the HasEdge predicate on the "nodes" edge with a given conditions (other predicates).
func HasNodesWith(preds ...predicate.NodeProgress) predicate.StudentProgress {
	return predicate.StudentProgress(func(s *sql.Selector) {
		step := newNodesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudentProgress) predicate.StudentProgress {
	return predicate.StudentProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudentProgress) predicate.StudentProgress {
	return predicate.StudentProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudentProgress) predicate.StudentProgress {
	return predicate.StudentProgress(sql.NotPredicates(p))
}
