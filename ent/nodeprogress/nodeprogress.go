// Code generated by ent, DO NOT EDIT.

package nodeprogress

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the nodeprogress type in the database.
	Label = "node_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNodeID holds the string denoting the node_id field in the database.
	FieldNodeID = "node_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldStudyHours holds the string denoting the study_hours field in the database.
	FieldStudyHours = "study_hours"
	// FieldMasteryScore holds the string denoting the mastery_score field in the database.
	FieldMasteryScore = "mastery_score"
	// FieldRetries holds the string denoting the retries field in the database.
	FieldRetries = "retries"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeStudent holds the string denoting the student edge name in mutations.
	EdgeStudent = "student"
	// Table holds the table name of the nodeprogress in the database.
	Table = "node_progresses"
	// StudentTable is the table that holds the student relation/edge.
	StudentTable = "node_progresses"
	// StudentInverseTable is the table name for the StudentProgress entity.
	// It exists in this package in order to avoid circular dependency with the "studentprogress" package.
	StudentInverseTable = "student_progresses"
	// StudentColumn is the table column denoting the student relation/edge.
	StudentColumn = "student_progress_nodes"
)

// Columns holds all SQL columns for nodeprogress fields.
var Columns = []string{
	FieldID,
	FieldNodeID,
	FieldStatus,
	FieldChannel,
	FieldStudyHours,
	FieldMasteryScore,
	FieldRetries,
	FieldStartedAt,
	FieldCompletedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "node_progresses"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"student_progress_nodes",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	NodeIDValidator func(string) error
	// DefaultStudyHours holds the default value on creation for the "study_hours" field.
	DefaultStudyHours float64
	// DefaultMasteryScore holds the default value on creation for the "mastery_score" field.
	DefaultMasteryScore float64
	// DefaultRetries holds the default value on creation for the "retries" field.
	DefaultRetries int
)

// OrderOption defines the ordering options for the NodeProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNodeID orders the results by the node_id field.
func ByNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByStudyHours orders the results by the study_hours field.
func ByStudyHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyHours, opts...).ToFunc()
}

// ByMasteryScore orders the results by the mastery_score field.
func ByMasteryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryScore, opts...).ToFunc()
}

// ByRetries orders the results by the retries field.
func ByRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetries, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByStudentField orders the results by student field.
func ByStudentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStudentStep(), sql.OrderByField(field, opts...))
	}
}
func newStudentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StudentTable, StudentColumn),
	)
}
