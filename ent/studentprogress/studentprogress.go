// Code generated by ent, DO NOT EDIT.

package studentprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the studentprogress type in the database.
	Label = "student_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldCurrentNode holds the string denoting the current_node field in the database.
	FieldCurrentNode = "current_node"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldFrustrationLevel holds the string denoting the frustration_level field in the database.
	FieldFrustrationLevel = "frustration_level"
	// FieldTotalStudyHours holds the string denoting the total_study_hours field in the database.
	FieldTotalStudyHours = "total_study_hours"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeNodes holds the string denoting the nodes edge name in mutations.
	EdgeNodes = "nodes"
	// Table holds the table name of the studentprogress in the database.
	Table = "student_progresses"
	// NodesTable is the table that holds the nodes relation/edge.
	NodesTable = "node_progresses"
	// NodesInverseTable is the table name for the NodeProgress entity.
	// It exists in this package in order to avoid circular dependency with the "nodeprogress" package.
	NodesInverseTable = "node_progresses"
	// NodesColumn is the table column denoting the nodes relation/edge.
	NodesColumn = "student_progress_nodes"
)

// Columns holds all SQL columns for studentprogress fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldCurrentNode,
	FieldChannel,
	FieldFrustrationLevel,
	FieldTotalStudyHours,
	FieldLastActivityAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// DefaultFrustrationLevel holds the default value on creation for the "frustration_level" field.
	DefaultFrustrationLevel float64
	// DefaultTotalStudyHours holds the default value on creation for the "total_study_hours" field.
	DefaultTotalStudyHours float64
	// DefaultLastActivityAt holds the default value on creation for the "last_activity_at" field.
	DefaultLastActivityAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the StudentProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByCurrentNode orders the results by the current_node field.
func ByCurrentNode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentNode, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByFrustrationLevel orders the results by the frustration_level field.
func ByFrustrationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrustrationLevel, opts...).ToFunc()
}

// ByTotalStudyHours orders the results by the total_study_hours field.
func ByTotalStudyHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalStudyHours, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByNodesCount orders the results by nodes count.
func ByNodesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNodesStep(), opts...)
	}
}

// ByNodes orders the results by nodes terms.
func ByNodes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNodesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newNodesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NodesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NodesTable, NodesColumn),
	)
}
