// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/akoirala/pathwise/ent/nodeprogress"
	"github.com/akoirala/pathwise/ent/studentprogress"
)

// NodeProgress is the model entity for the NodeProgress schema.
type NodeProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// NodeID holds the value of the "node_id" field.
	NodeID string `json:"node_id,omitempty"`
	// locked, unlocked, in_progress, completed, or failed
	Status string `json:"status,omitempty"`
	// Channel the node is or was worked on: A, B, or C
	Channel string `json:"channel,omitempty"`
	// StudyHours holds the value of the "study_hours" field.
	StudyHours float64 `json:"study_hours,omitempty"`
	// Latest mastery in 0..1
	MasteryScore float64 `json:"mastery_score,omitempty"`
	// Failed checkpoint attempts on this node
	Retries int `json:"retries,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NodeProgressQuery when eager-loading is set.
	Edges                  NodeProgressEdges `json:"edges"`
	student_progress_nodes *int
	selectValues           sql.SelectValues
}

// NodeProgressEdges holds the relations/edges for other nodes in the graph.
type NodeProgressEdges struct {
	// Student holds the value of the student edge.
	Student *StudentProgress `json:"student,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StudentOrErr returns the Student value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NodeProgressEdges) StudentOrErr() (*StudentProgress, error) {
	if e.Student != nil {
		return e.Student, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: studentprogress.Label}
	}
	return nil, &NotLoadedError{edge: "student"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NodeProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case nodeprogress.FieldStudyHours, nodeprogress.FieldMasteryScore:
			values[i] = new(sql.NullFloat64)
		case nodeprogress.FieldID, nodeprogress.FieldRetries:
			values[i] = new(sql.NullInt64)
		case nodeprogress.FieldNodeID, nodeprogress.FieldStatus, nodeprogress.FieldChannel:
			values[i] = new(sql.NullString)
		case nodeprogress.FieldStartedAt, nodeprogress.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case nodeprogress.ForeignKeys[0]: // student_progress_nodes
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NodeProgress fields.
func (_m *NodeProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case nodeprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case nodeprogress.FieldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value.Valid {
				_m.NodeID = value.String
			}
		case nodeprogress.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case nodeprogress.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = value.String
			}
		case nodeprogress.FieldStudyHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field study_hours", values[i])
			} else if value.Valid {
				_m.StudyHours = value.Float64
			}
		case nodeprogress.FieldMasteryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_score", values[i])
			} else if value.Valid {
				_m.MasteryScore = value.Float64
			}
		case nodeprogress.FieldRetries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retries", values[i])
			} else if value.Valid {
				_m.Retries = int(value.Int64)
			}
		case nodeprogress.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case nodeprogress.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case nodeprogress.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field student_progress_nodes", value)
			} else if value.Valid {
				_m.student_progress_nodes = new(int)
				*_m.student_progress_nodes = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NodeProgress.
// This includes values selected through modifiers, order, etc.
func (_m *NodeProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStudent queries the "student" edge of the NodeProgress entity.
func (_m *NodeProgress) QueryStudent() *StudentProgressQuery {
	return NewNodeProgressClient(_m.config).QueryStudent(_m)
}

// Update returns a builder for updating this NodeProgress.
// Note that you need to call NodeProgress.Unwrap() before calling this method if this NodeProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NodeProgress) Update() *NodeProgressUpdateOne {
	return NewNodeProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NodeProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NodeProgress) Unwrap() *NodeProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NodeProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NodeProgress) String() string {
	var builder strings.Builder
	builder.WriteString("NodeProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("node_id=")
	builder.WriteString(_m.NodeID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(_m.Channel)
	builder.WriteString(", ")
	builder.WriteString("study_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudyHours))
	builder.WriteString(", ")
	builder.WriteString("mastery_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryScore))
	builder.WriteString(", ")
	builder.WriteString("retries=")
	builder.WriteString(fmt.Sprintf("%v", _m.Retries))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// NodeProgresses is a parsable slice of NodeProgress.
type NodeProgresses []*NodeProgress
