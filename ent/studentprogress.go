// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/akoirala/pathwise/ent/studentprogress"
)

// StudentProgress is the model entity for the StudentProgress schema.
type StudentProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// Node the student is working on
	CurrentNode string `json:"current_node,omitempty"`
	// Active channel: A, B, or C
	Channel string `json:"channel,omitempty"`
	// Running frustration signal in 0..1
	FrustrationLevel float64 `json:"frustration_level,omitempty"`
	// Denormalized sum of per-node study hours
	TotalStudyHours float64 `json:"total_study_hours,omitempty"`
	// When the student last studied or was graded
	LastActivityAt time.Time `json:"last_activity_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudentProgressQuery when eager-loading is set.
	Edges        StudentProgressEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudentProgressEdges holds the relations/edges for other nodes in the graph.
type StudentProgressEdges struct {
	// Nodes holds the value of the nodes edge.
	Nodes []*NodeProgress `json:"nodes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// NodesOrErr returns the Nodes value or an error if the edge
// was not loaded in eager-loading.
func (e StudentProgressEdges) NodesOrErr() ([]*NodeProgress, error) {
	if e.loadedTypes[0] {
		return e.Nodes, nil
	}
	return nil, &NotLoadedError{edge: "nodes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudentProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studentprogress.FieldFrustrationLevel, studentprogress.FieldTotalStudyHours:
			values[i] = new(sql.NullFloat64)
		case studentprogress.FieldID:
			values[i] = new(sql.NullInt64)
		case studentprogress.FieldStudentID, studentprogress.FieldCurrentNode, studentprogress.FieldChannel:
			values[i] = new(sql.NullString)
		case studentprogress.FieldLastActivityAt, studentprogress.FieldCreatedAt, studentprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudentProgress fields.
func (_m *StudentProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studentprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studentprogress.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case studentprogress.FieldCurrentNode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_node", values[i])
			} else if value.Valid {
				_m.CurrentNode = value.String
			}
		case studentprogress.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = value.String
			}
		case studentprogress.FieldFrustrationLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field frustration_level", values[i])
			} else if value.Valid {
				_m.FrustrationLevel = value.Float64
			}
		case studentprogress.FieldTotalStudyHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_study_hours", values[i])
			} else if value.Valid {
				_m.TotalStudyHours = value.Float64
			}
		case studentprogress.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = value.Time
			}
		case studentprogress.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case studentprogress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudentProgress.
// This includes values selected through modifiers, order, etc.
func (_m *StudentProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNodes queries the "nodes" edge of the StudentProgress entity.
func (_m *StudentProgress) QueryNodes() *NodeProgressQuery {
	return NewStudentProgressClient(_m.config).QueryNodes(_m)
}

// Update returns a builder for updating this StudentProgress.
// Note that you need to call StudentProgress.Unwrap() before calling this method if this StudentProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudentProgress) Update() *StudentProgressUpdateOne {
	return NewStudentProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudentProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudentProgress) Unwrap() *StudentProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudentProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudentProgress) String() string {
	var builder strings.Builder
	builder.WriteString("StudentProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("current_node=")
	builder.WriteString(_m.CurrentNode)
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(_m.Channel)
	builder.WriteString(", ")
	builder.WriteString("frustration_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.FrustrationLevel))
	builder.WriteString(", ")
	builder.WriteString("total_study_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalStudyHours))
	builder.WriteString(", ")
	builder.WriteString("last_activity_at=")
	builder.WriteString(_m.LastActivityAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudentProgresses is a parsable slice of StudentProgress.
type StudentProgresses []*StudentProgress
