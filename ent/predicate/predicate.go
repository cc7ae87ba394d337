// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentRecord is the predicate function for assessmentrecord builders.
type AssessmentRecord func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// NodeProgress is the predicate function for nodeprogress builders.
type NodeProgress func(*sql.Selector)

// StudentProgress is the predicate function for studentprogress builders.
type StudentProgress func(*sql.Selector)
