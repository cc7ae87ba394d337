package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup targets a record that does not
// exist. Callers match it with errors.Is.
var ErrNotFound = errors.New("store: record not found")

// ErrAlreadyExists is returned when a create collides with an existing
// record.
var ErrAlreadyExists = errors.New("store: record already exists")

// StudentProgress is the persisted head state of one student's path.
// LastActivityAt tracks when the student last studied or was graded;
// UpdatedAt moves on any write, including administrative ones.
type StudentProgress struct {
	StudentID        string
	CurrentNode      string
	Channel          string
	FrustrationLevel float64
	TotalStudyHours  float64
	LastActivityAt   time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Nodes            map[string]*NodeProgress
}

// NodeProgress is the persisted per-node state of one student.
type NodeProgress struct {
	NodeID       string
	Status       string
	Channel      string
	StudyHours   float64
	MasteryScore float64
	Retries      int
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// ProgressRepo persists student path state. The head row and the
// per-node rows are written together; readers always see a consistent
// pair.
type ProgressRepo interface {
	// Create stores a fresh progress record. Fails if the student
	// already has one.
	Create(ctx context.Context, p *StudentProgress) error

	// Get loads a student's progress with all node rows.
	// Returns ErrNotFound if the student has no record.
	Get(ctx context.Context, studentID string) (*StudentProgress, error)

	// Update replaces the stored state with p. The node rows are
	// rewritten as a whole. Returns ErrNotFound for unknown students.
	Update(ctx context.Context, p *StudentProgress) error

	// Delete removes the student's progress and node rows.
	// Deleting a missing record is not an error.
	Delete(ctx context.Context, studentID string) error
}

// AssessmentRecord is one persisted grading outcome.
type AssessmentRecord struct {
	AssessmentID   string
	StudentID      string
	NodeID         string
	Channel        string
	OverallScore   float64
	CategoryScores map[string]float64
	Level          string
	Passed         bool
	Diagnosis      []DiagnosisEntry
	Resources      []string
	Evidence       []string
	Feedback       string
	CreatedAt      time.Time
}

// DiagnosisEntry mirrors one stored diagnosis finding.
type DiagnosisEntry struct {
	Dimension string
	Issue     string
	Fix       string
	Priority  int
}

// AssessmentRepo persists grading outcomes. Records are append-only.
type AssessmentRepo interface {
	// Save stores a new assessment record.
	Save(ctx context.Context, rec *AssessmentRecord) error

	// ListByStudent returns the student's records, newest first.
	// limit <= 0 means unlimited.
	ListByStudent(ctx context.Context, studentID string, limit int) ([]*AssessmentRecord, error)

	// LatestForNode returns the newest record for one node, or
	// ErrNotFound if the node was never assessed.
	LatestForNode(ctx context.Context, studentID, nodeID string) (*AssessmentRecord, error)

	// CountFailures counts failed attempts for one node.
	CountFailures(ctx context.Context, studentID, nodeID string) (int, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request event with its position in the
// global event order.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns recorded LLM events, newest first.
	// limit <= 0 means unlimited.
	ListLLMRequests(ctx context.Context, limit int) ([]*LLMRequestEvent, error)
}
