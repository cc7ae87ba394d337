package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemProgressRepo is an in-memory ProgressRepo for tests and dry runs.
// It copies records on the way in and out, so callers can't mutate
// stored state through shared pointers.
type MemProgressRepo struct {
	mu      sync.RWMutex
	records map[string]*StudentProgress
}

// NewMemProgressRepo creates an empty in-memory progress repo.
func NewMemProgressRepo() *MemProgressRepo {
	return &MemProgressRepo{records: make(map[string]*StudentProgress)}
}

func (r *MemProgressRepo) Create(_ context.Context, p *StudentProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[p.StudentID]; ok {
		return ErrAlreadyExists
	}
	cp := copyProgress(p)
	now := time.Now().UTC()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.records[p.StudentID] = cp
	return nil
}

func (r *MemProgressRepo) Get(_ context.Context, studentID string) (*StudentProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.records[studentID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyProgress(p), nil
}

func (r *MemProgressRepo) Update(_ context.Context, p *StudentProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.records[p.StudentID]
	if !ok {
		return ErrNotFound
	}
	cp := copyProgress(p)
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now().UTC()
	r.records[p.StudentID] = cp
	return nil
}

func (r *MemProgressRepo) Delete(_ context.Context, studentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, studentID)
	return nil
}

func copyProgress(p *StudentProgress) *StudentProgress {
	cp := *p
	cp.Nodes = make(map[string]*NodeProgress, len(p.Nodes))
	for id, n := range p.Nodes {
		nc := *n
		cp.Nodes[id] = &nc
	}
	return &cp
}

// MemAssessmentRepo is an in-memory AssessmentRepo for tests. Each
// record carries an insertion sequence so newest-first ordering holds
// even when timestamps collide.
type MemAssessmentRepo struct {
	mu      sync.RWMutex
	seq     int64
	records []memAssessment
}

type memAssessment struct {
	seq int64
	rec *AssessmentRecord
}

// NewMemAssessmentRepo creates an empty in-memory assessment repo.
func NewMemAssessmentRepo() *MemAssessmentRepo {
	return &MemAssessmentRepo{}
}

func (r *MemAssessmentRepo) Save(_ context.Context, rec *AssessmentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	cp := *rec
	r.records = append(r.records, memAssessment{seq: r.seq, rec: &cp})
	return nil
}

func (r *MemAssessmentRepo) ListByStudent(_ context.Context, studentID string, limit int) ([]*AssessmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []memAssessment
	for _, m := range r.records {
		if m.rec.StudentID == studentID {
			matched = append(matched, m)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.rec.CreatedAt.Equal(b.rec.CreatedAt) {
			return a.rec.CreatedAt.After(b.rec.CreatedAt)
		}
		return a.seq > b.seq
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]*AssessmentRecord, 0, len(matched))
	for _, m := range matched {
		cp := *m.rec
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemAssessmentRepo) LatestForNode(_ context.Context, studentID, nodeID string) (*AssessmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *AssessmentRecord
	for _, m := range r.records {
		if m.rec.StudentID != studentID || m.rec.NodeID != nodeID {
			continue
		}
		// Insertion order already breaks timestamp ties.
		if latest == nil || !m.rec.CreatedAt.Before(latest.CreatedAt) {
			latest = m.rec
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (r *MemAssessmentRepo) CountFailures(_ context.Context, studentID, nodeID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, m := range r.records {
		if m.rec.StudentID == studentID && m.rec.NodeID == nodeID && !m.rec.Passed {
			n++
		}
	}
	return n, nil
}

// MemEventRepo is an in-memory EventRepo for tests.
type MemEventRepo struct {
	mu     sync.Mutex
	seq    int64
	events []*LLMRequestEvent
}

// NewMemEventRepo creates an empty in-memory event repo.
func NewMemEventRepo() *MemEventRepo {
	return &MemEventRepo{}
}

func (r *MemEventRepo) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.events = append(r.events, &LLMRequestEvent{
		Sequence:            r.seq,
		Timestamp:           time.Now().UTC(),
		LLMRequestEventData: data,
	})
	return nil
}

func (r *MemEventRepo) ListLLMRequests(_ context.Context, limit int) ([]*LLMRequestEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*LLMRequestEvent, 0, len(r.events))
	for i := len(r.events) - 1; i >= 0; i-- {
		cp := *r.events[i]
		out = append(out, &cp)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
