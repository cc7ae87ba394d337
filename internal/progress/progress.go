// Package progress owns the mutable state of a student's path: which
// node is current, what each node's status is, and the running
// engagement signals. All mutations for one student are serialized, so
// concurrent submissions cannot interleave their read-modify-write
// cycles.
package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akoirala/pathwise/internal/catalog"
	"github.com/akoirala/pathwise/internal/store"
)

// NodeStatus is the lifecycle state of one node for one student.
type NodeStatus string

const (
	StatusLocked     NodeStatus = "locked"
	StatusUnlocked   NodeStatus = "unlocked"
	StatusInProgress NodeStatus = "in_progress"
	StatusCompleted  NodeStatus = "completed"
	StatusFailed     NodeStatus = "failed"
)

// ErrAlreadyInitialized is returned when Initialize hits a student who
// already has a path. The existing state is left untouched.
var ErrAlreadyInitialized = errors.New("progress: path already initialized")

// ErrNotInitialized is returned when an operation targets a student
// with no path.
var ErrNotInitialized = errors.New("progress: path not initialized")

// Frustration adjustments applied per assessment outcome. The signal
// climbs faster than it decays.
const (
	frustrationOnFail = 0.10
	frustrationOnPass = -0.05
)

// Service coordinates all path-state mutations.
type Service struct {
	repo store.ProgressRepo
	cat  *catalog.Catalog

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a Service over the given repo and catalog.
func NewService(repo store.ProgressRepo, cat *catalog.Catalog) *Service {
	return &Service{
		repo:  repo,
		cat:   cat,
		locks: make(map[string]*sync.Mutex),
	}
}

// studentLock returns the mutex serializing one student's mutations.
func (s *Service) studentLock(studentID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[studentID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[studentID] = l
	}
	return l
}

// Initialize creates a fresh path for the student on the given channel.
// The first node starts in progress; nodes without prerequisites are
// unlocked; everything else is locked. Fails with ErrAlreadyInitialized
// if a path exists.
func (s *Service) Initialize(ctx context.Context, studentID string, ch catalog.Channel) (*store.StudentProgress, error) {
	if studentID == "" {
		return nil, fmt.Errorf("progress: empty student id")
	}
	if !ch.Valid() {
		return nil, fmt.Errorf("progress: invalid channel %q", ch)
	}

	l := s.studentLock(studentID)
	l.Lock()
	defer l.Unlock()

	first := s.cat.First()
	now := time.Now().UTC()

	p := &store.StudentProgress{
		StudentID:      studentID,
		CurrentNode:    first.ID,
		Channel:        string(ch),
		LastActivityAt: now,
		Nodes:          make(map[string]*store.NodeProgress, s.cat.Len()),
	}
	for _, node := range s.cat.Nodes() {
		np := &store.NodeProgress{
			NodeID:  node.ID,
			Status:  string(StatusLocked),
			Channel: string(ch),
		}
		if s.cat.PrerequisitesMet(node.ID, nil) {
			np.Status = string(StatusUnlocked)
		}
		if node.ID == first.ID {
			np.Status = string(StatusInProgress)
			started := now
			np.StartedAt = &started
		}
		p.Nodes[node.ID] = np
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrAlreadyInitialized
		}
		return nil, fmt.Errorf("initialize path: %w", err)
	}
	return s.get(ctx, studentID)
}

// Get loads the student's path. Total study hours are recomputed from
// the node rows on every read; the stored total is a denormalization,
// the node rows are the source of truth.
func (s *Service) Get(ctx context.Context, studentID string) (*store.StudentProgress, error) {
	return s.get(ctx, studentID)
}

func (s *Service) get(ctx context.Context, studentID string) (*store.StudentProgress, error) {
	p, err := s.repo.Get(ctx, studentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, err
	}
	p.TotalStudyHours = StudyHoursFromNodes(p)
	return p, nil
}

// StudyHoursFromNodes recomputes the path total from the per-node rows.
func StudyHoursFromNodes(p *store.StudentProgress) float64 {
	total := 0.0
	for _, n := range p.Nodes {
		total += n.StudyHours
	}
	return total
}

// AddStudyTime records hours spent on a node. Negative hours are
// rejected. A locked node cannot accrue time. Working on an unlocked
// node starts it; working on a failed node re-opens it.
func (s *Service) AddStudyTime(ctx context.Context, studentID, nodeID string, hours float64) (*store.StudentProgress, error) {
	if hours < 0 {
		return nil, fmt.Errorf("progress: negative study hours")
	}
	if !s.cat.Has(nodeID) {
		return nil, fmt.Errorf("progress: unknown node %q", nodeID)
	}

	l := s.studentLock(studentID)
	l.Lock()
	defer l.Unlock()

	p, err := s.get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	node := p.Nodes[nodeID]
	if node == nil {
		return nil, fmt.Errorf("progress: node %q missing from path", nodeID)
	}
	if node.Status == string(StatusLocked) {
		return nil, fmt.Errorf("progress: node %q is locked", nodeID)
	}

	now := time.Now().UTC()
	node.StudyHours += hours
	if node.Status == string(StatusUnlocked) || node.Status == string(StatusFailed) {
		node.Status = string(StatusInProgress)
		if node.StartedAt == nil {
			started := now
			node.StartedAt = &started
		}
	}
	p.LastActivityAt = now
	p.TotalStudyHours = StudyHoursFromNodes(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("add study time: %w", err)
	}
	return s.get(ctx, studentID)
}

// Outcome is the result of one graded checkpoint attempt, as the path
// service reports it back into the state.
type Outcome struct {
	Mastery float64 // 0..1
	Passed  bool
	// Channel the student should continue on, after the decision rule.
	NextChannel catalog.Channel
}

// ApplyOutcome folds an assessment outcome into the path state: mastery
// and retry bookkeeping on the node, the frustration update, the channel
// move, and on a pass the completion-unlock-advance step. A completed
// node keeps the channel it was graded on; only the head row moves to
// the decided channel. A failing verdict marks the node failed, and a
// channel downgrade re-opens it for the retry.
func (s *Service) ApplyOutcome(ctx context.Context, studentID, nodeID string, out Outcome) (*store.StudentProgress, error) {
	if !s.cat.Has(nodeID) {
		return nil, fmt.Errorf("progress: unknown node %q", nodeID)
	}
	if !out.NextChannel.Valid() {
		return nil, fmt.Errorf("progress: invalid channel %q", out.NextChannel)
	}

	l := s.studentLock(studentID)
	l.Lock()
	defer l.Unlock()

	p, err := s.get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	node := p.Nodes[nodeID]
	if node == nil {
		return nil, fmt.Errorf("progress: node %q missing from path", nodeID)
	}
	if node.Status == string(StatusLocked) {
		return nil, fmt.Errorf("progress: node %q is locked", nodeID)
	}

	node.MasteryScore = clamp01(out.Mastery)
	if node.StartedAt == nil {
		started := time.Now().UTC()
		node.StartedAt = &started
	}

	// The attempt was graded on the student's active channel.
	node.Channel = p.Channel

	if out.Passed {
		p.FrustrationLevel = clamp01(p.FrustrationLevel + frustrationOnPass)
		s.complete(p, node)
	} else {
		used := catalog.Channel(node.Channel)
		node.Retries++
		node.Status = string(StatusFailed)
		if out.NextChannel != used && out.NextChannel == used.Below() {
			// The downgrade cycles the node back for another attempt.
			node.Status = string(StatusUnlocked)
		}
		node.Channel = string(out.NextChannel)
		p.FrustrationLevel = clamp01(p.FrustrationLevel + frustrationOnFail)
	}

	p.Channel = string(out.NextChannel)
	p.LastActivityAt = time.Now().UTC()
	p.TotalStudyHours = StudyHoursFromNodes(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("apply outcome: %w", err)
	}
	return s.get(ctx, studentID)
}

// complete marks the node done, credits the channel's estimated hours,
// unlocks every node whose prerequisites are now satisfied, and advances
// the current pointer to the next unfinished node in sequence.
func (s *Service) complete(p *store.StudentProgress, node *store.NodeProgress) {
	now := time.Now().UTC()
	node.Status = string(StatusCompleted)
	node.CompletedAt = &now

	// Hours are credited on the channel the node was graded on, so the
	// total stays recomputable from the completion history.
	if cn, err := s.cat.Node(node.NodeID); err == nil {
		node.StudyHours += float64(cn.Hours(catalog.Channel(node.Channel)))
	}

	done := make(map[string]bool, len(p.Nodes))
	for id, n := range p.Nodes {
		done[id] = n.Status == string(StatusCompleted)
	}
	for id, n := range p.Nodes {
		if n.Status == string(StatusLocked) && s.cat.PrerequisitesMet(id, done) {
			n.Status = string(StatusUnlocked)
		}
	}

	if p.CurrentNode == node.NodeID {
		for next, ok := s.cat.NextNode(p.CurrentNode); ok; next, ok = s.cat.NextNode(next) {
			n := p.Nodes[next]
			if n == nil || n.Status == string(StatusCompleted) {
				continue
			}
			p.CurrentNode = next
			if n.Status == string(StatusUnlocked) {
				n.Status = string(StatusInProgress)
				started := now
				n.StartedAt = &started
			}
			return
		}
	}
}

// Reset deletes the student's path. A following Initialize starts from
// a clean slate; resetting a missing path is a no-op.
func (s *Service) Reset(ctx context.Context, studentID string) error {
	l := s.studentLock(studentID)
	l.Lock()
	defer l.Unlock()

	if err := s.repo.Delete(ctx, studentID); err != nil {
		return fmt.Errorf("reset path: %w", err)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
