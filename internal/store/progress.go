package store

import (
	"context"
	"fmt"

	"github.com/akoirala/pathwise/ent"
	"github.com/akoirala/pathwise/ent/nodeprogress"
	"github.com/akoirala/pathwise/ent/studentprogress"
)

// progressRepo implements ProgressRepo using the ent client. The head
// row and its node rows always change inside one transaction; node rows
// are rewritten wholesale on update, which keeps the write path simple
// and the row count small (one row per path node).
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Create(ctx context.Context, p *StudentProgress) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	create := tx.StudentProgress.Create().
		SetStudentID(p.StudentID).
		SetCurrentNode(p.CurrentNode).
		SetChannel(p.Channel).
		SetFrustrationLevel(p.FrustrationLevel).
		SetTotalStudyHours(p.TotalStudyHours)
	if !p.LastActivityAt.IsZero() {
		create = create.SetLastActivityAt(p.LastActivityAt)
	}
	head, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create progress: %w", err)
	}

	if err := createNodeRows(ctx, tx, head, p.Nodes); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *progressRepo) Get(ctx context.Context, studentID string) (*StudentProgress, error) {
	head, err := r.client.StudentProgress.Query().
		Where(studentprogress.StudentIDEQ(studentID)).
		WithNodes().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}

	p := &StudentProgress{
		StudentID:        head.StudentID,
		CurrentNode:      head.CurrentNode,
		Channel:          head.Channel,
		FrustrationLevel: head.FrustrationLevel,
		TotalStudyHours:  head.TotalStudyHours,
		LastActivityAt:   head.LastActivityAt,
		CreatedAt:        head.CreatedAt,
		UpdatedAt:        head.UpdatedAt,
		Nodes:            make(map[string]*NodeProgress, len(head.Edges.Nodes)),
	}
	for _, n := range head.Edges.Nodes {
		p.Nodes[n.NodeID] = &NodeProgress{
			NodeID:       n.NodeID,
			Status:       n.Status,
			Channel:      n.Channel,
			StudyHours:   n.StudyHours,
			MasteryScore: n.MasteryScore,
			Retries:      n.Retries,
			StartedAt:    n.StartedAt,
			CompletedAt:  n.CompletedAt,
		}
	}
	return p, nil
}

func (r *progressRepo) Update(ctx context.Context, p *StudentProgress) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	head, err := tx.StudentProgress.Query().
		Where(studentprogress.StudentIDEQ(p.StudentID)).
		Only(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("query progress: %w", err)
	}

	update := head.Update().
		SetCurrentNode(p.CurrentNode).
		SetChannel(p.Channel).
		SetFrustrationLevel(p.FrustrationLevel).
		SetTotalStudyHours(p.TotalStudyHours)
	if !p.LastActivityAt.IsZero() {
		update = update.SetLastActivityAt(p.LastActivityAt)
	}
	_, err = update.Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("update progress: %w", err)
	}

	_, err = tx.NodeProgress.Delete().
		Where(nodeprogress.HasStudentWith(studentprogress.IDEQ(head.ID))).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("clear node rows: %w", err)
	}

	if err := createNodeRows(ctx, tx, head, p.Nodes); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *progressRepo) Delete(ctx context.Context, studentID string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	head, err := tx.StudentProgress.Query().
		Where(studentprogress.StudentIDEQ(studentID)).
		Only(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("query progress: %w", err)
	}

	_, err = tx.NodeProgress.Delete().
		Where(nodeprogress.HasStudentWith(studentprogress.IDEQ(head.ID))).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("delete node rows: %w", err)
	}

	if err := tx.StudentProgress.DeleteOne(head).Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func createNodeRows(ctx context.Context, tx *ent.Tx, head *ent.StudentProgress, nodes map[string]*NodeProgress) error {
	for _, n := range nodes {
		builder := tx.NodeProgress.Create().
			SetNodeID(n.NodeID).
			SetStatus(n.Status).
			SetChannel(n.Channel).
			SetStudyHours(n.StudyHours).
			SetMasteryScore(n.MasteryScore).
			SetRetries(n.Retries).
			SetStudent(head)
		if n.StartedAt != nil {
			builder = builder.SetStartedAt(*n.StartedAt)
		}
		if n.CompletedAt != nil {
			builder = builder.SetCompletedAt(*n.CompletedAt)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create node row %s: %w", n.NodeID, err)
		}
	}
	return nil
}
