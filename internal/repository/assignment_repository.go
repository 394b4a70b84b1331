package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
)

const assignmentColumns = "id, title, class_id, due_date, student_ids, created_by, created_at, updated_at"

// AssignmentRepository persists assignments. It is the planner's only write
// path into the store, and UpdateDueDate is the only field it ever rewrites.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs an assignment repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// ListForClass returns every assignment belonging to a class, due-date ascending.
func (r *AssignmentRepository) ListForClass(ctx context.Context, classID string) ([]models.Assignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assignments WHERE class_id = $1 ORDER BY due_date ASC, title ASC`, assignmentColumns)
	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query, classID); err != nil {
		return nil, fmt.Errorf("list assignments for class: %w", err)
	}
	return assignments, nil
}

// ListForStudent returns assignments across the student's classes, keeping only
// those that target the student. An empty student_ids array targets the whole
// class.
func (r *AssignmentRepository) ListForStudent(ctx context.Context, studentID string, classIDs []string) ([]models.Assignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assignments
WHERE class_id = ANY($1)
  AND (student_ids IS NULL OR cardinality(student_ids) = 0 OR $2 = ANY(student_ids))
ORDER BY due_date ASC, title ASC`, assignmentColumns)
	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query, pq.Array(classIDs), studentID); err != nil {
		return nil, fmt.Errorf("list assignments for student: %w", err)
	}
	return assignments, nil
}

// GetByID fetches a single assignment.
func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assignments WHERE id = $1`, assignmentColumns)
	var assignment models.Assignment
	if err := r.db.GetContext(ctx, &assignment, query, id); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateDueDate replaces the due date of a single assignment. The write touches
// nothing else, so concurrent calls for disjoint ids are safe.
func (r *AssignmentRepository) UpdateDueDate(ctx context.Context, id string, due time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE assignments SET due_date = $1, updated_at = $2 WHERE id = $3`,
		due, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update assignment due date: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update assignment due date: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
