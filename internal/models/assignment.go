package models

import (
	"time"

	"github.com/lib/pq"
)

// Assignment represents a class assignment with a scheduled due date.
// The planner only ever rewrites DueDate; every other field is owned by the
// assignment authoring flows.
type Assignment struct {
	ID         string         `db:"id" json:"id"`
	Title      string         `db:"title" json:"title"`
	ClassID    string         `db:"class_id" json:"class_id"`
	DueDate    time.Time      `db:"due_date" json:"due_date"`
	StudentIDs pq.StringArray `db:"student_ids" json:"student_ids,omitempty"`
	CreatedBy  string         `db:"created_by" json:"created_by"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// TargetsStudent reports whether the assignment applies to the given student.
// An empty target list means the whole class.
func (a Assignment) TargetsStudent(studentID string) bool {
	if len(a.StudentIDs) == 0 {
		return true
	}
	for _, id := range a.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// AssignmentScope selects which assignments a planner board shows: either a
// whole class, or one student across their enrolled classes.
type AssignmentScope struct {
	ClassID   string   `json:"class_id,omitempty"`
	StudentID string   `json:"student_id,omitempty"`
	ClassIDs  []string `json:"class_ids,omitempty"`
}

// ForStudent reports whether the scope is student-shaped.
func (s AssignmentScope) ForStudent() bool {
	return s.StudentID != ""
}
