package dto

import (
	"time"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
)

// OpenBoardRequest creates a planner board instance.
type OpenBoardRequest struct {
	Variant   string   `json:"variant" validate:"required"`
	ClassID   string   `json:"class_id"`
	StudentID string   `json:"student_id"`
	ClassIDs  []string `json:"class_ids"`
	Anchor    string   `json:"anchor"`
}

// DropRequest moves an assignment chip onto a grid cell. SourceDay carries the
// day identifier attached when the drag started, so the drop survives client
// re-renders without server-side drag state.
type DropRequest struct {
	AssignmentID string `json:"assignment_id"`
	Day          string `json:"day" validate:"required"`
	Hour         string `json:"hour" validate:"required"`
	SourceDay    string `json:"source_day"`
}

// Chip is the compact draggable representation of an assignment on the board.
type Chip struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	ClassID string    `json:"class_id"`
	DueDate time.Time `json:"due_date"`
	Dirty   bool      `json:"dirty,omitempty"`
}

// BoardView is the rendered state of a board: the visible week, the hour rows,
// the cell contents and the full assignment bank.
type BoardView struct {
	BoardID   string              `json:"board_id"`
	Variant   models.BoardVariant `json:"variant"`
	Week      []string            `json:"week"`
	Hours     []string            `json:"hours"`
	Cells     map[string][]Chip   `json:"cells"`
	Bank      []Chip              `json:"bank"`
	DirtyIDs  []string            `json:"dirty_ids,omitempty"`
	Saving    bool                `json:"saving"`
	CreatedAt time.Time           `json:"created_at"`
}

// SaveResult reports the outcome of persisting a staged batch.
type SaveResult struct {
	Saved int `json:"saved"`
}
