package models

// BoardVariant selects a planner board configuration: which reconciliation
// policy applies and whether drops are restricted to the source day.
type BoardVariant string

const (
	// BoardVariantStudent shows a student's own calendar. Drops persist
	// immediately with rollback on failure.
	BoardVariantStudent BoardVariant = "STUDENT"
	// BoardVariantTeacher shows a teacher's class calendar. Drops are staged
	// until an explicit save.
	BoardVariantTeacher BoardVariant = "TEACHER"
	// BoardVariantClass shows the shared class calendar. Drops are staged and
	// may only move an assignment within its current day.
	BoardVariantClass BoardVariant = "CLASS"
)

// Valid reports whether the variant is one of the known board configurations.
func (v BoardVariant) Valid() bool {
	switch v {
	case BoardVariantStudent, BoardVariantTeacher, BoardVariantClass:
		return true
	}
	return false
}

// Staged reports whether the variant buffers drops for a batch save.
func (v BoardVariant) Staged() bool {
	return v == BoardVariantTeacher || v == BoardVariantClass
}

// SameDayOnly reports whether the variant restricts drops to the assignment's
// current day (time-of-day reassignment only).
func (v BoardVariant) SameDayOnly() bool {
	return v == BoardVariantClass
}
