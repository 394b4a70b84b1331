package dto

// ListAssignmentsRequest scopes an assignment listing to a class or a student.
type ListAssignmentsRequest struct {
	ClassID   string   `json:"class_id" form:"classId"`
	StudentID string   `json:"student_id" form:"studentId"`
	ClassIDs  []string `json:"class_ids" form:"classIds"`
}

// UpdateDueDateRequest replaces the due date of a single assignment. The
// timestamp needs at least hour granularity; minutes and seconds are zeroed.
type UpdateDueDateRequest struct {
	DueDate string `json:"due_date" validate:"required"`
}
