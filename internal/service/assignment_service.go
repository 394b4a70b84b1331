package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/dto"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
	appErrors "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/errors"
)

type assignmentReader interface {
	assignmentRepository
	GetByID(ctx context.Context, id string) (*models.Assignment, error)
}

// AssignmentService exposes the assignment read model and the direct due-date
// write the planner policies also use.
type AssignmentService struct {
	repo      assignmentReader
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAssignmentService constructs the service.
func NewAssignmentService(repo assignmentReader, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns assignments for a class scope or a student scope.
func (s *AssignmentService) List(ctx context.Context, req dto.ListAssignmentsRequest) ([]models.Assignment, error) {
	var (
		assignments []models.Assignment
		err         error
	)
	switch {
	case req.StudentID != "":
		if len(req.ClassIDs) == 0 {
			return nil, appErrors.Clone(appErrors.ErrValidation, "student scope requires classIds")
		}
		assignments, err = s.repo.ListForStudent(ctx, req.StudentID, req.ClassIDs)
	case req.ClassID != "":
		assignments, err = s.repo.ListForClass(ctx, req.ClassID)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "either classId or studentId is required")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	return assignments, nil
}

// UpdateDueDate replaces the due date of one assignment, zeroing minutes and
// seconds so the value stays on the planner's hour grid.
func (s *AssignmentService) UpdateDueDate(ctx context.Context, id string, req dto.UpdateDueDateRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	due, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "due_date must be an RFC 3339 timestamp")
	}
	due = time.Date(due.Year(), due.Month(), due.Day(), due.Hour(), 0, 0, 0, due.Location())

	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}

	if err := s.repo.UpdateDueDate(ctx, id, due); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistFailed.Code, appErrors.ErrPersistFailed.Status, "failed to update due date")
	}
	assignment.DueDate = due

	_ = s.cache.Invalidate(ctx, assignmentCachePrefix+"*")
	return assignment, nil
}
