package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/dto"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
	appErrors "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/errors"
)

type assignmentReaderStub struct {
	assignmentRepoStub
	byID     map[string]*models.Assignment
	getErr   error
	getCalls int
}

func (s *assignmentReaderStub) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	a, ok := s.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *a
	return &copied, nil
}

func newAssignmentService(repo *assignmentReaderStub) *AssignmentService {
	cache := NewCacheService(nil, nil, time.Minute, nil, false)
	return NewAssignmentService(repo, cache, nil, nil)
}

func TestListForClass(t *testing.T) {
	repo := &assignmentReaderStub{assignmentRepoStub: assignmentRepoStub{assignments: testAssignments()}}
	svc := newAssignmentService(repo)

	got, err := svc.List(context.Background(), dto.ListAssignmentsRequest{ClassID: "class-1"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListStudentScopeRequiresClassIDs(t *testing.T) {
	svc := newAssignmentService(&assignmentReaderStub{})

	_, err := svc.List(context.Background(), dto.ListAssignmentsRequest{StudentID: "student-1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestListWithoutScopeRejected(t *testing.T) {
	svc := newAssignmentService(&assignmentReaderStub{})

	_, err := svc.List(context.Background(), dto.ListAssignmentsRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateDueDateSnapsToHour(t *testing.T) {
	a := models.Assignment{ID: "a", Title: "Essay draft", ClassID: "class-1", DueDate: localDate(6, 9)}
	repo := &assignmentReaderStub{byID: map[string]*models.Assignment{"a": &a}}
	svc := newAssignmentService(repo)

	loc := time.FixedZone("ICT", 7*3600)
	due := time.Date(2024, 5, 10, 14, 25, 41, 0, loc)
	updated, err := svc.UpdateDueDate(context.Background(), "a", dto.UpdateDueDateRequest{
		DueDate: due.Format(time.RFC3339),
	})
	require.NoError(t, err)

	assert.Equal(t, 14, updated.DueDate.Hour())
	assert.Zero(t, updated.DueDate.Minute())
	assert.Zero(t, updated.DueDate.Second())

	persisted, ok := repo.recordedUpdate("a")
	require.True(t, ok)
	assert.True(t, persisted.Equal(updated.DueDate))
}

func TestUpdateDueDateUnknownAssignment(t *testing.T) {
	svc := newAssignmentService(&assignmentReaderStub{})

	_, err := svc.UpdateDueDate(context.Background(), "ghost", dto.UpdateDueDateRequest{
		DueDate: "2024-05-10T14:00:00Z",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestUpdateDueDateRejectsMalformedTimestamp(t *testing.T) {
	svc := newAssignmentService(&assignmentReaderStub{})

	_, err := svc.UpdateDueDate(context.Background(), "a", dto.UpdateDueDateRequest{
		DueDate: "next tuesday",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateDueDateWriteFailure(t *testing.T) {
	a := models.Assignment{ID: "a", Title: "Essay draft", ClassID: "class-1", DueDate: localDate(6, 9)}
	repo := &assignmentReaderStub{
		assignmentRepoStub: assignmentRepoStub{updateErr: errors.New("write refused")},
		byID:               map[string]*models.Assignment{"a": &a},
	}
	svc := newAssignmentService(repo)

	_, err := svc.UpdateDueDate(context.Background(), "a", dto.UpdateDueDateRequest{
		DueDate: "2024-05-10T14:00:00Z",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPersistFailed.Code, appErrors.FromError(err).Code)
}
