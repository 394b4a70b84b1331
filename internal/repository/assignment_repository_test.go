package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*AssignmentRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewAssignmentRepository(db), mock
}

func assignmentRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "title", "class_id", "due_date", "student_ids", "created_by", "created_at", "updated_at"}).
		AddRow("a", "Essay draft", "class-1", time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC), "{}", "teacher-1", now, now).
		AddRow("b", "Vocabulary quiz", "class-1", time.Date(2024, 5, 7, 10, 0, 0, 0, time.UTC), "{student-1}", "teacher-1", now, now)
}

func TestListForClass(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM assignments WHERE class_id = $1 ORDER BY due_date ASC, title ASC`)).
		WithArgs("class-1").
		WillReturnRows(assignmentRows())

	assignments, err := repo.ListForClass(context.Background(), "class-1")
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, "a", assignments[0].ID)
	assert.Equal(t, "Essay draft", assignments[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListForStudent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE class_id = ANY($1)`)).
		WithArgs(pq.Array([]string{"class-1", "class-2"}), "student-1").
		WillReturnRows(assignmentRows())

	assignments, err := repo.ListForStudent(context.Background(), "student-1", []string{"class-1", "class-2"})
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM assignments WHERE id = $1`)).
		WithArgs("a").
		WillReturnRows(assignmentRows())

	assignment, err := repo.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", assignment.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM assignments WHERE id = $1`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDueDate(t *testing.T) {
	repo, mock := newMockRepo(t)
	due := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE assignments SET due_date = $1, updated_at = $2 WHERE id = $3`)).
		WithArgs(due, sqlmock.AnyArg(), "a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateDueDate(context.Background(), "a", due)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDueDateNoRows(t *testing.T) {
	repo, mock := newMockRepo(t)
	due := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE assignments SET due_date = $1`)).
		WithArgs(due, sqlmock.AnyArg(), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateDueDate(context.Background(), "ghost", due)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
