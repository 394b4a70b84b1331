package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/dto"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
	appErrors "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/errors"
)

type boardViewerStub struct {
	view *dto.BoardView
	err  error
}

func (s *boardViewerStub) View(boardID, anchor string) (*dto.BoardView, error) {
	return s.view, s.err
}

func exportTestView() *dto.BoardView {
	return &dto.BoardView{
		BoardID: "board-1",
		Variant: models.BoardVariantTeacher,
		Week:    []string{"2024-05-06", "2024-05-07", "2024-05-08", "2024-05-09", "2024-05-10", "2024-05-11", "2024-05-12"},
		Hours:   models.PlannerHours(),
		Cells: map[string][]dto.Chip{
			models.CellKey("2024-05-08", "09"): {
				{ID: "a", Title: "Essay draft", ClassID: "class-1", DueDate: time.Date(2024, 5, 8, 9, 0, 0, 0, time.Local)},
			},
		},
		Bank: []dto.Chip{
			{ID: "a", Title: "Essay draft", ClassID: "class-1", DueDate: time.Date(2024, 5, 8, 9, 0, 0, 0, time.Local)},
		},
	}
}

func TestExportCSVContainsBank(t *testing.T) {
	svc := NewExportService(&boardViewerStub{view: exportTestView()})

	result, err := svc.Export("board-1", "", "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "assignments-2024-05-06.csv", result.Filename)

	lines := strings.Split(strings.TrimSpace(string(result.Content)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Title,Class,Due", lines[0])
	assert.Contains(t, lines[1], "Essay draft")
	assert.Contains(t, lines[1], "class-1")
}

func TestExportPDFIsDefaultFormat(t *testing.T) {
	svc := NewExportService(&boardViewerStub{view: exportTestView()})

	result, err := svc.Export("board-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "week-plan-2024-05-06.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestExportUnknownFormatRejected(t *testing.T) {
	svc := NewExportService(&boardViewerStub{view: exportTestView()})

	_, err := svc.Export("board-1", "", "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportPropagatesBoardLookupError(t *testing.T) {
	svc := NewExportService(&boardViewerStub{err: appErrors.Clone(appErrors.ErrNotFound, "board not found")})

	_, err := svc.Export("missing", "", "csv")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
