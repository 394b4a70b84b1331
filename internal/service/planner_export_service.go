package service

import (
	"strings"
	"time"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/dto"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
	appErrors "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/errors"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/export"
)

type boardViewer interface {
	View(boardID, anchor string) (*dto.BoardView, error)
}

// ExportService turns a rendered planner board into downloadable documents:
// the week grid as PDF, the assignment bank as CSV.
type ExportService struct {
	boards boardViewer
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
}

// NewExportService constructs the service.
func NewExportService(boards boardViewer) *ExportService {
	return &ExportService{
		boards: boards,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
	}
}

// ExportResult carries the rendered document and its metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Export renders the board in the requested format ("pdf" or "csv").
func (s *ExportService) Export(boardID, anchor, format string) (*ExportResult, error) {
	view, err := s.boards.View(boardID, anchor)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "", "pdf":
		content, err := s.pdf.RenderWide(gridDataset(view), "Week plan "+view.Week[0])
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    "week-plan-" + view.Week[0] + ".pdf",
		}, nil
	case "csv":
		content, err := s.csv.Render(bankDataset(view))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    "assignments-" + view.Week[0] + ".csv",
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be pdf or csv")
	}
}

func gridDataset(view *dto.BoardView) export.Dataset {
	headers := append([]string{"Hour"}, view.Week...)
	rows := make([]map[string]string, 0, len(view.Hours))
	for _, hour := range view.Hours {
		row := map[string]string{"Hour": hour + ":00"}
		for _, day := range view.Week {
			chips := view.Cells[models.CellKey(day, hour)]
			titles := make([]string, len(chips))
			for i, chip := range chips {
				titles[i] = chip.Title
			}
			row[day] = strings.Join(titles, "; ")
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func bankDataset(view *dto.BoardView) export.Dataset {
	headers := []string{"ID", "Title", "Class", "Due"}
	rows := make([]map[string]string, 0, len(view.Bank))
	for _, chip := range view.Bank {
		rows = append(rows, map[string]string{
			"ID":    chip.ID,
			"Title": chip.Title,
			"Class": chip.ClassID,
			"Due":   chip.DueDate.Format(time.RFC3339),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
