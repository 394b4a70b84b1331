package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/dto"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
	appErrors "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/errors"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/response"
)

type assignmentService interface {
	List(ctx context.Context, req dto.ListAssignmentsRequest) ([]models.Assignment, error)
	UpdateDueDate(ctx context.Context, id string, req dto.UpdateDueDateRequest) (*models.Assignment, error)
}

// AssignmentHandler exposes the assignment read model and the direct due-date write.
type AssignmentHandler struct {
	service assignmentService
}

// NewAssignmentHandler builds a new handler.
func NewAssignmentHandler(service assignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// List godoc
// @Summary List assignments by scope
// @Tags Assignments
// @Produce json
// @Param classId query string false "Class ID scope"
// @Param studentId query string false "Student ID scope"
// @Param classIds query string false "Comma-separated class IDs (student scope)"
// @Success 200 {object} response.Envelope
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	req := dto.ListAssignmentsRequest{
		ClassID:   c.Query("classId"),
		StudentID: c.Query("studentId"),
	}
	if raw := c.Query("classIds"); raw != "" {
		req.ClassIDs = strings.Split(raw, ",")
	}
	assignments, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments, nil)
}

// UpdateDueDate godoc
// @Summary Replace an assignment's due date
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param payload body dto.UpdateDueDateRequest true "New due date"
// @Success 200 {object} response.Envelope
// @Router /assignments/{id}/due-date [patch]
func (h *AssignmentHandler) UpdateDueDate(c *gin.Context) {
	var req dto.UpdateDueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	assignment, err := h.service.UpdateDueDate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment, nil)
}
