package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/dto"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/service"
	appErrors "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/errors"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/response"
)

type boardService interface {
	Open(ctx context.Context, req dto.OpenBoardRequest, claims *models.JWTClaims) (*dto.BoardView, error)
	View(boardID, anchor string) (*dto.BoardView, error)
	Drop(ctx context.Context, boardID string, req dto.DropRequest) (*dto.BoardView, error)
	Save(ctx context.Context, boardID string) (*dto.SaveResult, error)
	Cancel(boardID string) (*dto.BoardView, error)
	Close(boardID string) error
}

type boardExporter interface {
	Export(boardID, anchor, format string) (*service.ExportResult, error)
}

// BoardHandler exposes the planner board endpoints.
type BoardHandler struct {
	service  boardService
	exporter boardExporter
}

// NewBoardHandler builds a new handler.
func NewBoardHandler(service boardService, exporter boardExporter) *BoardHandler {
	return &BoardHandler{service: service, exporter: exporter}
}

// Open godoc
// @Summary Open a planner board
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.OpenBoardRequest true "Board scope and variant"
// @Success 201 {object} response.Envelope
// @Router /planner/boards [post]
func (h *BoardHandler) Open(c *gin.Context) {
	var req dto.OpenBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid board payload"))
		return
	}
	view, err := h.service.Open(c.Request.Context(), req, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// Get godoc
// @Summary Render a planner board
// @Tags Planner
// @Produce json
// @Param id path string true "Board ID"
// @Param anchor query string false "Anchor date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /planner/boards/{id} [get]
func (h *BoardHandler) Get(c *gin.Context) {
	view, err := h.service.View(c.Param("id"), c.Query("anchor"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Drop godoc
// @Summary Drop an assignment chip onto a grid cell
// @Tags Planner
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Param payload body dto.DropRequest true "Drop payload"
// @Success 200 {object} response.Envelope
// @Router /planner/boards/{id}/drops [post]
func (h *BoardHandler) Drop(c *gin.Context) {
	var req dto.DropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid drop payload"))
		return
	}
	view, err := h.service.Drop(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Save godoc
// @Summary Persist all staged due-date changes
// @Tags Planner
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} response.Envelope
// @Router /planner/boards/{id}/save [post]
func (h *BoardHandler) Save(c *gin.Context) {
	result, err := h.service.Save(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Cancel godoc
// @Summary Discard staged due-date changes
// @Tags Planner
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} response.Envelope
// @Router /planner/boards/{id}/cancel [post]
func (h *BoardHandler) Cancel(c *gin.Context) {
	view, err := h.service.Cancel(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Export godoc
// @Summary Export the board week grid
// @Tags Planner
// @Produce application/pdf
// @Param id path string true "Board ID"
// @Param anchor query string false "Anchor date (YYYY-MM-DD)"
// @Param format query string false "pdf or csv"
// @Success 200 {file} binary
// @Router /planner/boards/{id}/export [get]
func (h *BoardHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "export is disabled"))
		return
	}
	result, err := h.exporter.Export(c.Param("id"), c.Query("anchor"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

// Close godoc
// @Summary Close a planner board
// @Tags Planner
// @Param id path string true "Board ID"
// @Success 204
// @Router /planner/boards/{id} [delete]
func (h *BoardHandler) Close(c *gin.Context) {
	if err := h.service.Close(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
