package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/notevault/vtu-notes-api/internal/service"
	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
	"github.com/notevault/vtu-notes-api/pkg/response"
)

// SelectionProvider is the service surface the selection endpoints
// need.
type SelectionProvider interface {
	Toggle(ctx context.Context, session, noteID string) (*service.SelectionState, bool, error)
	Get(ctx context.Context, session string) (*service.SelectionState, error)
	Clear(ctx context.Context, session string) error
}

type SelectionHandler struct {
	service SelectionProvider
}

func NewSelectionHandler(svc SelectionProvider) *SelectionHandler {
	return &SelectionHandler{service: svc}
}

type toggleRequest struct {
	NoteID string `json:"note_id"`
}

// Toggle godoc
// @Summary Toggle a note in the session's selection set
// @Tags Selections
// @Accept json
// @Produce json
// @Param session path string true "Session id"
// @Param request body toggleRequest true "Note id"
// @Success 200 {object} response.Envelope
// @Router /selections/{session}/toggle [post]
func (h *SelectionHandler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrValidation.Wrap(err))
		return
	}

	state, selected, err := h.service.Toggle(c.Request.Context(), c.Param("session"), req.NoteID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.WithMeta(c, state, gin.H{"selected": selected})
}

// Get godoc
// @Summary Get the session's selection set
// @Tags Selections
// @Produce json
// @Param session path string true "Session id"
// @Success 200 {object} response.Envelope
// @Router /selections/{session} [get]
func (h *SelectionHandler) Get(c *gin.Context) {
	state, err := h.service.Get(c.Request.Context(), c.Param("session"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, state)
}

// Clear godoc
// @Summary Empty the session's selection set
// @Tags Selections
// @Param session path string true "Session id"
// @Success 204
// @Router /selections/{session} [delete]
func (h *SelectionHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), c.Param("session")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
