package api

import (
	"net/http"

	"spacehub/internal/handler/dto/request"
	"spacehub/internal/handler/dto/response"
	"spacehub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewCommentHandler struct {
	commands commands.ReviewCommentCommands
}

func NewReviewCommentHandler(cmds commands.ReviewCommentCommands) *ReviewCommentHandler {
	return &ReviewCommentHandler{commands: cmds}
}

// @Summary Reply to a review of the host's space
// @Tags host
// @Accept json
// @Produce json
// @Param id path string true "review id"
// @Param request body request.ReviewCommentRequest true "comment"
// @Success 201 {object} response.CreatedResponse
// @Router /api/host/reviews/{id}/comments [post]
func (h *ReviewCommentHandler) Create(c *gin.Context) {
	hostID, ok := currentUser(c)
	if !ok {
		return
	}
	reviewID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request.ReviewCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid comment payload")
		return
	}

	id, err := h.commands.Create(c.Request.Context(), hostID, reviewID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: id})
}

// @Summary Update a review reply
// @Tags host
// @Accept json
// @Param id path string true "comment id"
// @Param request body request.ReviewCommentRequest true "comment"
// @Success 204
// @Router /api/host/comments/{id} [patch]
func (h *ReviewCommentHandler) Update(c *gin.Context) {
	hostID, ok := currentUser(c)
	if !ok {
		return
	}
	commentID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request.ReviewCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid comment payload")
		return
	}

	if err := h.commands.Update(c.Request.Context(), hostID, commentID, req.Content); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a review reply
// @Tags host
// @Param id path string true "comment id"
// @Success 204
// @Router /api/host/comments/{id} [delete]
func (h *ReviewCommentHandler) Delete(c *gin.Context) {
	hostID, ok := currentUser(c)
	if !ok {
		return
	}
	commentID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), hostID, commentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
