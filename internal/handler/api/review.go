package api

import (
	"net/http"

	"spacehub/internal/handler/dto/request"
	"spacehub/internal/handler/dto/response"
	"spacehub/internal/usecase/commands"
	"spacehub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	commands commands.ReviewCommands
	queries  queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, qs queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{commands: cmds, queries: qs}
}

// @Summary Reservations the guest can still review
// @Tags reviews
// @Produce json
// @Success 200 {array} queries.ReviewableItem
// @Router /api/reviews/reviewable [get]
func (h *ReviewHandler) ListReviewable(c *gin.Context) {
	guestID, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.queries.ListReviewable(c.Request.Context(), guestID, pageQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Reviews the guest has written
// @Tags reviews
// @Produce json
// @Success 200 {array} queries.ReviewView
// @Router /api/reviews/written [get]
func (h *ReviewHandler) ListWritten(c *gin.Context) {
	guestID, ok := currentUser(c)
	if !ok {
		return
	}

	views, err := h.queries.ListWritten(c.Request.Context(), guestID, pageQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Reservation info for the review form
// @Tags reviews
// @Produce json
// @Param id path string true "reservation id"
// @Success 200 {object} queries.ReservationView
// @Router /api/reviews/reservation/{id} [get]
func (h *ReviewHandler) GetReservationForReview(c *gin.Context) {
	guestID, ok := currentUser(c)
	if !ok {
		return
	}
	reservationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetReservationForReview(c.Request.Context(), guestID, reservationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Review detail
// @Tags reviews
// @Produce json
// @Param id path string true "review id"
// @Success 200 {object} queries.ReviewView
// @Router /api/reviews/{id} [get]
func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create a review for a completed reservation
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body request.CreateReviewRequest true "review"
// @Success 201 {object} response.CreatedResponse
// @Router /api/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	guestID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid review payload")
		return
	}

	id, err := h.commands.Create(c.Request.Context(), guestID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: id})
}

// @Summary Update a review
// @Tags reviews
// @Accept json
// @Param id path string true "review id"
// @Param request body request.UpdateReviewRequest true "review"
// @Success 204
// @Router /api/reviews/{id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	guestID, ok := currentUser(c)
	if !ok {
		return
	}
	reviewID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid review payload")
		return
	}

	if err := h.commands.Update(c.Request.Context(), guestID, reviewID, req.ToInput()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a review
// @Tags reviews
// @Param id path string true "review id"
// @Success 204
// @Router /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	guestID, ok := currentUser(c)
	if !ok {
		return
	}
	reviewID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), guestID, reviewID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
