package api

import (
	"net/http"

	"spacehub/internal/domain/reservation"
	"spacehub/internal/handler/dto/request"
	"spacehub/internal/handler/dto/response"
	"spacehub/internal/pkg/errs"
	"spacehub/internal/usecase/commands"
	"spacehub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{commands: cmds, queries: qs}
}

// @Summary Create a reservation for a space
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "space id"
// @Param request body request.CreateReservationRequest true "reservation"
// @Success 201 {object} response.CreatedResponse
// @Router /api/spaces/{id}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	spaceID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	guestID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid reservation payload")
		return
	}

	in, err := req.ToInput(spaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), guestID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: id})
}

// @Summary Cancel a pending reservation
// @Tags reservations
// @Param id path string true "reservation id"
// @Success 204
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	guestID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.commands.Cancel(c.Request.Context(), guestID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reservation detail
// @Tags reservations
// @Produce json
// @Param id path string true "reservation id"
// @Success 200 {object} queries.ReservationView
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	guestID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), guestID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Current and upcoming reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} queries.ReservationView
// @Router /api/reservations/current [get]
func (h *ReservationHandler) ListCurrent(c *gin.Context) {
	guestID, ok := currentUser(c)
	if !ok {
		return
	}

	views, err := h.queries.ListCurrent(c.Request.Context(), guestID, pageQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Past reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} queries.ReservationView
// @Router /api/reservations/past [get]
func (h *ReservationHandler) ListPast(c *gin.Context) {
	guestID, ok := currentUser(c)
	if !ok {
		return
	}

	views, err := h.queries.ListPast(c.Request.Context(), guestID, pageQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Reservations filtered by status
// @Tags reservations
// @Produce json
// @Param status query string true "PENDING|ACCEPTED|REJECTED|COMPLETED"
// @Success 200 {array} queries.ReservationView
// @Router /api/reservations/status [get]
func (h *ReservationHandler) ListByStatus(c *gin.Context) {
	guestID, ok := currentUser(c)
	if !ok {
		return
	}

	status, err := reservation.NewStatus(c.Query("status"))
	if err != nil {
		badRequest(c, errs.Wrap(err, "invalid status query"), "Invalid status")
		return
	}

	views, err := h.queries.ListByStatus(c.Request.Context(), guestID, status, pageQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
