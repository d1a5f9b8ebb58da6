package api

import (
	"context"
	"net/http"

	"spacehub/internal/handler/dto/request"
	"spacehub/internal/usecase/commands"
	"spacehub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HostHandler struct {
	commands commands.HostReservationCommands
	queries  queries.HostReservationQueries
}

func NewHostHandler(cmds commands.HostReservationCommands, qs queries.HostReservationQueries) *HostHandler {
	return &HostHandler{commands: cmds, queries: qs}
}

// @Summary Host's spaces
// @Tags host
// @Produce json
// @Success 200 {array} queries.SpaceView
// @Router /api/host/spaces [get]
func (h *HostHandler) ListSpaces(c *gin.Context) {
	hostID, ok := currentUser(c)
	if !ok {
		return
	}

	views, err := h.queries.ListSpaces(c.Request.Context(), hostID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Reservations across host spaces for a date
// @Tags host
// @Produce json
// @Param date query string true "yyyy-mm-dd"
// @Success 200 {array} queries.ReservationView
// @Router /api/host/reservations [get]
func (h *HostHandler) ListByDate(c *gin.Context) {
	hostID, ok := currentUser(c)
	if !ok {
		return
	}
	date, err := request.ParseDate(c.Query("date"))
	if err != nil {
		badRequest(c, err, "Invalid date")
		return
	}

	views, err := h.queries.ListByDate(c.Request.Context(), hostID, date, pageQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Reservations for one space on a date
// @Tags host
// @Produce json
// @Param id path string true "space id"
// @Param date query string true "yyyy-mm-dd"
// @Success 200 {array} queries.ReservationView
// @Router /api/host/spaces/{id}/reservations [get]
func (h *HostHandler) ListBySpaceAndDate(c *gin.Context) {
	hostID, ok := currentUser(c)
	if !ok {
		return
	}
	spaceID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	date, err := request.ParseDate(c.Query("date"))
	if err != nil {
		badRequest(c, err, "Invalid date")
		return
	}

	views, err := h.queries.ListBySpaceAndDate(c.Request.Context(), hostID, spaceID, date, pageQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Accept a pending reservation
// @Tags host
// @Param id path string true "reservation id"
// @Success 204
// @Router /api/host/reservations/{id}/accept [patch]
func (h *HostHandler) Accept(c *gin.Context) {
	h.decide(c, h.commands.Accept)
}

// @Summary Reject a pending reservation
// @Tags host
// @Param id path string true "reservation id"
// @Success 204
// @Router /api/host/reservations/{id}/reject [patch]
func (h *HostHandler) Reject(c *gin.Context) {
	h.decide(c, h.commands.Reject)
}

func (h *HostHandler) decide(c *gin.Context, fn func(ctx context.Context, hostID, reservationID uuid.UUID) error) {
	hostID, ok := currentUser(c)
	if !ok {
		return
	}
	reservationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), hostID, reservationID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
