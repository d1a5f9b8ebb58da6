package api

import (
	"net/http"

	"spacehub/internal/handler/dto/request"
	"spacehub/internal/handler/dto/response"
	"spacehub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary List bookable hour slots for a space on a date
// @Tags spaces
// @Produce json
// @Param id path string true "space id"
// @Param date query string true "yyyy-mm-dd"
// @Success 200 {object} response.SlotsResponse
// @Router /api/spaces/{id}/available-times/date [get]
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	spaceID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	date, err := request.ParseDate(c.Query("date"))
	if err != nil {
		badRequest(c, err, "Invalid date")
		return
	}

	slots, err := h.availability.ListSlots(c.Request.Context(), spaceID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SlotsResponse{AvailableTimes: slots})
}
