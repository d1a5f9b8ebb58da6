package api

import (
	"errors"
	"net/http"

	"spacehub/internal/handler/dto/request"
	"spacehub/internal/handler/httperr"
	"spacehub/internal/usecase/commands"
	"spacehub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// respondError is the single mapping from usecase sentinels to the public
// error payload. Handlers never pick status codes themselves.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSpaceNotFound) || errors.Is(err, queries.ErrSpaceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeSpaceNotFound, err, "Space not found")
	case errors.Is(err, queries.ErrNoHostSpace):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeNoHostSpace, err, "Host has no registered spaces")
	case errors.Is(err, commands.ErrNoPermission) || errors.Is(err, queries.ErrNoPermission):
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeNoPermission, err, "No permission")
	case errors.Is(err, commands.ErrInvalidCapacity):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidCapacity, err, "Guest count exceeds the space capacity")
	case errors.Is(err, commands.ErrInvalidPrice):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidPrice, err, "Price does not match the hourly rate")
	case errors.Is(err, commands.ErrAvailableTimeNotFound) || errors.Is(err, queries.ErrAvailableTimeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeAvailableTimeNotFound, err, "No available time for the requested slot")
	case errors.Is(err, commands.ErrTimeUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeTimeUnavailable, err, "The time slot is already reserved")
	case errors.Is(err, commands.ErrReservationNotFound) || errors.Is(err, queries.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeReservationNotFound, err, "Reservation not found")
	case errors.Is(err, commands.ErrCannotCancel):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeCannotCancelReservation, err, "Reservation can no longer be cancelled")
	case errors.Is(err, commands.ErrReviewNotFound) || errors.Is(err, queries.ErrReviewNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeReviewNotFound, err, "Review not found")
	case errors.Is(err, commands.ErrDuplicateReview):
		httperr.AbortWithError(c, http.StatusConflict, httperr.CodeDuplicateReview, err, "A review already exists for this reservation")
	case errors.Is(err, commands.ErrReservationNotCompleted):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeReservationNotCompleted, err, "Reservation is not completed yet")
	case errors.Is(err, commands.ErrDuplicateComment):
		httperr.AbortWithError(c, http.StatusConflict, httperr.CodeDuplicateComment, err, "A comment already exists for this review")
	case errors.Is(err, commands.ErrCommentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeCommentNotFound, err, "Review comment not found")
	case errors.Is(err, commands.ErrAuthenticationFailed):
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, err, "Invalid login id or password")
	case errors.Is(err, commands.ErrUserNotFound) || errors.Is(err, queries.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeUserNotFound, err, "User not found")
	case errors.Is(err, commands.ErrDuplicateUser):
		httperr.AbortWithError(c, http.StatusConflict, httperr.CodeDuplicateUser, err, "Login id or email already in use")
	case errors.Is(err, commands.ErrReservationNotPending),
		errors.Is(err, commands.ErrDomainValidation),
		errors.Is(err, request.ErrInvalidDate),
		errors.Is(err, request.ErrInvalidTime):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidationError, err, "Invalid request")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternalError, err, "Internal server error")
	}
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidationError, err, msg)
}
