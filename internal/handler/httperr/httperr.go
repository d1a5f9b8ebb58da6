package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape every error takes.
type Response struct {
	HTTPStatus int    `json:"httpStatus"`
	ErrorCode  string `json:"errorCode"`
	Message    string `json:"message"`
}

// Error codes shared across handlers.
const (
	CodeSpaceNotFound           = "SPACE_NOT_FOUND"
	CodeNoHostSpace             = "NO_HOST_SPACE"
	CodeNoPermission            = "NO_PERMISSION"
	CodeInvalidCapacity         = "INVALID_CAPACITY"
	CodeInvalidPrice            = "INVALID_PRICE"
	CodeAvailableTimeNotFound   = "AVAILABLE_TIME_NOT_FOUND"
	CodeTimeUnavailable         = "TIME_UNAVAILABLE"
	CodeReservationNotFound     = "RESERVATION_NOT_FOUND"
	CodeCannotCancelReservation = "CANNOT_CANCEL_RESERVATION"
	CodeReviewNotFound          = "REVIEW_NOT_FOUND"
	CodeDuplicateReview         = "DUPLICATE_REVIEW"
	CodeReservationNotCompleted = "RESERVATION_NOT_COMPLETED"
	CodeDuplicateComment        = "DUPLICATE_COMMENT"
	CodeCommentNotFound         = "COMMENT_NOT_FOUND"
	CodeValidationError         = "VALIDATION_ERROR"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeUserNotFound            = "USER_NOT_FOUND"
	CodeDuplicateUser           = "DUPLICATE_USER"
	CodeInternalError           = "INTERNAL_ERROR"
)

// AbortWithError records the original error on the context for the error
// middleware and logging, then writes the public payload.
func AbortWithError(c *gin.Context, status int, code string, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		HTTPStatus: status,
		ErrorCode:  code,
		Message:    msg,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
