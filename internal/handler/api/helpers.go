package api

import (
	"net/http"
	"strconv"

	"spacehub/internal/handler/httperr"
	"spacehub/internal/handler/middleware"
	"spacehub/internal/pkg/errs"
	"spacehub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingUser = errs.New("user id missing from context")

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		// Routes are registered behind RequireAuth; this is a wiring bug.
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternalError, errMissingUser, "Internal server error")
		return uuid.Nil, false
	}
	return id, true
}

func pageQuery(c *gin.Context) queries.Page {
	number, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	return queries.NewPage(number, size)
}
