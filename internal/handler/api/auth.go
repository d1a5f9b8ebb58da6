package api

import (
	"net/http"

	"spacehub/internal/handler/dto/request"
	"spacehub/internal/handler/dto/response"
	"spacehub/internal/usecase/commands"
	"spacehub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth  commands.AuthCommands
	users queries.UserQueries
}

func NewAuthHandler(auth commands.AuthCommands, users queries.UserQueries) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// @Summary Sign up
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.SignupRequest true "new account"
// @Success 201 {object} response.CreatedResponse
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req request.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid signup payload")
		return
	}

	in, err := req.ToInput()
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := h.auth.Signup(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: id})
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "credentials"
// @Success 200 {object} response.LoginResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid login payload")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		AccessToken: result.Token,
		UserID:      result.UserID,
		Role:        result.Role,
		Nickname:    result.Nickname,
	})
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} queries.UserView
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.users.GetMe(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Withdraw the current account
// @Tags auth
// @Success 204
// @Router /api/auth/me [delete]
func (h *AuthHandler) Withdraw(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.auth.Withdraw(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
