package handler

import (
	"tours-api/internal/middleware"
	"tours-api/internal/models"
	"tours-api/internal/service"
	"tours-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup godoc
// @Summary      Sign up
// @Description  Create a user account and return a signed token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.SignupRequest  true  "Account details"
// @Success      201      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Router       /users/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, err)
		return
	}

	result, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Created(c, result)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate a user and return a signed token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Success(c, result)
}

// ForgotPassword godoc
// @Summary      Request password reset
// @Description  Email a one-time reset link valid for 10 minutes
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.ForgotPasswordRequest  true  "Account email"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/forgot [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, err)
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	resetBaseURL := scheme + "://" + c.Request.Host

	if err := h.service.ForgotPassword(c.Request.Context(), &req, resetBaseURL); err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Success(c, gin.H{"message": "link sent to email"})
}

// ResetPassword godoc
// @Summary      Reset password
// @Description  Consume a reset token, set a new password, and return a fresh signed token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        resetToken  path      string                       true  "Raw reset token from the email link"
// @Param        request     body      models.ResetPasswordRequest  true  "New password"
// @Success      200         {object}  response.Response{data=models.AuthResponse}
// @Failure      400         {object}  response.Response
// @Router       /users/reset-password/{resetToken} [patch]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, err)
		return
	}

	result, err := h.service.ResetPassword(c.Request.Context(), c.Param("resetToken"), &req)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Success(c, result)
}
