package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/toeic-practice-api/internal/controller"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(as service.AuthService) *AuthController {
	return &AuthController{authService: as}
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account data"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Username or email already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Register", err)
		return
	}
	resp, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Register", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in with username or email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid password"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Login", err)
		return
	}
	resp, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Login", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Router /auth/refresh-token [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "RefreshToken", err)
		return
	}
	resp, err := c.authService.RefreshToken(ctx.Request.Context(), req.Token)
	if err != nil {
		controller.RespondError(ctx, "RefreshToken", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RequestOTP godoc
// @Summary Send a one-time password by email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.OtpRequest true "Credential and purpose"
// @Success 200 {object} dto.OtpResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 503 {object} dto.ErrorResponse "Email could not be sent"
// @Router /auth/otp/request [post]
func (c *AuthController) RequestOTP(ctx *gin.Context) {
	var req dto.OtpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "RequestOTP", err)
		return
	}
	resp, err := c.authService.RequestOTP(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "RequestOTP", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// VerifyOTP godoc
// @Summary Verify a one-time password
// @Description Returns a short lived token for the OTP purpose, e.g. resetting the password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyOtpRequest true "OTP and purpose"
// @Success 200 {object} dto.VerifyOtpResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired OTP"
// @Router /auth/otp/verify [post]
func (c *AuthController) VerifyOTP(ctx *gin.Context) {
	var req dto.VerifyOtpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "VerifyOTP", err)
		return
	}
	resp, err := c.authService.VerifyOTP(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "VerifyOTP", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ResetPassword godoc
// @Summary Reset the password with a verified OTP token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid token"
// @Router /auth/reset-password [put]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "ResetPassword", err)
		return
	}
	resp, err := c.authService.ResetPassword(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "ResetPassword", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := controller.CurrentUser(ctx)
	if !ok {
		return
	}
	resp, err := c.authService.Me(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, "Me", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
