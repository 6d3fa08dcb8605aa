// Package controller holds the helpers shared by the user and admin handlers.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/middleware"
	"github.com/lshigami/toeic-practice-api/internal/service"
	"github.com/rs/zerolog/log"
)

// RespondError writes err with the status of its kind. where names the handler for the log.
func RespondError(ctx *gin.Context, where string, err error) {
	status := apperror.HTTPStatus(err)
	resp := dto.ErrorResponse{Message: apperror.Message(err)}
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("handler", where).Msg("Request failed")
		if cause := err.Error(); cause != resp.Message {
			resp.Details = []string{cause}
		}
	} else {
		log.Warn().Err(err).Str("handler", where).Int("status", status).Msg("Request rejected")
	}
	_ = ctx.Error(err)
	ctx.JSON(status, resp)
}

func RespondBindError(ctx *gin.Context, where string, err error) {
	log.Warn().Err(err).Str("handler", where).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// ParseID reads a positive integer from a path parameter or, failing that, the query string.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	if raw == "" {
		raw = ctx.Query(name)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// CurrentUser returns the authenticated user id or answers 401.
func CurrentUser(ctx *gin.Context) (uint, bool) {
	id, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return 0, false
	}
	return id, true
}

type HealthController struct {
	geminiService service.GeminiService
}

func NewHealthController(geminiService service.GeminiService) *HealthController {
	return &HealthController{geminiService: geminiService}
}

// Health godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// GeminiHealth godoc
// @Summary Check that an AI model answers
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.ErrorResponse "No AI model is available"
// @Router /gemini/health [post]
func (c *HealthController) GeminiHealth(ctx *gin.Context) {
	resp, err := c.geminiService.Health(ctx.Request.Context())
	if err != nil {
		RespondError(ctx, "GeminiHealth", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
