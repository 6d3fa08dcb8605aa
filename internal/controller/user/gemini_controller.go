package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/toeic-practice-api/internal/controller"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/service"
)

type GeminiController struct {
	geminiService service.GeminiService
}

func NewGeminiController(gs service.GeminiService) *GeminiController {
	return &GeminiController{geminiService: gs}
}

// TranslateQuestion godoc
// @Summary (User) Translate a question
// @Description Translate a question and its answers to vi, ja or en. Translations are cached per question.
// @Tags User - AI
// @Accept json
// @Produce json
// @Param request body dto.TranslateQuestionRequest true "Question and target language"
// @Success 200 {object} dto.TranslateQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Unsupported language"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 503 {object} dto.ErrorResponse "No AI model is available"
// @Router /tests/gemini/translate/question [post]
func (c *GeminiController) TranslateQuestion(ctx *gin.Context) {
	var req dto.TranslateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "TranslateQuestion", err)
		return
	}
	resp, err := c.geminiService.TranslateQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "TranslateQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ExplainQuestion godoc
// @Summary (User) Explain a question
// @Description Explain why the correct answer is right and the others are wrong. Explanations are cached per question.
// @Tags User - AI
// @Accept json
// @Produce json
// @Param request body dto.ExplainQuestionRequest true "Question and target language"
// @Success 200 {object} dto.ExplainQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Unsupported language"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 503 {object} dto.ErrorResponse "No AI model is available"
// @Router /tests/gemini/explain/question [post]
func (c *GeminiController) ExplainQuestion(ctx *gin.Context) {
	var req dto.ExplainQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "ExplainQuestion", err)
		return
	}
	resp, err := c.geminiService.ExplainQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "ExplainQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// TranslateImage godoc
// @Summary (User) Get the picture of a media
// @Tags User - AI
// @Accept json
// @Produce json
// @Param request body dto.MediaRequest true "Media"
// @Success 200 {object} dto.ImageResponse
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Router /tests/gemini/translate/image [post]
func (c *GeminiController) TranslateImage(ctx *gin.Context) {
	var req dto.MediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "TranslateImage", err)
		return
	}
	resp, err := c.geminiService.GetMediaImage(ctx.Request.Context(), req.MediaID)
	if err != nil {
		controller.RespondError(ctx, "TranslateImage", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// TranslateAudioScript godoc
// @Summary (User) Get the audio script of a media
// @Tags User - AI
// @Accept json
// @Produce json
// @Param request body dto.MediaRequest true "Media"
// @Success 200 {object} dto.AudioScriptResponse
// @Failure 404 {object} dto.ErrorResponse "Audio script not found"
// @Router /tests/gemini/translate/audio-script [post]
func (c *GeminiController) TranslateAudioScript(ctx *gin.Context) {
	var req dto.MediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "TranslateAudioScript", err)
		return
	}
	resp, err := c.geminiService.GetAudioScript(ctx.Request.Context(), req.MediaID)
	if err != nil {
		controller.RespondError(ctx, "TranslateAudioScript", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
