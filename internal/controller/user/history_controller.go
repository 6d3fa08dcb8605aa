package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/toeic-practice-api/internal/controller"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/service"
)

type HistoryController struct {
	historyService service.HistoryService
}

func NewHistoryController(hs service.HistoryService) *HistoryController {
	return &HistoryController{historyService: hs}
}

// UpsertProgress godoc
// @Summary (User) Save or submit progress on a test
// @Description A "save" overwrites the user's single saved progress for the test. A "submit" finalizes it.
// @Tags User - History
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.HistoryCreateRequest true "Progress"
// @Success 200 {object} dto.HistoryCreateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid progress"
// @Failure 404 {object} dto.ErrorResponse "Test or part not found"
// @Router /history [post]
func (c *HistoryController) UpsertProgress(ctx *gin.Context) {
	userID, ok := controller.CurrentUser(ctx)
	if !ok {
		return
	}
	var req dto.HistoryCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "UpsertProgress", err)
		return
	}
	resp, err := c.historyService.UpsertProgress(ctx.Request.Context(), userID, req)
	if err != nil {
		controller.RespondError(ctx, "UpsertProgress", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSavedProgress godoc
// @Summary (User) Get the saved progress of a test
// @Description Returns null when nothing is saved.
// @Tags User - History
// @Produce json
// @Security BearerAuth
// @Param test_id query int true "Test ID"
// @Success 200 {object} dto.HistoryResponse
// @Router /history/save [get]
func (c *HistoryController) GetSavedProgress(ctx *gin.Context) {
	userID, ok := controller.CurrentUser(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "test_id")
	if !ok {
		return
	}
	resp, err := c.historyService.GetSavedProgress(ctx.Request.Context(), userID, testID)
	if err != nil {
		controller.RespondError(ctx, "GetSavedProgress", err)
		return
	}
	if resp == nil {
		ctx.JSON(http.StatusOK, nil)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListSubmittedHistory godoc
// @Summary (User) List the latest submitted results
// @Tags User - History
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.HistoryResultListResponse
// @Router /history/result/list [get]
func (c *HistoryController) ListSubmittedHistory(ctx *gin.Context) {
	userID, ok := controller.CurrentUser(ctx)
	if !ok {
		return
	}
	resp, err := c.historyService.ListSubmittedHistory(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, "ListSubmittedHistory", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSubmittedDetail godoc
// @Summary (User) Get the scored result of a history
// @Tags User - History
// @Produce json
// @Security BearerAuth
// @Param history_id query int true "History ID"
// @Success 200 {object} dto.HistoryResultDetailResponse
// @Failure 404 {object} dto.ErrorResponse "History not found"
// @Router /history/result/detail [get]
func (c *HistoryController) GetSubmittedDetail(ctx *gin.Context) {
	userID, ok := controller.CurrentUser(ctx)
	if !ok {
		return
	}
	historyID, ok := controller.ParseID(ctx, "history_id")
	if !ok {
		return
	}
	resp, err := c.historyService.GetSubmittedDetail(ctx.Request.Context(), userID, historyID)
	if err != nil {
		controller.RespondError(ctx, "GetSubmittedDetail", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
