package user

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/toeic-practice-api/internal/controller"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService service.UserTestService
}

func NewUserTestController(uts service.UserTestService) *UserTestController {
	return &UserTestController{userTestService: uts}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Description Get every test with its parts and the number of questions in each part.
// @Tags User - Tests
// @Produce json
// @Success 200 {array} dto.TestSummaryResponse
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "GetAllTests", err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Get the full content of a test: parts, media, questions and answers. Use part_ids to fetch only some parts.
// @Tags User - Tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Param part_ids query []int false "Only these parts" collectionFormat(multi)
// @Success 200 {object} dto.TestDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test or part not found"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID, ok := controller.ParseID(ctx, "test_id")
	if !ok {
		return
	}

	var partIDs []uint
	for _, raw := range ctx.QueryArray("part_ids") {
		for _, item := range strings.Split(raw, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			id, err := strconv.ParseUint(item, 10, 32)
			if err != nil || id == 0 {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid part_ids format", Details: []string{item}})
				return
			}
			partIDs = append(partIDs, uint(id))
		}
	}

	testDetails, err := c.userTestService.GetTestDetails(ctx.Request.Context(), testID, partIDs)
	if err != nil {
		controller.RespondError(ctx, "GetTestDetails", err)
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// GetPartAudioURL godoc
// @Summary (User) Get the audio stream url of a part
// @Description Returns null for parts without audio (Part 5, 6 and 7).
// @Tags User - Tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Param part_id path int true "Part ID"
// @Success 200 {object} dto.AudioURLResponse
// @Router /tests/{test_id}/parts/{part_id}/audio/url [get]
func (c *UserTestController) GetPartAudioURL(ctx *gin.Context) {
	testID, ok := controller.ParseID(ctx, "test_id")
	if !ok {
		return
	}
	partID, ok := controller.ParseID(ctx, "part_id")
	if !ok {
		return
	}
	resp, err := c.userTestService.GetPartAudioURL(ctx.Request.Context(), testID, partID)
	if err != nil {
		controller.RespondError(ctx, "GetPartAudioURL", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StreamPartAudio godoc
// @Summary (User) Stream the audio of a part
// @Tags User - Tests
// @Produce audio/mpeg
// @Param test_id path int true "Test ID"
// @Param part_id path int true "Part ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse "Audio not found"
// @Router /tests/{test_id}/parts/{part_id}/audio/stream [get]
func (c *UserTestController) StreamPartAudio(ctx *gin.Context) {
	testID, ok := controller.ParseID(ctx, "test_id")
	if !ok {
		return
	}
	partID, ok := controller.ParseID(ctx, "part_id")
	if !ok {
		return
	}
	audio, err := c.userTestService.OpenPartAudio(ctx.Request.Context(), testID, partID)
	if err != nil {
		controller.RespondError(ctx, "StreamPartAudio", err)
		return
	}
	defer audio.Content.Close()

	log.Debug().Uint("testID", testID).Uint("partID", partID).Str("file", audio.Name).Msg("Streaming part audio")
	ctx.Header("Content-Type", "audio/mpeg")
	ctx.Header("Content-Disposition", `inline; filename="`+audio.Name+`"`)
	http.ServeContent(ctx.Writer, ctx.Request, audio.Name, audio.Info.ModTime(), audio.Content)
}
