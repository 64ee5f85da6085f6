package controller

import (
	"strconv"

	"ielts_prep_backend/internal/service"
	"ielts_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SpeakingController struct {
	SpeakingService *service.SpeakingService
}

func NewSpeakingController(speakingService *service.SpeakingService) *SpeakingController {
	return &SpeakingController{SpeakingService: speakingService}
}

// ListExercises godoc
// @Summary 口语练习列表
// @Tags 口语
// @Produce json
// @Security BearerAuth
// @Param part query int false "口语部分 1-3"
// @Param topic query string false "话题"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/speaking/exercises [get]
func (c *SpeakingController) ListExercises(ctx *gin.Context) {
	page, limit := pagination(ctx)
	part, _ := strconv.Atoi(ctx.Query("part"))

	exercises, total, err := c.SpeakingService.ListExercises(part, ctx.Query("topic"), page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: exercises, Total: total, Page: page, Limit: limit})
}

// GetExercise godoc
// @Summary 口语练习详情
// @Tags 口语
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Success 200 {object} util.Response{data=model.SpeakingExercise}
// @Failure 404 {object} util.Response "练习不存在"
// @Router /api/speaking/exercises/{id} [get]
func (c *SpeakingController) GetExercise(ctx *gin.Context) {
	exercise, err := c.SpeakingService.GetExercise(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, exercise)
}

// SubmitResponse godoc
// @Summary 提交口语作答
// @Description multipart 表单：audio 为录音文件，transcript 为转写文本，timeSpent 为作答秒数
// @Tags 口语
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Param audio formData file false "录音文件"
// @Param transcript formData string true "转写文本"
// @Param timeSpent formData int true "作答时长（秒，必须为正数）"
// @Success 201 {object} util.Response{data=service.SpeakingResult}
// @Failure 400 {object} util.Response "转写文本为空"
// @Failure 404 {object} util.Response "练习不存在"
// @Router /api/speaking/exercises/{id}/attempts [post]
func (c *SpeakingController) SubmitResponse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	req := service.SubmitSpeakingRequest{
		Transcript: ctx.PostForm("transcript"),
	}
	if ts := ctx.PostForm("timeSpent"); ts != "" {
		req.TimeSpent, _ = strconv.Atoi(ts)
	}
	if req.Transcript == "" {
		util.BadRequest(ctx, "transcript is required")
		return
	}

	audioURL := ""
	if file, err := ctx.FormFile("audio"); err == nil {
		probe, err := file.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		contentType, err := util.ValidateMimeType(probe, util.AllowedAudioMimeTypes)
		probe.Close()
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}

		src, err := file.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer src.Close()

		audioURL, err = c.SpeakingService.UploadAudio(
			ctx.Request.Context(), user.UserID, file.Filename, src, file.Size, contentType)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}

	result, err := c.SpeakingService.SubmitResponse(user.UserID, ctx.Param("id"), audioURL, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// GetAttempt godoc
// @Summary 口语提交详情
// @Tags 口语
// @Produce json
// @Security BearerAuth
// @Param attemptId path string true "提交ID"
// @Success 200 {object} util.Response{data=model.SpeakingAttempt}
// @Failure 404 {object} util.Response "提交不存在"
// @Router /api/speaking/attempts/{attemptId} [get]
func (c *SpeakingController) GetAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.SpeakingService.GetAttempt(user.UserID, ctx.Param("attemptId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}
