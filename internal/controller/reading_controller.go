package controller

import (
	"ielts_prep_backend/internal/service"
	"ielts_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReadingController struct {
	ReadingService *service.ReadingService
}

func NewReadingController(readingService *service.ReadingService) *ReadingController {
	return &ReadingController{ReadingService: readingService}
}

// ListExercises godoc
// @Summary 阅读练习列表
// @Tags 阅读
// @Produce json
// @Security BearerAuth
// @Param difficulty query string false "难度" Enums(easy, medium, hard)
// @Param category query string false "类别" Enums(academic, general)
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/reading/exercises [get]
func (c *ReadingController) ListExercises(ctx *gin.Context) {
	page, limit := pagination(ctx)
	exercises, total, err := c.ReadingService.ListExercises(
		ctx.Query("difficulty"), ctx.Query("category"), page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: exercises, Total: total, Page: page, Limit: limit})
}

// GetExercise godoc
// @Summary 阅读练习详情
// @Tags 阅读
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Success 200 {object} util.Response{data=model.ReadingExercise}
// @Failure 404 {object} util.Response "练习不存在"
// @Router /api/reading/exercises/{id} [get]
func (c *ReadingController) GetExercise(ctx *gin.Context) {
	exercise, err := c.ReadingService.GetExercise(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, exercise)
}

// SubmitAnswers godoc
// @Summary 提交阅读作答
// @Tags 阅读
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Param body body service.SubmitAnswersRequest true "作答内容"
// @Success 201 {object} util.Response{data=service.ObjectiveResult}
// @Failure 400 {object} util.Response "答案与题目不匹配"
// @Failure 404 {object} util.Response "练习不存在"
// @Router /api/reading/exercises/{id}/attempts [post]
func (c *ReadingController) SubmitAnswers(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ReadingService.SubmitAnswers(user.UserID, ctx.Param("id"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// GetAttempt godoc
// @Summary 阅读作答详情
// @Tags 阅读
// @Produce json
// @Security BearerAuth
// @Param attemptId path string true "作答ID"
// @Success 200 {object} util.Response{data=model.ReadingAttempt}
// @Failure 404 {object} util.Response "作答不存在"
// @Router /api/reading/attempts/{attemptId} [get]
func (c *ReadingController) GetAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.ReadingService.GetAttempt(user.UserID, ctx.Param("attemptId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}
