package controller

import (
	"ielts_prep_backend/internal/service"
	"ielts_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ListeningController struct {
	ListeningService *service.ListeningService
}

func NewListeningController(listeningService *service.ListeningService) *ListeningController {
	return &ListeningController{ListeningService: listeningService}
}

// ListExercises godoc
// @Summary 听力练习列表
// @Tags 听力
// @Produce json
// @Security BearerAuth
// @Param difficulty query string false "难度" Enums(easy, medium, hard)
// @Param category query string false "类别" Enums(academic, general)
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/listening/exercises [get]
func (c *ListeningController) ListExercises(ctx *gin.Context) {
	page, limit := pagination(ctx)
	exercises, total, err := c.ListeningService.ListExercises(
		ctx.Query("difficulty"), ctx.Query("category"), page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: exercises, Total: total, Page: page, Limit: limit})
}

// GetExercise godoc
// @Summary 听力练习详情
// @Description 返回练习与全部题目，不含正确答案
// @Tags 听力
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Success 200 {object} util.Response{data=model.ListeningExercise}
// @Failure 404 {object} util.Response "练习不存在"
// @Router /api/listening/exercises/{id} [get]
func (c *ListeningController) GetExercise(ctx *gin.Context) {
	exercise, err := c.ListeningService.GetExercise(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, exercise)
}

// SubmitAnswers godoc
// @Summary 提交听力作答
// @Description 判分、保存作答并更新打卡与月度聚合
// @Tags 听力
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Param body body service.SubmitAnswersRequest true "作答内容"
// @Success 201 {object} util.Response{data=service.ObjectiveResult}
// @Failure 400 {object} util.Response "答案与题目不匹配"
// @Failure 404 {object} util.Response "练习不存在"
// @Router /api/listening/exercises/{id}/attempts [post]
func (c *ListeningController) SubmitAnswers(ctx *gin.Context) {
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

	result, err := c.ListeningService.SubmitAnswers(user.UserID, ctx.Param("id"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// GetAttempt godoc
// @Summary 听力作答详情
// @Tags 听力
// @Produce json
// @Security BearerAuth
// @Param attemptId path string true "作答ID"
// @Success 200 {object} util.Response{data=model.ListeningAttempt}
// @Failure 404 {object} util.Response "作答不存在"
// @Router /api/listening/attempts/{attemptId} [get]
func (c *ListeningController) GetAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.ListeningService.GetAttempt(user.UserID, ctx.Param("attemptId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}
