package controller

import (
	"strconv"

	"ielts_prep_backend/internal/service"
	"ielts_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WritingController struct {
	WritingService *service.WritingService
}

func NewWritingController(writingService *service.WritingService) *WritingController {
	return &WritingController{WritingService: writingService}
}

// ListTasks godoc
// @Summary 写作任务列表
// @Tags 写作
// @Produce json
// @Security BearerAuth
// @Param taskType query int false "任务类型 1 或 2"
// @Param difficulty query string false "难度" Enums(easy, medium, hard)
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/writing/tasks [get]
func (c *WritingController) ListTasks(ctx *gin.Context) {
	page, limit := pagination(ctx)
	taskType, _ := strconv.Atoi(ctx.Query("taskType"))

	tasks, total, err := c.WritingService.ListTasks(taskType, ctx.Query("difficulty"), page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: tasks, Total: total, Page: page, Limit: limit})
}

// GetTask godoc
// @Summary 写作任务详情
// @Tags 写作
// @Produce json
// @Security BearerAuth
// @Param id path string true "任务ID"
// @Success 200 {object} util.Response{data=model.WritingTask}
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/writing/tasks/{id} [get]
func (c *WritingController) GetTask(ctx *gin.Context) {
	task, err := c.WritingService.GetTask(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, task)
}

// SubmitEssay godoc
// @Summary 提交作文
// @Description 保存作文并返回 AI 评阅结果
// @Tags 写作
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "任务ID"
// @Param body body service.SubmitEssayRequest true "作文内容"
// @Success 201 {object} util.Response{data=service.EssayResult}
// @Failure 400 {object} util.Response "作文内容为空"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/writing/tasks/{id}/attempts [post]
func (c *WritingController) SubmitEssay(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitEssayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.WritingService.SubmitEssay(user.UserID, ctx.Param("id"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// GetAttempt godoc
// @Summary 写作提交详情
// @Tags 写作
// @Produce json
// @Security BearerAuth
// @Param attemptId path string true "提交ID"
// @Success 200 {object} util.Response{data=model.WritingAttempt}
// @Failure 404 {object} util.Response "提交不存在"
// @Router /api/writing/attempts/{attemptId} [get]
func (c *WritingController) GetAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.WritingService.GetAttempt(user.UserID, ctx.Param("attemptId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}
