package controller

import (
	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/service"
	"ielts_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController 管理员题库维护接口
type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// CreateListeningExercise godoc
// @Summary 创建听力练习
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.ListeningExercise true "练习内容"
// @Success 201 {object} util.Response{data=model.ListeningExercise}
// @Failure 400 {object} util.Response "练习不含题目"
// @Router /api/admin/listening/exercises [post]
func (c *ContentController) CreateListeningExercise(ctx *gin.Context) {
	var exercise model.ListeningExercise
	if err := ctx.ShouldBindJSON(&exercise); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ContentService.CreateListeningExercise(&exercise); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, exercise)
}

// UpdateListeningExercise godoc
// @Summary 更新听力练习
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Param body body model.ListeningExercise true "练习内容"
// @Success 200 {object} util.Response{data=model.ListeningExercise}
// @Router /api/admin/listening/exercises/{id} [put]
func (c *ContentController) UpdateListeningExercise(ctx *gin.Context) {
	var exercise model.ListeningExercise
	if err := ctx.ShouldBindJSON(&exercise); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	exercise.ID = ctx.Param("id")

	if err := c.ContentService.UpdateListeningExercise(&exercise); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, exercise)
}

// DeleteListeningExercise godoc
// @Summary 删除听力练习
// @Tags 题库管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Success 200 {object} util.Response
// @Router /api/admin/listening/exercises/{id} [delete]
func (c *ContentController) DeleteListeningExercise(ctx *gin.Context) {
	if err := c.ContentService.DeleteListeningExercise(ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateReadingExercise godoc
// @Summary 创建阅读练习
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.ReadingExercise true "练习内容"
// @Success 201 {object} util.Response{data=model.ReadingExercise}
// @Router /api/admin/reading/exercises [post]
func (c *ContentController) CreateReadingExercise(ctx *gin.Context) {
	var exercise model.ReadingExercise
	if err := ctx.ShouldBindJSON(&exercise); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ContentService.CreateReadingExercise(&exercise); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, exercise)
}

// UpdateReadingExercise godoc
// @Summary 更新阅读练习
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Param body body model.ReadingExercise true "练习内容"
// @Success 200 {object} util.Response{data=model.ReadingExercise}
// @Router /api/admin/reading/exercises/{id} [put]
func (c *ContentController) UpdateReadingExercise(ctx *gin.Context) {
	var exercise model.ReadingExercise
	if err := ctx.ShouldBindJSON(&exercise); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	exercise.ID = ctx.Param("id")

	if err := c.ContentService.UpdateReadingExercise(&exercise); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, exercise)
}

// DeleteReadingExercise godoc
// @Summary 删除阅读练习
// @Tags 题库管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Success 200 {object} util.Response
// @Router /api/admin/reading/exercises/{id} [delete]
func (c *ContentController) DeleteReadingExercise(ctx *gin.Context) {
	if err := c.ContentService.DeleteReadingExercise(ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateWritingTask godoc
// @Summary 创建写作任务
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.WritingTask true "任务内容"
// @Success 201 {object} util.Response{data=model.WritingTask}
// @Failure 400 {object} util.Response "任务类型不合法"
// @Router /api/admin/writing/tasks [post]
func (c *ContentController) CreateWritingTask(ctx *gin.Context) {
	var task model.WritingTask
	if err := ctx.ShouldBindJSON(&task); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ContentService.CreateWritingTask(&task); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, task)
}

// UpdateWritingTask godoc
// @Summary 更新写作任务
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "任务ID"
// @Param body body model.WritingTask true "任务内容"
// @Success 200 {object} util.Response{data=model.WritingTask}
// @Router /api/admin/writing/tasks/{id} [put]
func (c *ContentController) UpdateWritingTask(ctx *gin.Context) {
	var task model.WritingTask
	if err := ctx.ShouldBindJSON(&task); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	task.ID = ctx.Param("id")

	if err := c.ContentService.UpdateWritingTask(&task); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, task)
}

// DeleteWritingTask godoc
// @Summary 删除写作任务
// @Tags 题库管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "任务ID"
// @Success 200 {object} util.Response
// @Router /api/admin/writing/tasks/{id} [delete]
func (c *ContentController) DeleteWritingTask(ctx *gin.Context) {
	if err := c.ContentService.DeleteWritingTask(ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateSpeakingExercise godoc
// @Summary 创建口语练习
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.SpeakingExercise true "练习内容"
// @Success 201 {object} util.Response{data=model.SpeakingExercise}
// @Failure 400 {object} util.Response "口语部分不合法"
// @Router /api/admin/speaking/exercises [post]
func (c *ContentController) CreateSpeakingExercise(ctx *gin.Context) {
	var exercise model.SpeakingExercise
	if err := ctx.ShouldBindJSON(&exercise); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ContentService.CreateSpeakingExercise(&exercise); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, exercise)
}

// UpdateSpeakingExercise godoc
// @Summary 更新口语练习
// @Tags 题库管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Param body body model.SpeakingExercise true "练习内容"
// @Success 200 {object} util.Response{data=model.SpeakingExercise}
// @Router /api/admin/speaking/exercises/{id} [put]
func (c *ContentController) UpdateSpeakingExercise(ctx *gin.Context) {
	var exercise model.SpeakingExercise
	if err := ctx.ShouldBindJSON(&exercise); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	exercise.ID = ctx.Param("id")

	if err := c.ContentService.UpdateSpeakingExercise(&exercise); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, exercise)
}

// DeleteSpeakingExercise godoc
// @Summary 删除口语练习
// @Tags 题库管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "练习ID"
// @Success 200 {object} util.Response
// @Router /api/admin/speaking/exercises/{id} [delete]
func (c *ContentController) DeleteSpeakingExercise(ctx *gin.Context) {
	if err := c.ContentService.DeleteSpeakingExercise(ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
