package controller

import (
	"errors"
	"strconv"

	"ielts_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleServiceError 按错误类别映射 HTTP 状态码
func handleServiceError(ctx *gin.Context, err error) {
	var ve *util.ValidationError
	switch {
	case errors.As(err, &ve):
		util.BadRequest(ctx, ve.Error())
	case errors.Is(err, util.ErrExerciseNotFound),
		errors.Is(err, util.ErrTaskNotFound),
		errors.Is(err, util.ErrAttemptNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// pagination 解析分页参数，缺省 page=1 limit=20，limit 上限 100
func pagination(ctx *gin.Context) (int, int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
