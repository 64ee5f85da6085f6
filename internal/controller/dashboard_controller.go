package controller

import (
	"strconv"

	"ielts_prep_backend/internal/service"
	"ielts_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary 获取仪表盘数据
// @Description 各模块历史统计、打卡与最近作答记录
// @Tags 仪表盘
// @Produce json
// @Security BearerAuth
// @Param limit query int false "最近作答条数" default(10)
// @Success 200 {object} util.Response{data=service.DashboardResponse}
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	dashboard, err := c.DashboardService.GetDashboard(ctx.Request.Context(), user.UserID, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}
