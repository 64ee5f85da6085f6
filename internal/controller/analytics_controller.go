package controller

import (
	"strconv"
	"time"

	"ielts_prep_backend/internal/service"
	"ielts_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// GetMonthly godoc
// @Summary 获取月度学习数据
// @Description 某月的练习数、学习时长与各模块平均分，缺省为当前月份
// @Tags 学习分析
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份 1-12"
// @Param year query int false "年份"
// @Success 200 {object} util.Response{data=model.MonthlyAnalytics}
// @Failure 400 {object} util.Response "月份或年份不合法"
// @Router /api/analytics/monthly [get]
func (c *AnalyticsController) GetMonthly(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	now := time.Now()
	month, err := strconv.Atoi(ctx.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		util.BadRequest(ctx, "month 必须在 1-12 之间")
		return
	}
	year, err := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 2000 || year > 2100 {
		util.BadRequest(ctx, "year 不合法")
		return
	}

	analytics, err := c.AnalyticsService.GetMonthlyAnalytics(user.UserID, month, year)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, analytics)
}

// GetYearly godoc
// @Summary 获取全年各月学习数据
// @Tags 学习分析
// @Produce json
// @Security BearerAuth
// @Param year query int false "年份"
// @Success 200 {object} util.Response
// @Router /api/analytics/yearly [get]
func (c *AnalyticsController) GetYearly(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	year, err := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < 2000 || year > 2100 {
		util.BadRequest(ctx, "year 不合法")
		return
	}

	records, err := c.AnalyticsService.GetYearlyAnalytics(user.UserID, year)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, records)
}
