package app

import (
	"ielts_prep_backend/internal/config"
	"ielts_prep_backend/internal/middleware"
	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
			auth.POST("/external", c.auth.LoginExternal)
		}
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		user := authGroup.Group("/user")
		{
			user.GET("/profile", c.user.GetProfile)
			user.PUT("/profile", c.user.UpdateProfile)
		}

		authGroup.GET("/dashboard", c.dashboard.GetDashboard)

		analytics := authGroup.Group("/analytics")
		{
			analytics.GET("/monthly", c.analytics.GetMonthly)
			analytics.GET("/yearly", c.analytics.GetYearly)
		}

		listening := authGroup.Group("/listening")
		{
			listening.GET("/exercises", c.listening.ListExercises)
			listening.GET("/exercises/:id", c.listening.GetExercise)
			listening.POST("/exercises/:id/attempts", c.listening.SubmitAnswers)
			listening.GET("/attempts/:attemptId", c.listening.GetAttempt)
		}

		reading := authGroup.Group("/reading")
		{
			reading.GET("/exercises", c.reading.ListExercises)
			reading.GET("/exercises/:id", c.reading.GetExercise)
			reading.POST("/exercises/:id/attempts", c.reading.SubmitAnswers)
			reading.GET("/attempts/:attemptId", c.reading.GetAttempt)
		}

		writing := authGroup.Group("/writing")
		{
			writing.GET("/tasks", c.writing.ListTasks)
			writing.GET("/tasks/:id", c.writing.GetTask)
			writing.POST("/tasks/:id/attempts", c.writing.SubmitEssay)
			writing.GET("/attempts/:attemptId", c.writing.GetAttempt)
		}

		speaking := authGroup.Group("/speaking")
		{
			speaking.GET("/exercises", c.speaking.ListExercises)
			speaking.GET("/exercises/:id", c.speaking.GetExercise)
			speaking.POST("/exercises/:id/attempts", c.speaking.SubmitResponse)
			speaking.GET("/attempts/:attemptId", c.speaking.GetAttempt)
		}
	}

	// 管理员题库维护
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/listening/exercises", c.content.CreateListeningExercise)
		admin.PUT("/listening/exercises/:id", c.content.UpdateListeningExercise)
		admin.DELETE("/listening/exercises/:id", c.content.DeleteListeningExercise)

		admin.POST("/reading/exercises", c.content.CreateReadingExercise)
		admin.PUT("/reading/exercises/:id", c.content.UpdateReadingExercise)
		admin.DELETE("/reading/exercises/:id", c.content.DeleteReadingExercise)

		admin.POST("/writing/tasks", c.content.CreateWritingTask)
		admin.PUT("/writing/tasks/:id", c.content.UpdateWritingTask)
		admin.DELETE("/writing/tasks/:id", c.content.DeleteWritingTask)

		admin.POST("/speaking/exercises", c.content.CreateSpeakingExercise)
		admin.PUT("/speaking/exercises/:id", c.content.UpdateSpeakingExercise)
		admin.DELETE("/speaking/exercises/:id", c.content.DeleteSpeakingExercise)
	}
}
