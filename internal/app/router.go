package app

import (
	"ailearn_backend/docs"
	"ailearn_backend/internal/config"
	"ailearn_backend/internal/middleware"
	"ailearn_backend/internal/model"
	"ailearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// Public routes.
	api := router.Group("/api")
	{
		api.POST("/auth/register", c.auth.Register)
		api.POST("/auth/login", c.auth.Login)

		api.GET("/courses", c.content.ListCourses)
		api.GET("/courses/:courseId", c.content.GetCourse)
		api.GET("/courses/:courseId/modules", c.content.ListModules)
		api.GET("/modules/:moduleId/lessons", c.content.ListLessons)
		api.GET("/lessons/:lessonId", c.content.GetLesson)
		api.GET("/quizzes/:subjectId/:moduleId", c.content.GetQuiz)

		api.GET("/projects", c.project.ListPublic)
		api.GET("/projects/:projectId", c.project.Get)
		api.GET("/leaderboard", c.leaderboard.Get)
	}

	// Authenticated routes.
	auth := router.Group("/api")
	auth.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		auth.GET("/auth/me", c.auth.Me)
		auth.PUT("/auth/me", c.auth.UpdateProfile)

		auth.POST("/progress/lessons", c.progress.SaveLessonProgress)
		auth.GET("/progress/courses/:courseId", c.progress.GetCourseProgress)
		auth.GET("/progress/courses/:courseId/modules/:moduleId", c.progress.GetModuleProgress)
		auth.GET("/progress/courses/:courseId/modules/:moduleId/lessons/:lessonId", c.progress.GetLessonCompletion)

		auth.POST("/activity/tick", c.activity.Tick)
		auth.GET("/activity/summary", c.activity.Summary)

		auth.GET("/dashboard/:courseId", c.dashboard.GetCourseDashboard)

		auth.POST("/projects", c.project.Create)
		auth.GET("/projects/mine", c.project.ListMine)
		auth.PUT("/projects/:projectId", c.project.Update)
		auth.DELETE("/projects/:projectId", c.project.Delete)
		auth.POST("/projects/:projectId/upvote", c.project.Upvote)
		auth.POST("/projects/:projectId/file", c.project.UploadFile)

		auth.GET("/leaderboard/me", c.leaderboard.MyRank)
	}

	// Admin routes: content management and the user console.
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/courses/:courseId/modules", c.content.CreateModule)
		admin.PUT("/modules/:moduleId", c.content.UpdateModule)
		admin.DELETE("/modules/:moduleId", c.content.DeleteModule)

		admin.POST("/modules/:moduleId/lessons", c.content.CreateLesson)
		admin.PUT("/lessons/:lessonId", c.content.UpdateLesson)
		admin.DELETE("/lessons/:lessonId", c.content.DeleteLesson)
		admin.POST("/lessons/:lessonId/video", c.content.UploadLessonVideo)

		admin.PUT("/quizzes/:subjectId/:moduleId", c.content.SaveQuiz)
		admin.DELETE("/quizzes/:subjectId/:moduleId", c.content.DeleteQuiz)

		admin.GET("/admin/users", c.admin.ListUsers)
		admin.PUT("/admin/users/:userId/disabled", c.admin.SetDisabled)
		admin.PUT("/admin/users/:userId/role", c.admin.SetRole)
		admin.GET("/admin/stats", c.admin.GetStats)
	}
}
