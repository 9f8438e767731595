package app

import (
	"courses_platform_backend/docs"
	"courses_platform_backend/internal/config"
	"courses_platform_backend/internal/middleware"
	"courses_platform_backend/internal/model"
	"courses_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// Authenticated routes
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/users/me", c.auth.Me)
		api.GET("/users", middleware.RoleMiddleware(model.Teacher), c.user.List)
		api.GET("/users/:id", middleware.RoleMiddleware(model.Teacher), c.user.Get)
		api.PATCH("/users/:id", c.user.Update)
		api.DELETE("/users/:id", middleware.RoleMiddleware(model.Admin), c.user.Delete)

		api.GET("/courses", c.course.List)
		api.POST("/courses", middleware.RoleMiddleware(model.Teacher), c.course.Create)
		api.GET("/courses/:id", c.course.Get)
		api.PATCH("/courses/:id", middleware.RoleMiddleware(model.Teacher), c.course.Update)
		api.DELETE("/courses/:id", middleware.RoleMiddleware(model.Teacher), c.course.Delete)
		api.GET("/courses/:id/materials", c.course.Materials)

		api.GET("/materials", c.material.List)
		api.POST("/materials", middleware.RoleMiddleware(model.Teacher), c.material.Create)
		api.GET("/materials/:id", c.material.Get)
		api.PATCH("/materials/:id", middleware.RoleMiddleware(model.Teacher), c.material.Update)
		api.DELETE("/materials/:id", middleware.RoleMiddleware(model.Teacher), c.material.Delete)
		api.POST("/materials/:id/attachment", middleware.RoleMiddleware(model.Teacher), c.material.UploadAttachment)

		api.POST("/activities", c.activity.Create)
		api.GET("/activities", c.activity.List)

		api.GET("/search", c.search.Search)

		// Analytics
		api.GET("/analytics/user/:id/progress", c.analytics.UserProgress)
		api.GET("/analytics/user/:id/average-test-score", c.analytics.UserAverageTestScore)
		api.GET("/analytics/course/:id/statistics", middleware.RoleMiddleware(model.Teacher), c.analytics.CourseStatistics)
		api.GET("/analytics/course/:id/daily-completions", middleware.RoleMiddleware(model.Teacher), c.analytics.DailyCompletions)
		api.GET("/analytics/course/:id/top-materials", middleware.RoleMiddleware(model.Teacher), c.analytics.TopMaterials)
		api.GET("/analytics/course/:id/average-test-score", middleware.RoleMiddleware(model.Teacher), c.analytics.CourseAverageTestScore)

		// ETL
		api.GET("/etl/activities/export", middleware.RoleMiddleware(model.Admin), c.etl.ExportCSV)
		api.GET("/etl/activities/export.json", middleware.RoleMiddleware(model.Admin), c.etl.ExportJSON)
	}
}
