package app

import (
	"wisely_backend/docs"
	"wisely_backend/internal/config"
	"wisely_backend/internal/identity"
	"wisely_backend/internal/middleware"
	"wisely_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, provider identity.Provider, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.POST("/login", c.auth.Login)
		public.GET("/logout", c.auth.Logout)

		public.GET("/colleges", c.college.List)
		public.POST("/colleges/search", c.college.Search)
		public.GET("/colleges/:id", c.college.GetByID)

		public.GET("/teachers", c.teacher.List)
		public.GET("/teachers/:id", c.teacher.GetByID)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(s.session, provider, cfg.Session.CookieName))
	{
		authGroup.GET("/auth/user", c.auth.GetAuthUser)
		authGroup.POST("/auth/user/avatar", c.auth.UploadAvatar)

		authGroup.POST("/tests/generate", c.test.Generate)
		authGroup.POST("/tests", c.test.Submit)
		authGroup.GET("/tests/history", c.test.History)

		authGroup.POST("/bookings", c.booking.Create)
		authGroup.GET("/bookings", c.booking.List)
	}
}
