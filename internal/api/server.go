package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vietanh2810/course-portal-api/docs"
	v1 "github.com/vietanh2810/course-portal-api/internal/api/handler/v1"
	"github.com/vietanh2810/course-portal-api/internal/api/middleware"
	"github.com/vietanh2810/course-portal-api/internal/config"
	"github.com/vietanh2810/course-portal-api/internal/repository"
	"github.com/vietanh2810/course-portal-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Feed   *v1.FeedHub
}

// NewServer wires handlers over storage. The caller runs s.Feed.Run.
func NewServer(conf *config.AppConfig, storage repository.Storage) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		Feed:   v1.NewFeedHub(conf.API.AllowedOrigins()),
	}

	s.MountMiddlewares()

	catalogHandler := v1.NewCatalogHandler(service.NewCatalogService(storage))
	registrationHandler := v1.NewRegistrationHandler(service.NewRegistrationService(storage, s.Feed))
	authHandler := v1.NewAuthHandler(conf.API, conf.Admin, service.NewAuthService(storage))
	s.MountHandlers(catalogHandler, registrationHandler, authHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ZapLogger())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedOrigins()))
}

func (s *Server) MountHandlers(catalog *v1.CatalogHandler, registrations *v1.RegistrationHandler, auth *v1.AuthHandler) {
	const basePath = "/api"

	admin := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, s.Config.Admin.EnforceAPI).VerifyJWT()
	limit := middleware.NewRateLimiter(s.Config.RateLimit.Requests, s.Config.RateLimit.Window).Limit()

	public := s.Router.Group(basePath)
	{
		public.GET("/courses", catalog.HandleGetCourses)
		public.GET("/courses/:courseID", catalog.HandleGetCourse)
		public.GET("/tours", catalog.HandleGetTours)
		public.GET("/tours/:tourID", catalog.HandleGetTour)

		public.POST("/course-registrations", limit, registrations.HandleCreateCourseRegistration)
		public.POST("/tour-registrations", limit, registrations.HandleCreateTourRegistration)

		public.POST("/admin/login", limit, auth.HandleLogin)
	}

	protected := s.Router.Group(basePath, admin)
	{
		protected.POST("/courses", catalog.HandleCreateCourse)
		protected.PATCH("/courses/:courseID", catalog.HandleUpdateCourse)
		protected.DELETE("/courses/:courseID", catalog.HandleDeleteCourse)

		protected.GET("/course-registrations", registrations.HandleGetCourseRegistrations)
		protected.GET("/course-registrations/:registrationID", registrations.HandleGetCourseRegistration)
		protected.PATCH("/course-registrations/:registrationID/status", registrations.HandleUpdateCourseRegistrationStatus)
		protected.DELETE("/course-registrations/:registrationID", registrations.HandleDeleteCourseRegistration)

		protected.GET("/tour-registrations", registrations.HandleGetTourRegistrations)
		protected.GET("/tour-registrations/:registrationID", registrations.HandleGetTourRegistration)
		protected.PATCH("/tour-registrations/:registrationID/status", registrations.HandleUpdateTourRegistrationStatus)
		protected.DELETE("/tour-registrations/:registrationID", registrations.HandleDeleteTourRegistration)

		protected.GET("/admin/course-registrations", registrations.HandleGetCourseRegistrationViews)
		protected.GET("/admin/stats", registrations.HandleGetStats)
		protected.GET("/admin/feed", s.Feed.HandleFeed)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Course portal API"
	docs.SwaggerInfo.Description = "Course catalog, guided tours and their registrations."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
