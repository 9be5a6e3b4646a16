package v1

import (
	"net/http"

	"inboxops-contact-api/internal/delivery/http/middleware"
	"inboxops-contact-api/internal/delivery/http/response"
	"inboxops-contact-api/internal/domain"
	"inboxops-contact-api/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	// Non-POST methods on /api/contact get a 405 instead of a 404
	r.HandleMethodNotAllowed = true

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.NoMethod(middleware.MethodNotAllowed())
	r.NoRoute(middleware.NotFound())

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	api := r.Group("/api")
	NewContactHandler(api, deps.ContactUC) // Contact form (no auth required)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
