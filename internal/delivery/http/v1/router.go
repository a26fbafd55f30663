package v1

import (
	"net/http"
	"time"

	"skillsync-backend/config"
	"skillsync-backend/internal/delivery/http/middleware"
	"skillsync-backend/internal/delivery/http/response"
	"skillsync-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ResumeUC domain.ResumeUsecase
	CareerUC domain.CareerUsecase
	Github   GithubFetcher
	Leetcode LeetcodeFetcher
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Upload endpoints carry a tighter per-IP limit than the rest of the API
	upload := v1.Group("")
	upload.Use(middleware.RateLimitMiddleware(
		middleware.UploadRateLimitConfig(deps.Config.RateLimitUploadThreshold, window)))

	NewResumeHandler(v1, upload, deps.ResumeUC, deps.Config.UploadDir)
	NewCareerHandler(v1, deps.CareerUC)
	NewDashboardHandler(v1, deps.Github, deps.Leetcode)

	return r
}
