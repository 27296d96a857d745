package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	JobUC       domain.JobUsecase
	CompanyUC   domain.CompanyUsecase
	CandidateUC domain.CandidateUsecase
	ReferenceUC domain.ReferenceUsecase
	Tokens      *auth.TokenManager
	Storage     storage.ObjectStorage
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	registerCustomValidators()

	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global middlewares; CORS must run first
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(window)))

	v1 := r.Group("/v1")

	// Health check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints carry a strict per-IP limit
	authGroup := v1.Group("")
	authGroup.Use(middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window)))

	// Authenticated routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	// HR routes resolve the company behind the caller
	hr := protected.Group("")
	hr.Use(middleware.HRCredential(deps.AuthUC, deps.CompanyUC))

	// Manager routes additionally require the manager role
	manager := hr.Group("")
	manager.Use(middleware.RequireManager())

	// Candidate routes resolve the candidate profile
	candidate := protected.Group("")
	candidate.Use(middleware.CandidateCredential(deps.AuthUC))

	// Uploads are throttled separately
	uploads := protected.Group("")
	uploads.Use(middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(window)))

	NewAuthHandler(authGroup, protected, deps.AuthUC, deps.Config)
	NewPublicHandler(v1, deps.JobUC, deps.CompanyUC, deps.ReferenceUC)
	NewJobHandler(hr, deps.JobUC, deps.CandidateUC)
	NewCompanyHandler(hr, manager, deps.CompanyUC)
	NewCandidateHandler(candidate, deps.CandidateUC, deps.Storage)
	NewUploadHandler(uploads, deps.Storage)

	return r
}
