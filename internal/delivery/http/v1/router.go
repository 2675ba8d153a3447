package v1

import (
	"net/http"

	_ "candidate-service/docs" // registers the swagger spec
	"candidate-service/internal/delivery/http/middleware"
	"candidate-service/internal/delivery/http/response"
	"candidate-service/internal/domain"
	"candidate-service/internal/usecase"
	"candidate-service/pkg/audit"
	"candidate-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	SkillUC     domain.SkillUsecase
	ExportUC    domain.ExportUsecase // nil hides the export route
	HealthUC    usecase.HealthUsecase
	Audit       *audit.Logger           // nil disables the audit trail
	RateLimiter *middleware.RateLimiter // nil disables limiting
	Metrics     *metrics.Metrics        // nil disables HTTP metrics
	Gatherer    prometheus.Gatherer     // nil hides /metrics
	CORSOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.CORSOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.ErrorHandler())

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status, ok := deps.HealthUC.Check(c.Request.Context())
		if !ok {
			response.Error(c, http.StatusServiceUnavailable, "Database unreachable", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Mutating routes and exports share the rate limit
	limited := v1.Group("")
	if deps.RateLimiter != nil {
		limited.Use(deps.RateLimiter.Middleware())
	}

	NewCandidateHandler(v1, limited, deps.CandidateUC, deps.Audit)
	NewSkillHandler(v1, limited, deps.SkillUC, deps.Audit)
	if deps.ExportUC != nil {
		NewExportHandler(limited, deps.ExportUC, deps.Audit)
	}

	return r
}
