package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"candidate-service/config"
	"candidate-service/internal/delivery/http/middleware"
	v1 "candidate-service/internal/delivery/http/v1"
	"candidate-service/internal/repository/postgres"
	"candidate-service/internal/usecase"
	"candidate-service/pkg/audit"
	"candidate-service/pkg/database"
	"candidate-service/pkg/logger"
	"candidate-service/pkg/metrics"
	redispkg "candidate-service/pkg/redis"
	"candidate-service/pkg/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// @title           Candidate Service API
// @version         1.0
// @description     Candidate and skill records.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting candidate service", "port", cfg.Port, "db_driver", cfg.DBDriver)

	if err := run(cfg); err != nil {
		logger.Log.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Server exiting")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// 4. Setup Database
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	store := database.Instrument(db, m)

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(store)
	skillRepo := postgres.NewSkillRepository(store)

	// 6. Setup UseCases
	validate := validation.New()
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, candidateRepo, validate)
	exportUC := usecase.NewExportUsecase(candidateRepo, skillRepo)
	healthUC := usecase.NewHealthUsecase(db)

	// 7. Audit trail
	var auditLog *audit.Logger
	if cfg.AuditLogEnabled {
		auditLog = audit.New("candidate-service", cfg.Env)
		defer func() { _ = auditLog.Sync() }()
	}

	// 8. Rate limiting store
	redisClient := connectRedis(ctx, cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}
	rlCfg := middleware.DefaultRateLimitConfig(cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindowSeconds)*time.Second)
	rlCfg.Audit = auditLog
	limiter := middleware.NewRateLimiter(rlCfg, redisClient)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		SkillUC:     skillUC,
		ExportUC:    exportUC,
		HealthUC:    healthUC,
		Audit:       auditLog,
		RateLimiter: limiter,
		Metrics:     m,
		Gatherer:    reg,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return limiter.RunSweeper(gctx, time.Minute)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Server forced to shutdown", "error", err)
			return err
		}
		return nil
	})

	return g.Wait()
}

func openDatabase(ctx context.Context, cfg *config.Config) (database.DB, error) {
	pc := database.PoolConfig{MaxConns: int32(cfg.DBMaxConns), MinConns: int32(cfg.DBMinConns)}
	opts := database.Options{QueryTimeout: cfg.DBQueryTimeout}

	if cfg.DBDriver == "postgres" {
		return database.OpenSQL(ctx, "postgres", cfg.DBUrl, pc, opts)
	}

	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, pc)
	if err != nil {
		return nil, err
	}
	return database.NewPgxDB(pool, opts), nil
}

// connectRedis returns nil when Redis is not configured or unreachable; the
// limiter then counts in memory.
func connectRedis(ctx context.Context, cfg *config.Config) *goredis.Client {
	client, err := redispkg.Connect(ctx, redispkg.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	})
	switch {
	case errors.Is(err, redispkg.ErrNotConfigured):
		return nil
	case err != nil:
		logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		return nil
	}
	logger.Log.Info("Redis connected for rate limiting")
	return client
}
