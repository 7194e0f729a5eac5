package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"jobbox/internal/app"
	"jobbox/internal/config"
	apphttp "jobbox/internal/http"
	"jobbox/internal/http/handlers"
	"jobbox/internal/http/metrics"
	httpmw "jobbox/internal/http/middleware"
	"jobbox/internal/http/response"
	"jobbox/internal/integration/jobboard"
	"jobbox/internal/observability"
	"jobbox/internal/session"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	defer func() { _ = logger.Sync() }()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	}

	var store session.Store
	if cfg.SessionStore == config.StoreRedis {
		store = session.NewRedisStore(redisClient, []byte(cfg.SessionSecret), cfg.SessionTTL)
	} else {
		store = session.NewCookieStore([]byte(cfg.SessionSecret), int(cfg.SessionTTL.Seconds()))
	}
	sessions := session.NewManager(store)

	apiClient := jobboard.NewClient(cfg.JobBoardAPIURL, &http.Client{Timeout: cfg.UpstreamTimeout})

	authService := app.NewAuthService(apiClient, logger)
	profileService := app.NewProfileService(apiClient)
	jobService := app.NewJobService(apiClient)
	applicationService := app.NewApplicationService(apiClient)

	var limiter httpmw.Limiter
	if redisClient != nil {
		limiter = httpmw.NewRedisLimiter(redisClient)
	} else {
		limiter = httpmw.NewMemoryLimiter()
	}

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:      handlers.NewAuthHandler(authService, sessions, limiter),
		ProfileHandler:   handlers.NewProfileHandler(profileService),
		JobHandler:       handlers.NewJobHandler(jobService, sessions, limiter),
		ApplicantHandler: handlers.NewApplicantHandler(applicationService),
		MetricsHandler:   handlers.NewMetricsHandler(collector),
		Gate:             httpmw.NewGate(sessions),
		Metrics:          collector,
		Logger:           logger,
		RequestTimeout:   cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("web front-end started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
