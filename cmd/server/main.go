package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ai-tejas-firodiya/Jain-Munis/config"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/api/handler"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/api/router"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/job"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/model"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/service"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/database"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/jwt"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/lock"
	applogger "github.com/ai-tejas-firodiya/Jain-Munis/pkg/logger"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/mail"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/redis"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/validation"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ./config.yaml if present)")
	flag.Parse()

	// 1. config; .env only fills variables that are not already set
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, atom, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("timezone", cfg.App.Timezone),
		zap.String("log_level", cfg.Log.Level),
	)

	if err := config.Watch(*configPath, logger, func(next *config.Config) {
		level, err := applogger.ParseLevel(next.Log.Level)
		if err != nil {
			logger.Warn("ignoring log level change", zap.Error(err))
			return
		}
		atom.SetLevel(level)
	}); err != nil {
		logger.Warn("config hot reload unavailable", zap.Error(err))
	}

	// 3. database
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := database.Migrate(db, cfg.Database.Driver, model.All(), logger); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// 4. redis is optional; without it tokens cannot be revoked and locks are
	// per process
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, continuing without it", zap.Error(err))
			rdb = nil
		}
	}

	// 5. services
	if err := validation.Register(); err != nil {
		logger.Fatal("failed to register validators", zap.Error(err))
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)

	deps := service.Deps{
		Config: cfg,
		Repo:   repo,
		JWT:    jwtMgr,
		Locker: lock.New(rdb, cfg.App.ScheduleLockTTL, cfg.App.ScheduleLockWait, logger),
		Logger: logger,
	}
	if rdb != nil {
		deps.Blacklist = rdb
	}
	svc := service.NewService(deps)

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	created, err := svc.AdminUser.EnsureSuperAdmin(bootCtx, &cfg.Bootstrap)
	bootCancel()
	if err != nil {
		logger.Fatal("failed to bootstrap super admin", zap.Error(err))
	}
	if created {
		logger.Warn("default super admin created, change its password",
			zap.String("username", cfg.Bootstrap.AdminUsername))
	}

	// 6. background jobs
	scheduler := job.NewScheduler(cfg.App.Location(), logger)
	if cfg.Digest.Enabled {
		mailer, err := mail.New(&cfg.Mail, logger)
		if err != nil {
			logger.Fatal("failed to configure mail", zap.Error(err))
		}
		digest := job.NewDigestJob(repo, mailer, svc.Clock, cfg.Digest.DaysAhead, logger)
		if err := scheduler.Register("upcoming_digest", cfg.Digest.Cron, 5*time.Minute, digest.Run); err != nil {
			logger.Fatal("invalid digest cron spec", zap.String("cron", cfg.Digest.Cron), zap.Error(err))
		}
	}
	scheduler.Start()

	// 7. http
	gin.SetMode(gin.ReleaseMode)
	checks := map[string]handler.HealthCheck{
		"database": repo.Ping,
	}
	if rdb != nil {
		checks["redis"] = rdb.Ping
	}
	h := handler.NewHandler(svc, checks)
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// 8. graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
	scheduler.Stop(ctx)

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("stopped")
}
