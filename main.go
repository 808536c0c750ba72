package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dailydiet/dailydiet/handlers"
	"github.com/dailydiet/dailydiet/internal/config"
	"github.com/dailydiet/dailydiet/internal/database"
	"github.com/dailydiet/dailydiet/internal/diet"
	"github.com/dailydiet/dailydiet/internal/users"
	"github.com/dailydiet/dailydiet/pkg/logger"
	"github.com/dailydiet/dailydiet/pkg/metrics"
	"github.com/dailydiet/dailydiet/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Cookie")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Optional global rate limiter (per-user when resolved, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// Connect to PostgreSQL and run migrations
	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()
	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}

	usersSvc := users.NewService(users.NewPostgresRepository(db))
	dietSvc := diet.NewService(diet.NewPostgresRepository(db))

	// readiness endpoint — return 200 only when the store is reachable
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{"database": true}
		if err := db.PingContext(c.Request.Context()); err != nil {
			deps["database"] = false
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
	})

	// Register user and diet handlers; every /diet route passes the
	// identity resolver before touching the store
	rg := r.Group("/")
	handlers.NewUsersHandler(cfg, usersSvc).Register(rg)
	handlers.NewDietHandler(dietSvc, middleware.CheckUser(cfg.Session.CookieName, usersSvc)).Register(rg)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting daily diet service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
