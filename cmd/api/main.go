package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/GlobalTechServices01/shield-scheduler/internal/config"
	dbpkg "github.com/GlobalTechServices01/shield-scheduler/internal/db"
	"github.com/GlobalTechServices01/shield-scheduler/internal/middleware"
	"github.com/GlobalTechServices01/shield-scheduler/internal/routes"
	"github.com/GlobalTechServices01/shield-scheduler/internal/session"
)

func main() {

	cfg := config.Load()

	setupLogger(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)
	store := newSessionStore(cfg, db)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
}

// Sessão vai para o Redis quando configurado; sem Redis, a tabela
// sessions do próprio Postgres segura o vínculo token → admin.
func newSessionStore(cfg *config.Config, db *gorm.DB) session.Store {
	if cfg.RedisURL == "" {
		return session.NewGormStore(db)
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	return session.NewRedisStore(redis.NewClient(opt))
}
