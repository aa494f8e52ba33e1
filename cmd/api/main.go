package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/swagger/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Tony-ArtZ/git-peek/internal/adapters/handlers"
	"github.com/Tony-ArtZ/git-peek/internal/adapters/middleware"
	"github.com/Tony-ArtZ/git-peek/internal/adapters/repositories"
	"github.com/Tony-ArtZ/git-peek/internal/config"
	"github.com/Tony-ArtZ/git-peek/internal/core/auth"
	"github.com/Tony-ArtZ/git-peek/internal/core/github"
	"github.com/Tony-ArtZ/git-peek/internal/core/services"

	_ "github.com/Tony-ArtZ/git-peek/docs"
)

// @title           GitPeek API
// @version         1.0.0
// @description     API for sharing read-only views of private GitHub repositories
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /

// @schemes   http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	startTime := time.Now()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal(err)
	}
	opt.PoolSize = 50
	opt.MinIdleConns = 20
	opt.MaxRetries = 2
	opt.PoolTimeout = 2 * time.Second
	opt.DialTimeout = 2 * time.Second
	opt.ReadTimeout = 1 * time.Second
	opt.WriteTimeout = 1 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute
	opt.ConnMaxLifetime = 30 * time.Minute
	rdb := redis.NewClient(opt)

	store := repositories.NewPostgresRepo(db)
	cacheRepo := repositories.NewRedisRepo(rdb)
	ghClient := github.NewClient()

	snapshotService := services.NewSnapshotService(store, store, ghClient)
	publishService := services.NewPublishService(store, store, ghClient)
	viewService := services.NewViewService(store, cacheRepo)

	httpHandler := handlers.NewHTTPHandler(snapshotService, publishService, viewService)

	sessionValidator := auth.NewSessionValidator(db, cacheRepo)
	authMiddleware := middleware.NewAuthMiddleware(sessionValidator)

	app := fiber.New(fiber.Config{
		ServerHeader:      "GitPeek",
		AppName:           "GitPeek API",
		DisableKeepalive:  false,
		ReduceMemoryUsage: true,
	})
	app.Use(logger.New())

	origins := []string{cfg.AllowedOrigin}
	if cfg.AllowedOrigin == "" {
		origins = []string{"*"}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Cookie"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "GitPeek API",
			"version":   "1.0.0",
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"uptime":    time.Since(startTime).String(),
			"swagger":   fmt.Sprintf("%s/swagger", cfg.BaseURL),
		})
	})

	app.Get("/api/image", httpHandler.GetImage)
	app.Get("/api/repo/:id", httpHandler.GetRepoView)
	app.Get("/api/repo/:id/stats", httpHandler.GetViewStats)
	app.Get("/api/repo/:id/contents/*", httpHandler.GetDirectory)
	app.Get("/api/repo/:id/file/*", httpHandler.GetFile)

	api := app.Group("/api", authMiddleware.RequireAuth)
	api.Get("/repos", httpHandler.ListRepos)
	api.Get("/published", httpHandler.ListPublished)
	api.Post("/publish", httpHandler.PublishRepo)
	api.Delete("/publish/:id", httpHandler.DeletePublished)

	log.Fatal(app.Listen(":" + cfg.Port))
}
