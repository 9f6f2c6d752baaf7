package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/celebrateug/media-api/configs"
	"github.com/celebrateug/media-api/internal/api/handlers"
	"github.com/celebrateug/media-api/internal/api/middleware"
	job "github.com/celebrateug/media-api/internal/jobs"
	"github.com/celebrateug/media-api/internal/queue"
	"github.com/celebrateug/media-api/internal/realtime"
	"github.com/celebrateug/media-api/internal/repository"
	"github.com/celebrateug/media-api/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return cfg.FrontendURL == "" || origin == cfg.FrontendURL
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	contentRepo := repository.NewContentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)
	videoUploadRepo := repository.NewVideoUploadRepository(db)

	b2Service := service.NewB2Service(*cfg)
	muxService := service.NewMuxService(*cfg)
	uploadService := service.NewUploadService(*cfg, b2Service, muxService, videoUploadRepo)
	contentService := service.NewContentService(*cfg, contentRepo, videoUploadRepo, muxService)
	interactionService := service.NewInteractionService(db, likeRepo, followRepo, contentRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	upload := handlers.NewUploadHandler(uploadService)
	app.Post("/functions/upload", upload.UploadToB2)
	app.Post("/functions/process", upload.ProcessNewVideo)

	content := handlers.NewContentHandler(contentService, client)
	app.Get("/api/content", content.ListContent)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	interaction := handlers.NewInteractionHandler(interactionService)
	api.Get("/interactions", interaction.ListInteractions)
	api.Post("/likes/toggle", interaction.ToggleLike)
	api.Post("/follows/toggle", interaction.ToggleFollow)

	api.Post("/content/remove", content.RemoveContent)
	api.Post("/content/view", content.TrackView)
	api.Post("/content/duration", content.RefreshDuration)

	// realtime row-change notifications
	hub := realtime.NewHub()
	listener, err := realtime.NewListener(cfg.PostgresURI, hub)
	if err != nil {
		log.Fatalf("Failed to start realtime listener: %v", err)
	}
	go listener.Run()
	defer listener.Close()

	// cron jobs
	statusJob := job.NewAssetStatusJob(videoUploadRepo, muxService)

	//queue
	queueW := queue.NewQueue(contentService)

	c := cron.New()
	c.AddFunc("@every 00h05m00s", statusJob.SweepStatuses)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeDurationBackfill, queueW.HandleDurationBackfillTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
