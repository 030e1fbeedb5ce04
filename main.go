package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tictactoe-scoreboard/handlers"
	"tictactoe-scoreboard/middleware"
	"tictactoe-scoreboard/services"
	"tictactoe-scoreboard/utils"
	"tictactoe-scoreboard/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	scoreService := services.NewScoreService(db)
	if err := scoreService.Migrate(ctx); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if cfg.SnapshotInterval > 0 {
		uploader, err := snapshotUploader(ctx, cfg)
		if err != nil {
			log.Fatal("failed to initialize snapshot store:", err)
		}
		snapshotWorker := workers.NewSnapshotWorker(uploader, cfg.SnapshotLabel)
		sched, err := scoreService.StartSnapshotScheduler(ctx, cfg.SnapshotInterval, cfg.StoreTimeout, snapshotWorker.Run)
		if err != nil {
			log.Fatal("failed to start snapshot scheduler:", err)
		}
		defer func() {
			if err := sched.Shutdown(); err != nil {
				log.Printf("Scheduler shutdown error: %v", err)
			}
		}()
		log.Printf("✅ Scoreboard snapshots every %s", cfg.SnapshotInterval)
	}

	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		MaxAge:       86400,
	}))

	handlers.SetupScoreboardRoutes(app, scoreService, cfg.StoreTimeout)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", cfg.Port)
	log.Printf("✅ CORS configured for origins: %s", cfg.AllowedOrigins)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func snapshotUploader(ctx context.Context, cfg utils.Config) (workers.ObjectUploader, error) {
	if utils.R2Configured() {
		return utils.NewR2Store(ctx)
	}
	local := utils.LocalStore{Dir: cfg.SnapshotDir}
	if err := local.EnsureDir(); err != nil {
		return nil, err
	}
	log.Printf("⚠️  R2_BUCKET_NAME not set, writing snapshots to %s", cfg.SnapshotDir)
	return local, nil
}
