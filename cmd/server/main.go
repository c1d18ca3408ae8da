package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/fadilmartias/resume-matcher/internal/domain/fiber/handler"
	applogger "github.com/fadilmartias/resume-matcher/internal/logger"
	"github.com/fadilmartias/resume-matcher/internal/middleware"
	"github.com/fadilmartias/resume-matcher/internal/model"
	"github.com/fadilmartias/resume-matcher/internal/repository"
	"github.com/fadilmartias/resume-matcher/internal/service"
	"github.com/fadilmartias/resume-matcher/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	zlog, err := applogger.New(appConfig.Env)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		// leave room for the multipart envelope around the largest upload
		BodyLimit: int(appConfig.MaxUploadSize) + 1024*1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		// /match-resume answers its own preflight
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/match-resume"
		},
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))

	db := ConnectDB(zlog)

	app.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/healthz",
		ReadinessEndpoint: "/readyz",
		ReadinessProbe: func(c *fiber.Ctx) bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.PingContext(c.UserContext()) == nil
		},
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(appConfig.RateLimit, 1*time.Minute))

	llmConfig := config.LoadLLMConfig()
	completer, err := NewCompleter(ctx, llmConfig, zlog)
	if err != nil {
		zlog.Fatal("could not build llm client", zap.Error(err))
	}
	if llmConfig.APIKey == "" {
		zlog.Warn("llm api key is not set, completions will fail", zap.String("provider", llmConfig.Provider))
	}

	storage, err := service.NewStorageService(ctx, config.LoadStorageConfig())
	if err != nil {
		zlog.Fatal("could not set up resume storage", zap.Error(err))
	}

	jobRepo := repository.NewJobRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	extractor := service.NewTextExtractor(zlog)

	matchUC := usecase.NewMatchUsecase(completer, extractor, storage, resumeRepo, jobRepo, llmConfig, zlog)
	extractionUC := usecase.NewExtractionUsecase(completer, llmConfig, zlog)
	jobUC := usecase.NewJobUsecase(jobRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, storage, appConfig.MaxUploadSize, zlog)

	handler.NewMatchHandler(matchUC, appConfig.MaxUploadSize, zlog).RegisterRoutes(app)
	handler.NewExtractHandler(extractionUC, zlog).RegisterRoutes(app)
	handler.NewJobHandler(jobUC).RegisterRoutes(app)
	handler.NewResumeHandler(resumeUC).RegisterRoutes(app)

	go func() {
		<-ctx.Done()
		zlog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("server running",
		zap.String("port", appConfig.Port),
		zap.String("llm_provider", llmConfig.Provider),
		zap.String("storage", storage.Provider()),
	)
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

// NewCompleter picks the LLM client for the configured provider.
func NewCompleter(ctx context.Context, cfg *config.LLMConfig, log *zap.Logger) (service.CompleterInterface, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return service.NewGeminiService(ctx, config.LoadGeminiConfig(), log)
	default:
		return service.NewGroqService(config.LoadGroqConfig(), log), nil
	}
}

func ConnectDB(zlog *zap.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		zlog.Fatal("could not connect to database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		zlog.Fatal("could not get database instance", zap.Error(err))
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)  // cukup 5 idle
		pgDB.SetMaxOpenConns(10) // max 10 koneksi aktif
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)           // simpan 20 koneksi siap pakai
		pgDB.SetMaxOpenConns(200)          // max 200 koneksi aktif
		pgDB.SetConnMaxLifetime(time.Hour) // recycle tiap 1 jam
	}

	// migrasi tabel; gen_random_uuid() sudah built in sejak Postgres 13
	if err := db.AutoMigrate(&model.Job{}, &model.Resume{}); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	return db
}
