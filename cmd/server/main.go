package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/talentflow/internal/config"
	"github.com/fadilmartias/talentflow/internal/domain/fiber/handler"
	"github.com/fadilmartias/talentflow/internal/middleware"
	"github.com/fadilmartias/talentflow/internal/model"
	"github.com/fadilmartias/talentflow/internal/repository"
	"github.com/fadilmartias/talentflow/internal/service"
	"github.com/fadilmartias/talentflow/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Info("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	if appConfig.Env != "production" {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx := context.Background()
	snapshots, err := openSnapshotStore(ctx, log)
	if err != nil {
		log.WithError(err).Fatal("could not open snapshot store")
	}

	store := repository.NewApplicationStore(snapshots, config.LoadStorageConfig().Key, log)
	store.Load(ctx)

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     appOrigin(appConfig),
		AllowCredentials: appConfig.BaseURL != "",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(appConfig.RateLimitMax, 1*time.Minute))

	sessions := session.New(session.Config{
		Expiration:     12 * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   appConfig.Env == "production",
		CookieSameSite: "Lax",
	})

	notifier := service.NewDecisionNotifierFromConfig()
	if notifier.Enabled() {
		log.Info("decision webhook enabled")
	}
	uc := usecase.NewApplicationUsecase(store, notifier, appConfig.ReviewerName, log)

	handler.NewSessionHandler(sessions).RegisterRoutes(app)
	handler.NewApplicationHandler(uc, sessions).RegisterRoutes(app)

	log.WithField("port", appConfig.Port).Info("server running")
	if err := app.Listen(appConfig.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func appOrigin(cfg *config.AppConfig) string {
	if cfg.BaseURL == "" {
		return "*"
	}
	return cfg.BaseURL
}

func openSnapshotStore(ctx context.Context, log *logrus.Logger) (repository.SnapshotStore, error) {
	storageConfig := config.LoadStorageConfig()
	log.WithField("driver", storageConfig.Driver).Info("opening snapshot store")

	switch storageConfig.Driver {
	case config.StorageDriverFile:
		return repository.NewFileSnapshotStore(storageConfig.Dir), nil
	case config.StorageDriverMemory:
		return repository.NewMemorySnapshotStore(), nil
	case config.StorageDriverPostgres:
		db, err := ConnectDB()
		if err != nil {
			return nil, err
		}
		return repository.NewGormSnapshotStore(db), nil
	case config.StorageDriverRedis:
		client, err := ConnectRedis(ctx)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisSnapshotStore(client, config.LoadRedisConfig().Prefix), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", storageConfig.Driver)
	}
}

func ConnectDB() (*gorm.DB, error) {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(2)
		pgDB.SetMaxOpenConns(5)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(20)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.Snapshot{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	redisConfig := config.LoadRedisConfig()
	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("could not reach redis: %w", err)
	}
	return client, nil
}
