package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clubstack/club-api/internal/adapters/config"
	postgresStorage "github.com/clubstack/club-api/internal/adapters/database/postgres"
	"github.com/clubstack/club-api/internal/domain/service"
	"github.com/clubstack/club-api/pkg/logger"
	"github.com/clubstack/club-api/pkg/logger/types"
	"github.com/clubstack/club-api/pkg/scheduler"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type App struct {
	Fiber      *fiber.App
	DB         *gorm.DB
	Logger     *types.Logger
	Scheduler  *scheduler.Scheduler
	AccessKeys *service.AccessKeyService
}

func New(cfg *config.Config) (*App, error) {
	httpLogger, err := logger.Named("http")
	if err != nil {
		return nil, err
	}

	f := fiber.New(fiber.Config{
		AppName:               "club-api",
		DisableStartupMessage: !viper.GetBool("settings.debug"),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			httpLogger.Errorf("unhandled error: %v", err)
			return c.Status(code).JSON(fiber.Map{
				"code":    "internal_error",
				"message": "Internal server error",
			})
		},
	})

	sched := scheduler.New()

	keyLogger, err := logger.Named("keys")
	if err != nil {
		return nil, err
	}
	accessKeys := service.NewAccessKeyService(
		postgresStorage.NewAccessKeyStorage(cfg.Database),
		service.NewUserService(postgresStorage.NewUserStorage(cfg.Database)),
		sched,
		viper.GetInt("service.auth.key-length"),
		viper.GetDuration("service.auth.key-ttl"),
		keyLogger,
	)

	return &App{
		Fiber:      f,
		DB:         cfg.Database,
		Logger:     httpLogger,
		Scheduler:  sched,
		AccessKeys: accessKeys,
	}, nil
}

func (a *App) Start() {
	// Keys issued before a restart keep their expiry window.
	if err := a.AccessKeys.RestoreExpiry(context.Background()); err != nil {
		logger.Log.Errorf("Failed to restore key expiry events: %v", err)
	}

	addr := fmt.Sprintf("%s:%d",
		viper.GetString("service.server.host"),
		viper.GetInt("service.server.port"),
	)

	go func() {
		logger.Log.Infof("Server starting on %s", addr)
		if err := a.Fiber.Listen(addr); err != nil {
			logger.Log.Panicf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down")
	if err := a.Fiber.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Log.Errorf("Server shutdown: %v", err)
	}
	a.Scheduler.Stop()
}
