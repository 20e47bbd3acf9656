package main

import (
	"context"
	"log"

	"go-worksync/internal/api"
	"go-worksync/internal/config"
	"go-worksync/internal/connectors"
	"go-worksync/internal/database"
	syncfeature "go-worksync/internal/features/sync"
	"go-worksync/internal/features/workorder"
	"go-worksync/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	return app
}

// AsRoute tags a constructor so Fx adds its result to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(":" + cfg.Port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// StartScheduler runs the pipeline on the configured cron schedule for as
// long as the server is up.
func StartScheduler(lc fx.Lifecycle, cfg *config.Config, service syncfeature.SyncService, logger *zap.Logger) error {
	scheduler := cron.New()

	_, err := scheduler.AddFunc(cfg.Schedule, func() {
		if _, err := service.Run(context.Background()); err != nil {
			logger.Error("Scheduled sync run failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Sync scheduler started", zap.String("schedule", cfg.Schedule))
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
	return nil
}

// RunPipeline executes one full sync run and shuts the process down,
// reporting a non-zero exit code when the run failed.
func RunPipeline(lc fx.Lifecycle, service syncfeature.SyncService, shutdowner fx.Shutdowner, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := 0
				if _, err := service.Run(context.Background()); err != nil {
					logger.Error("Sync run failed", zap.Error(err))
					exitCode = 1
				}
				if err := shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
					logger.Error("Failed to shutdown", zap.Error(err))
				}
			}()
			return nil
		},
	})
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	opts := []fx.Option{
		fx.Supply(cfg),
		fx.Provide(
			database.NewDatabase,
			logger.NewLogger,
			workorder.NewWorkOrderRepository,
			connectors.NewFileConnector,
			syncfeature.NewSyncLogRepository,
			syncfeature.NewSyncService,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	}

	if cfg.RunMode == "serve" {
		opts = append(opts,
			fx.Provide(
				NewFiberServer,
				syncfeature.NewSyncController,
				AsRoute(syncfeature.NewSyncApi),
				AsRoute(api.NewHealthApi),
			),
			fx.Invoke(
				RegisterAllRoutesWithAnnotation,
				StartServer,
				StartScheduler,
			),
		)
	} else {
		opts = append(opts, fx.Invoke(RunPipeline))
	}

	fx.New(opts...).Run()
}
