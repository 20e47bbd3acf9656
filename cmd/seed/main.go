package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-worksync/internal/config"
	"go-worksync/internal/database"
	"go-worksync/internal/features/workorder"
	"go-worksync/internal/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// inboundFixtures covers each flag, a conflicting multi-flag payload, and one
// record the validator must reject (missing summary).
var inboundFixtures = []map[string]any{
	{
		"orderNo":      1,
		"summary":      "Replace hydraulic pump",
		"creationDate": "2025-01-01T08:00:00Z",
		"isCanceled":   true,
	},
	{
		"orderNo":        2,
		"summary":        "Lubricate conveyor bearings",
		"creationDate":   "2025-01-02T09:30:00Z",
		"lastUpdateDate": "2025-01-03T10:15:00Z",
	},
	{
		"orderNo":      3,
		"summary":      "Inspect cooling tower",
		"creationDate": "2025-01-04T07:45:00Z",
		"isDone":       true,
		"isCanceled":   true,
	},
	{
		"orderNo":      4,
		"summary":      "Decommission old compressor",
		"creationDate": "2025-01-05T11:00:00Z",
		"isDeleted":    true,
		"deletedDate":  "2025-01-06T12:00:00Z",
	},
	{
		"orderNo":      5,
		"creationDate": "2025-01-07T13:00:00Z",
		"isPending":    true,
	},
}

// Seed writes inbound ERP fixtures and inserts unsynced CMMS work orders so a
// fresh checkout can exercise both flows.
func Seed(
	lc fx.Lifecycle,
	cfg *config.Config,
	workOrderRepo workorder.WorkOrderRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				logger.Info("Seeding inbound fixtures and demo work orders...")

				if err := os.MkdirAll(cfg.InboundDir, 0o755); err != nil {
					logger.Error("Failed to create inbound directory", zap.Error(err))
					return
				}

				for i, fixture := range inboundFixtures {
					data, err := json.MarshalIndent(fixture, "", "  ")
					if err != nil {
						logger.Error("Failed to encode fixture", zap.Int("index", i), zap.Error(err))
						continue
					}
					path := filepath.Join(cfg.InboundDir, fmt.Sprintf("order_%02d.json", i+1))
					if err := os.WriteFile(path, data, 0o644); err != nil {
						logger.Error("Failed to write fixture", zap.String("file", path), zap.Error(err))
						continue
					}
					logger.Info("Wrote inbound fixture", zap.String("file", path))
				}

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				now := time.Now().UTC().Truncate(time.Millisecond)
				demoOrders := []*workorder.WorkOrder{
					{
						Number:      100,
						Title:       "Calibrate vibration sensors",
						Description: "Calibrate vibration sensors description",
						Status:      workorder.StatusInProgress,
						CreatedAt:   now.Add(-48 * time.Hour),
						UpdatedAt:   now.Add(-2 * time.Hour),
					},
					{
						Number:      101,
						Title:       "Annual crane inspection",
						Description: "Annual crane inspection description",
						Status:      workorder.StatusCompleted,
						CreatedAt:   now.Add(-72 * time.Hour),
						UpdatedAt:   now.Add(-24 * time.Hour),
					},
				}

				for _, wo := range demoOrders {
					if err := workOrderRepo.Upsert(ctx, wo); err != nil {
						logger.Error("Failed to seed work order", zap.Int64("orderNo", wo.Number), zap.Error(err))
						continue
					}
					logger.Info("Seeded work order", zap.Int64("orderNo", wo.Number))
				}

				logger.Info("Seeding finished")
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			workorder.NewWorkOrderRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal(err)
	}

	<-app.Done()
}
