package sync

import (
	"github.com/gofiber/fiber/v2"
)

type SyncController struct {
	Service SyncService
}

func NewSyncController(service SyncService) *SyncController {
	return &SyncController{
		Service: service,
	}
}

// RunSync triggers a full pipeline run and returns its log entry.
func (ctrl *SyncController) RunSync(c *fiber.Ctx) error {
	runLog, err := ctrl.Service.Run(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
			"data":  runLog,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Sync run completed",
		"data":    runLog,
	})
}

// ListSyncLogs returns the most recent run logs.
func (ctrl *SyncController) ListSyncLogs(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 20))

	logs, err := ctrl.Service.ListLogs(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": logs,
	})
}
