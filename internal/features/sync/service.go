package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-worksync/internal/connectors"
	"go-worksync/internal/features/workorder"

	"go.uber.org/zap"
)

type SyncService interface {
	// RunInbound pulls ERP records into the CMMS store. The returned error
	// is set only when the source listing itself fails; per-record failures
	// are counted in the report and never abort the batch.
	RunInbound(ctx context.Context) (FlowReport, error)

	// RunOutbound exports unsynced CMMS work orders to the ERP store and
	// marks each one synced after its write completes. A record whose
	// mark-synced update fails stays eligible for the next run.
	RunOutbound(ctx context.Context) (FlowReport, error)

	// Run executes inbound then outbound and persists a SyncLog for the run.
	Run(ctx context.Context) (*SyncLog, error)

	ListLogs(ctx context.Context, limit int64) ([]SyncLog, error)
}

type SyncServiceImpl struct {
	WorkOrderRepo workorder.WorkOrderRepository
	ERP           connectors.ERPStore
	LogRepo       SyncLogRepository
	Logger        *zap.Logger
}

func NewSyncService(workOrderRepo workorder.WorkOrderRepository, erp connectors.ERPStore, logRepo SyncLogRepository, logger *zap.Logger) SyncService {
	return &SyncServiceImpl{
		WorkOrderRepo: workOrderRepo,
		ERP:           erp,
		LogRepo:       logRepo,
		Logger:        logger,
	}
}

func (s *SyncServiceImpl) RunInbound(ctx context.Context) (FlowReport, error) {
	var report FlowReport

	raws, err := s.ERP.ListInbound(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list inbound records: %w", err)
	}

	// Records are processed in order so the last occurrence of a duplicated
	// order number is the one that sticks.
	for _, raw := range raws {
		report.Read++

		ext, err := workorder.ValidateExternal(raw)
		if err != nil {
			report.Skipped++
			s.Logger.Warn("Skipping invalid inbound record", zap.Error(err))
			continue
		}

		wo, err := workorder.ToInternal(ext)
		if err != nil {
			// Unreachable for validated input. Counted, not propagated, to
			// keep the batch alive even on a broken schema assumption.
			report.Failed++
			s.Logger.Error("Translation failed for validated record",
				zap.Int64("orderNo", ext.OrderNo), zap.Error(err))
			continue
		}

		if err := s.WorkOrderRepo.Upsert(ctx, wo); err != nil {
			report.Failed++
			s.Logger.Error("Failed to persist work order",
				zap.Int64("orderNo", wo.Number), zap.Error(err))
			continue
		}

		report.Synced++
		s.Logger.Debug("Work order stored", zap.Int64("orderNo", wo.Number))
	}

	s.Logger.Info("Inbound flow finished",
		zap.Int("read", report.Read),
		zap.Int("skipped", report.Skipped),
		zap.Int("synced", report.Synced),
		zap.Int("failed", report.Failed))
	return report, nil
}

func (s *SyncServiceImpl) RunOutbound(ctx context.Context) (FlowReport, error) {
	var report FlowReport

	orders, err := s.WorkOrderRepo.FindUnsynced(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to query unsynced work orders: %w", err)
	}

	for i := range orders {
		wo := &orders[i]
		report.Read++

		ext := workorder.ToExternal(wo)

		if err := s.ERP.WriteOutbound(ctx, ext); err != nil {
			report.Failed++
			s.Logger.Error("Failed to write outbound record",
				zap.Int64("orderNo", wo.Number), zap.Error(err))
			continue
		}

		// Mark only after the write landed. If this update fails the record
		// is re-exported next run, so delivery is at-least-once.
		if err := s.WorkOrderRepo.MarkSynced(ctx, wo.Number, time.Now().UTC()); err != nil {
			report.Failed++
			s.Logger.Error("Work order written but not marked synced",
				zap.Int64("orderNo", wo.Number), zap.Error(err))
			continue
		}

		report.Synced++
		s.Logger.Debug("Work order exported", zap.Int64("orderNo", wo.Number))
	}

	s.Logger.Info("Outbound flow finished",
		zap.Int("read", report.Read),
		zap.Int("synced", report.Synced),
		zap.Int("failed", report.Failed))
	return report, nil
}

func (s *SyncServiceImpl) Run(ctx context.Context) (*SyncLog, error) {
	runLog := &SyncLog{
		StartTime: time.Now().UTC(),
		Status:    "in_progress",
	}
	_ = s.LogRepo.Create(ctx, runLog)

	var runErr error

	inbound, err := s.RunInbound(ctx)
	runLog.Inbound = inbound
	if err != nil {
		runErr = err
	}

	outbound, err := s.RunOutbound(ctx)
	runLog.Outbound = outbound
	if err != nil {
		runErr = errors.Join(runErr, err)
	}

	runLog.EndTime = time.Now().UTC()
	if runErr != nil {
		runLog.Status = "failed"
		runLog.Error = runErr.Error()
	} else {
		runLog.Status = "success"
	}
	_ = s.LogRepo.Update(ctx, runLog)

	s.Logger.Info("Sync run finished",
		zap.String("status", runLog.Status),
		zap.Duration("took", runLog.EndTime.Sub(runLog.StartTime)))
	return runLog, runErr
}

func (s *SyncServiceImpl) ListLogs(ctx context.Context, limit int64) ([]SyncLog, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.LogRepo.List(ctx, limit)
}
