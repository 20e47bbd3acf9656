package connectors

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-worksync/internal/config"
	"go-worksync/internal/features/workorder"

	"go.uber.org/zap"
)

// FileConnector is the file-based ERP store: the client drops one JSON
// document per work order into the inbound directory and picks exports up
// from the outbound directory.
type FileConnector struct {
	inboundDir  string
	outboundDir string
	logger      *zap.Logger
}

func NewFileConnector(cfg *config.Config, logger *zap.Logger) ERPStore {
	return &FileConnector{
		inboundDir:  cfg.InboundDir,
		outboundDir: cfg.OutboundDir,
		logger:      logger,
	}
}

// ListInbound reads every *.json file under the inbound directory. Files
// that cannot be read or decoded are logged and skipped; a bad file never
// aborts the listing.
func (c *FileConnector) ListInbound(ctx context.Context) ([]map[string]any, error) {
	matches, err := filepath.Glob(filepath.Join(c.inboundDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan inbound directory %s: %w", c.inboundDir, err)
	}

	records := make([]map[string]any, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			c.logger.Error("Skipping unreadable inbound file", zap.String("file", path), zap.Error(err))
			continue
		}

		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			c.logger.Error("Skipping invalid JSON inbound file", zap.String("file", path), zap.Error(err))
			continue
		}

		records = append(records, raw)
	}

	c.logger.Info("Read inbound files", zap.Int("total", len(matches)), zap.Int("decoded", len(records)))
	return records, nil
}

// WriteOutbound writes the record as workorder_<orderNo>.json, overwriting
// any previous export for that order.
func (c *FileConnector) WriteOutbound(ctx context.Context, ext *workorder.ExternalWorkOrder) error {
	if err := os.MkdirAll(c.outboundDir, 0o755); err != nil {
		return fmt.Errorf("failed to create outbound directory %s: %w", c.outboundDir, err)
	}

	data, err := json.MarshalIndent(ext, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode work order %d: %w", ext.OrderNo, err)
	}

	path := filepath.Join(c.outboundDir, fmt.Sprintf("workorder_%d.json", ext.OrderNo))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write outbound file %s: %w", path, err)
	}

	c.logger.Debug("Wrote outbound file", zap.String("file", path), zap.Int64("orderNo", ext.OrderNo))
	return nil
}
