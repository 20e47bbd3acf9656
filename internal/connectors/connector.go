package connectors

import (
	"context"

	"go-worksync/internal/features/workorder"
)

// ERPStore is the client-side collection of work order records: one unit per
// order number. Inbound lists everything; outbound overwrites by key. The
// concrete transport is this package's concern, not the sync engine's.
type ERPStore interface {
	// ListInbound returns the raw decoded documents so the validator sees
	// the payload before any typing is assumed.
	ListInbound(ctx context.Context) ([]map[string]any, error)

	// WriteOutbound writes or overwrites the record for ext.OrderNo.
	// Re-exporting unchanged data must reproduce identical output.
	WriteOutbound(ctx context.Context, ext *workorder.ExternalWorkOrder) error
}
