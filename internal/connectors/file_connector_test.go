package connectors

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go-worksync/internal/config"
	"go-worksync/internal/features/workorder"

	"go.uber.org/zap"
)

func newTestConnector(t *testing.T) (*FileConnector, string, string) {
	t.Helper()
	inbound := t.TempDir()
	outbound := t.TempDir()

	cfg := &config.Config{InboundDir: inbound, OutboundDir: outbound}
	c := NewFileConnector(cfg, zap.NewNop()).(*FileConnector)
	return c, inbound, outbound
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListInbound(t *testing.T) {
	c, inbound, _ := newTestConnector(t)

	writeFile(t, inbound, "order_1.json", `{"orderNo": 1, "summary": "X", "creationDate": "2025-01-01T00:00:00Z"}`)
	writeFile(t, inbound, "order_2.json", `{"orderNo": 2, "summary": "Y", "creationDate": "2025-01-02T00:00:00Z"}`)
	writeFile(t, inbound, "notes.txt", "not a record")

	records, err := c.ListInbound(context.Background())
	if err != nil {
		t.Fatalf("ListInbound() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (non-json files ignored)", len(records))
	}
	if records[0]["orderNo"] != float64(1) {
		t.Errorf("first record orderNo = %v", records[0]["orderNo"])
	}
}

func TestListInboundSkipsCorruptFiles(t *testing.T) {
	c, inbound, _ := newTestConnector(t)

	writeFile(t, inbound, "good.json", `{"orderNo": 1, "summary": "X", "creationDate": "2025-01-01T00:00:00Z"}`)
	writeFile(t, inbound, "corrupt.json", `{"orderNo": `)

	records, err := c.ListInbound(context.Background())
	if err != nil {
		t.Fatalf("ListInbound() error = %v (a corrupt file must not abort the listing)", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestListInboundEmptyDirectory(t *testing.T) {
	c, _, _ := newTestConnector(t)

	records, err := c.ListInbound(context.Background())
	if err != nil {
		t.Fatalf("ListInbound() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestWriteOutboundRoundTrip(t *testing.T) {
	c, _, outbound := newTestConnector(t)

	ext := &workorder.ExternalWorkOrder{
		OrderNo:        1,
		Summary:        "X",
		CreationDate:   "2025-01-01T00:00:00.000+00:00",
		LastUpdateDate: "2025-01-01T00:00:00.000+00:00",
		IsCanceled:     true,
	}

	if err := c.WriteOutbound(context.Background(), ext); err != nil {
		t.Fatalf("WriteOutbound() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outbound, "workorder_1.json"))
	if err != nil {
		t.Fatal(err)
	}

	var got workorder.ExternalWorkOrder
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != *ext {
		t.Errorf("round trip = %+v, want %+v", got, *ext)
	}
}

func TestWriteOutboundOverwriteIsStable(t *testing.T) {
	c, _, outbound := newTestConnector(t)

	ext := &workorder.ExternalWorkOrder{
		OrderNo:        7,
		Summary:        "Stable export",
		CreationDate:   "2025-01-01T00:00:00.000+00:00",
		LastUpdateDate: "2025-01-01T00:00:00.000+00:00",
		IsPending:      true,
	}

	if err := c.WriteOutbound(context.Background(), ext); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(filepath.Join(outbound, "workorder_7.json"))
	if err != nil {
		t.Fatal(err)
	}

	if err := c.WriteOutbound(context.Background(), ext); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(filepath.Join(outbound, "workorder_7.json"))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("re-exporting unchanged data must produce byte-identical output")
	}
}
