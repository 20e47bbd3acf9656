package workorder

import (
	"testing"
	"time"
)

func TestToInternal(t *testing.T) {
	ext := &ExternalWorkOrder{
		OrderNo:        1,
		Summary:        "X",
		CreationDate:   "2025-01-01T00:00:00Z",
		LastUpdateDate: "2025-01-01T00:00:00Z",
		IsCanceled:     true,
	}

	wo, err := ToInternal(ext)
	if err != nil {
		t.Fatalf("ToInternal() error = %v", err)
	}

	if wo.Number != 1 {
		t.Errorf("Number = %d, want 1", wo.Number)
	}
	if wo.Title != "X" {
		t.Errorf("Title = %q, want %q", wo.Title, "X")
	}
	if wo.Description != "X description" {
		t.Errorf("Description = %q, want %q", wo.Description, "X description")
	}
	if wo.Status != StatusCancelled {
		t.Errorf("Status = %v, want %v", wo.Status, StatusCancelled)
	}
	if wo.IsSynced {
		t.Error("IsSynced must be false after inbound translation")
	}
	if wo.Deleted {
		t.Error("Deleted must be false for a cancelled order")
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !wo.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", wo.CreatedAt, want)
	}
}

func TestToInternalAllFlagsFalse(t *testing.T) {
	ext := &ExternalWorkOrder{
		OrderNo:        7,
		Summary:        "Routine check",
		CreationDate:   "2025-02-01T10:00:00Z",
		LastUpdateDate: "2025-02-01T10:00:00Z",
	}

	wo, err := ToInternal(ext)
	if err != nil {
		t.Fatalf("ToInternal() error = %v", err)
	}
	if wo.Status != StatusInProgress {
		t.Errorf("Status = %v, want %v", wo.Status, StatusInProgress)
	}
}

func TestToInternalDeletedDualRepresentation(t *testing.T) {
	deletedDate := "2025-01-06T12:00:00Z"
	ext := &ExternalWorkOrder{
		OrderNo:        4,
		Summary:        "Scrap",
		CreationDate:   "2025-01-05T11:00:00Z",
		LastUpdateDate: "2025-01-05T11:00:00Z",
		DeletedDate:    &deletedDate,
		IsDeleted:      true,
	}

	wo, err := ToInternal(ext)
	if err != nil {
		t.Fatalf("ToInternal() error = %v", err)
	}
	if wo.Status != StatusDeleted {
		t.Errorf("Status = %v, want %v", wo.Status, StatusDeleted)
	}
	if !wo.Deleted {
		t.Error("Deleted flag must be true whenever status is deleted")
	}
	if wo.DeletedAt == nil {
		t.Fatal("DeletedAt should carry the deletedDate through")
	}
	want := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	if !wo.DeletedAt.Equal(want) {
		t.Errorf("DeletedAt = %v, want %v", wo.DeletedAt, want)
	}
}

func TestToInternalTruncatesToMilliseconds(t *testing.T) {
	ext := &ExternalWorkOrder{
		OrderNo:        9,
		Summary:        "Precision",
		CreationDate:   "2025-03-01T12:00:00.123456789Z",
		LastUpdateDate: "2025-03-01T12:00:00.123456789Z",
	}

	wo, err := ToInternal(ext)
	if err != nil {
		t.Fatalf("ToInternal() error = %v", err)
	}
	want := time.Date(2025, 3, 1, 12, 0, 0, 123_000_000, time.UTC)
	if !wo.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v (millisecond precision)", wo.CreatedAt, want)
	}
}

func TestToInternalNormalizesOffsetsToUTC(t *testing.T) {
	ext := &ExternalWorkOrder{
		OrderNo:        10,
		Summary:        "Offset",
		CreationDate:   "2025-03-01T09:00:00-03:00",
		LastUpdateDate: "2025-03-01T09:00:00-03:00",
	}

	wo, err := ToInternal(ext)
	if err != nil {
		t.Fatalf("ToInternal() error = %v", err)
	}
	want := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	if !wo.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", wo.CreatedAt, want)
	}
	if wo.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt location = %v, want UTC", wo.CreatedAt.Location())
	}
}

func TestToExternal(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 1, 2, 15, 30, 45, 500_000_000, time.UTC)

	wo := &WorkOrder{
		Number:      1,
		Title:       "X",
		Description: "X description",
		Status:      StatusCancelled,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}

	ext := ToExternal(wo)

	if ext.OrderNo != 1 {
		t.Errorf("OrderNo = %d, want 1", ext.OrderNo)
	}
	if ext.Summary != "X" {
		t.Errorf("Summary = %q, want %q", ext.Summary, "X")
	}
	if !ext.IsCanceled || ext.IsDone || ext.IsOnHold || ext.IsPending || ext.IsDeleted {
		t.Errorf("flags = %+v, want only isCanceled true", ext.StatusFlags())
	}
	if ext.CreationDate != "2025-01-01T00:00:00.000+00:00" {
		t.Errorf("CreationDate = %q, want explicit +00:00 offset", ext.CreationDate)
	}
	if ext.LastUpdateDate != "2025-01-02T15:30:45.500+00:00" {
		t.Errorf("LastUpdateDate = %q", ext.LastUpdateDate)
	}
	if ext.DeletedDate != nil {
		t.Errorf("DeletedDate = %v, want nil", *ext.DeletedDate)
	}
}

func TestToExternalInProgressProjectsAllFalse(t *testing.T) {
	wo := &WorkOrder{
		Number:    2,
		Title:     "Running job",
		Status:    StatusInProgress,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	ext := ToExternal(wo)
	if ext.IsDone || ext.IsCanceled || ext.IsOnHold || ext.IsPending || ext.IsDeleted {
		t.Errorf("in_progress must project to all flags false, got %+v", ext.StatusFlags())
	}
}

func TestToExternalDeletedDatePassthrough(t *testing.T) {
	deletedAt := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	wo := &WorkOrder{
		Number:    4,
		Title:     "Scrap",
		Status:    StatusDeleted,
		Deleted:   true,
		CreatedAt: time.Date(2025, 1, 5, 11, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 5, 11, 0, 0, 0, time.UTC),
		DeletedAt: &deletedAt,
	}

	ext := ToExternal(wo)
	if !ext.IsDeleted {
		t.Error("IsDeleted flag should be true for deleted status")
	}
	if ext.DeletedDate == nil || *ext.DeletedDate != "2025-01-06T12:00:00.000+00:00" {
		t.Errorf("DeletedDate = %v, want passthrough of DeletedAt", ext.DeletedDate)
	}
}

// Inbound then outbound on a canonical record must reproduce the flag set.
func TestTranslationRoundTrip(t *testing.T) {
	ext := &ExternalWorkOrder{
		OrderNo:        1,
		Summary:        "X",
		CreationDate:   "2025-01-01T00:00:00Z",
		LastUpdateDate: "2025-01-01T00:00:00Z",
		IsCanceled:     true,
	}

	wo, err := ToInternal(ext)
	if err != nil {
		t.Fatalf("ToInternal() error = %v", err)
	}
	back := ToExternal(wo)

	if back.StatusFlags() != ext.StatusFlags() {
		t.Errorf("round trip flags = %+v, want %+v", back.StatusFlags(), ext.StatusFlags())
	}
	if back.OrderNo != ext.OrderNo || back.Summary != ext.Summary {
		t.Errorf("round trip identity fields changed: %+v", back)
	}
}
