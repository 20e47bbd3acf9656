package workorder

import (
	"fmt"
	"time"
)

// Exported timestamps always carry an explicit +00:00 offset rather than the
// "Z" shorthand, matching what the ERP emits itself.
const outboundTimeLayout = "2006-01-02T15:04:05.000-07:00"

// ToInternal converts a validated ERP record into the CMMS document.
// Input that passed ValidateExternal never fails here; an error means the
// caller skipped validation.
func ToInternal(ext *ExternalWorkOrder) (*WorkOrder, error) {
	createdAt, err := parseTimestamp(ext.CreationDate, "creationDate")
	if err != nil {
		return nil, err
	}

	updatedAt, err := parseTimestamp(ext.LastUpdateDate, "lastUpdateDate")
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if ext.DeletedDate != nil {
		t, err := parseTimestamp(*ext.DeletedDate, "deletedDate")
		if err != nil {
			return nil, err
		}
		deletedAt = &t
	}

	status := ResolveStatus(ext.StatusFlags())

	return &WorkOrder{
		Number:      ext.OrderNo,
		Title:       ext.Summary,
		Description: fmt.Sprintf("%s description", ext.Summary),
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		Deleted:     status == StatusDeleted,
		IsSynced:    false,
	}, nil
}

// ToExternal converts a CMMS document back into the ERP shape. Flags come
// from the status alone; deletedDate is carried through, never derived.
func ToExternal(wo *WorkOrder) *ExternalWorkOrder {
	flags := ProjectStatus(wo.Status)

	var deletedDate *string
	if wo.DeletedAt != nil {
		s := formatTimestamp(*wo.DeletedAt)
		deletedDate = &s
	}

	return &ExternalWorkOrder{
		OrderNo:        wo.Number,
		Summary:        wo.Title,
		CreationDate:   formatTimestamp(wo.CreatedAt),
		LastUpdateDate: formatTimestamp(wo.UpdatedAt),
		DeletedDate:    deletedDate,
		IsDone:         flags.Done,
		IsCanceled:     flags.Canceled,
		IsOnHold:       flags.OnHold,
		IsPending:      flags.Pending,
		IsDeleted:      flags.Deleted,
	}
}

// parseTimestamp normalizes to UTC and truncates to millisecond precision,
// the granularity MongoDB stores. Sub-millisecond digits do not round-trip
// and are not expected to.
func parseTimestamp(value, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("field %q: invalid timestamp %q: %w", field, value, err)
	}
	return t.UTC().Truncate(time.Millisecond), nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(outboundTimeLayout)
}
