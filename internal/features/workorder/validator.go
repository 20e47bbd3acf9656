package workorder

import (
	"fmt"
	"math"
	"time"
)

// ValidationError reports a malformed inbound field. These are expected at
// the boundary; the orchestrator skips the record and keeps the batch going.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid external work order: field %q %s", e.Field, e.Reason)
}

// ValidateExternal is the single checkpoint for raw ERP payloads. Everything
// downstream relies on its guarantees: orderNo is an integer, summary is
// non-empty, creationDate parses, flags default to false, and a missing
// lastUpdateDate falls back to creationDate. No other component re-checks.
func ValidateExternal(raw map[string]any) (*ExternalWorkOrder, error) {
	orderNo, err := integerField(raw, "orderNo")
	if err != nil {
		return nil, err
	}

	summary, err := stringField(raw, "summary")
	if err != nil {
		return nil, err
	}
	if summary == "" {
		return nil, &ValidationError{Field: "summary", Reason: "must not be empty"}
	}

	creationDate, err := timestampField(raw, "creationDate")
	if err != nil {
		return nil, err
	}

	lastUpdateDate := creationDate
	if _, ok := raw["lastUpdateDate"]; ok && raw["lastUpdateDate"] != nil {
		lastUpdateDate, err = timestampField(raw, "lastUpdateDate")
		if err != nil {
			return nil, err
		}
	}

	var deletedDate *string
	if _, ok := raw["deletedDate"]; ok && raw["deletedDate"] != nil {
		s, err := timestampField(raw, "deletedDate")
		if err != nil {
			return nil, err
		}
		deletedDate = &s
	}

	return &ExternalWorkOrder{
		OrderNo:        orderNo,
		Summary:        summary,
		CreationDate:   creationDate,
		LastUpdateDate: lastUpdateDate,
		DeletedDate:    deletedDate,
		IsDone:         boolField(raw, "isDone"),
		IsCanceled:     boolField(raw, "isCanceled"),
		IsOnHold:       boolField(raw, "isOnHold"),
		IsPending:      boolField(raw, "isPending"),
		IsDeleted:      boolField(raw, "isDeleted"),
	}, nil
}

func integerField(raw map[string]any, field string) (int64, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		return 0, &ValidationError{Field: field, Reason: "is required"}
	}
	switch n := v.(type) {
	case float64:
		// encoding/json decodes every number as float64
		if n != math.Trunc(n) {
			return 0, &ValidationError{Field: field, Reason: "must be an integer"}
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, &ValidationError{Field: field, Reason: "must be an integer"}
	}
}

func stringField(raw map[string]any, field string) (string, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		return "", &ValidationError{Field: field, Reason: "is required"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: field, Reason: "must be a string"}
	}
	return s, nil
}

func timestampField(raw map[string]any, field string) (string, error) {
	s, err := stringField(raw, field)
	if err != nil {
		return "", err
	}
	if _, perr := time.Parse(time.RFC3339, s); perr != nil {
		return "", &ValidationError{Field: field, Reason: "is not a valid timestamp"}
	}
	return s, nil
}

func boolField(raw map[string]any, field string) bool {
	b, _ := raw[field].(bool)
	return b
}
