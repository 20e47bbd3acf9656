package sync

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlowReport counts what happened to each record in one direction of a run.
// Read = Skipped + Synced + Failed always holds.
type FlowReport struct {
	Read    int `json:"read" bson:"read"`
	Skipped int `json:"skipped" bson:"skipped"` // validation rejects (inbound only)
	Synced  int `json:"synced" bson:"synced"`
	Failed  int `json:"failed" bson:"failed"`
}

type SyncLog struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StartTime time.Time          `json:"start_time" bson:"start_time"`
	EndTime   time.Time          `json:"end_time" bson:"end_time"`
	Status    string             `json:"status" bson:"status"` // "success", "failed", "in_progress"
	Inbound   FlowReport         `json:"inbound" bson:"inbound"`
	Outbound  FlowReport         `json:"outbound" bson:"outbound"`
	Error     string             `json:"error,omitempty" bson:"error,omitempty"`
}
