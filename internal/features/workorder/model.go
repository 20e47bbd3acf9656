package workorder

import "time"

// Status is the single canonical state of a work order on the CMMS side.
// A stored work order always carries exactly one of these values.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCancelled  Status = "cancelled"
	StatusCompleted  Status = "completed"
	StatusDeleted    Status = "deleted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusOnHold, StatusCancelled, StatusCompleted, StatusDeleted:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Flags is the ERP-side representation of state: independent booleans with
// no explicit "in progress" flag.
type Flags struct {
	Done     bool
	Canceled bool
	OnHold   bool
	Pending  bool
	Deleted  bool
}

// ExternalWorkOrder mirrors the ERP JSON document. Timestamps stay textual
// here; parsing happens during translation.
type ExternalWorkOrder struct {
	OrderNo        int64   `json:"orderNo"`
	Summary        string  `json:"summary"`
	CreationDate   string  `json:"creationDate"`
	LastUpdateDate string  `json:"lastUpdateDate"`
	DeletedDate    *string `json:"deletedDate,omitempty"`
	IsDone         bool    `json:"isDone"`
	IsCanceled     bool    `json:"isCanceled"`
	IsOnHold       bool    `json:"isOnHold"`
	IsPending      bool    `json:"isPending"`
	IsDeleted      bool    `json:"isDeleted"`
}

// StatusFlags collects the five booleans for the status resolver.
func (e *ExternalWorkOrder) StatusFlags() Flags {
	return Flags{
		Done:     e.IsDone,
		Canceled: e.IsCanceled,
		OnHold:   e.IsOnHold,
		Pending:  e.IsPending,
		Deleted:  e.IsDeleted,
	}
}

// WorkOrder is the CMMS document stored in MongoDB, keyed by number.
// Number never changes after creation; it correlates one external record
// with exactly one internal record.
type WorkOrder struct {
	Number      int64      `bson:"number" json:"number"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Status      Status     `bson:"status" json:"status"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt   *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	Deleted     bool       `bson:"deleted" json:"deleted"`
	IsSynced    bool       `bson:"isSynced" json:"isSynced"`
	SyncedAt    *time.Time `bson:"syncedAt,omitempty" json:"syncedAt,omitempty"`
}
