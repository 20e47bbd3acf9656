package workorder

// ResolveStatus maps the ERP flag set to the canonical status. Flags are
// evaluated in a fixed priority order: deleted, done, canceled, on-hold,
// pending. The first true flag wins. Upstream payloads are not guaranteed
// to set flags mutually exclusively, so this order decides conflicts.
// With no flag set the order is in progress; the ERP schema has no
// explicit flag for that state.
func ResolveStatus(f Flags) Status {
	switch {
	case f.Deleted:
		return StatusDeleted
	case f.Done:
		return StatusCompleted
	case f.Canceled:
		return StatusCancelled
	case f.OnHold:
		return StatusOnHold
	case f.Pending:
		return StatusPending
	default:
		return StatusInProgress
	}
}

// ProjectStatus is the inverse mapping: exactly one flag true for the given
// status, except in_progress, which projects to all flags false.
func ProjectStatus(s Status) Flags {
	switch s {
	case StatusDeleted:
		return Flags{Deleted: true}
	case StatusCompleted:
		return Flags{Done: true}
	case StatusCancelled:
		return Flags{Canceled: true}
	case StatusOnHold:
		return Flags{OnHold: true}
	case StatusPending:
		return Flags{Pending: true}
	default:
		return Flags{}
	}
}
