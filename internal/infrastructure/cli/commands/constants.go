package commands

// Error messages
const (
	ErrDoctorServiceUnavailable  = "doctor service unavailable"
	ErrHistoryServiceUnavailable = "history service unavailable"
	ErrKeyRequired               = "--key is required"
	ErrUnknownHistoryEntry       = "no history entry with id %s"
)

// Success messages
const (
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgInitCancelled            = "Init cancelled."
)

// LatestEntry selects the newest history entry wherever an id is accepted.
const LatestEntry = "latest"
