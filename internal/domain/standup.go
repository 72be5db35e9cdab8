package domain

// StandupStatus tracks a user's standup through its lifecycle.
// Transitions are pending -> in_progress -> completed, never reversed.
type StandupStatus string

const (
	StandupPending    StandupStatus = "pending"
	StandupInProgress StandupStatus = "in_progress"
	StandupCompleted  StandupStatus = "completed"
)
