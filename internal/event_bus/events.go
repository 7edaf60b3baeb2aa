package event_bus

import "time"

const (
	// DiagnosticUpdated is published after a user's diagnostic record is persisted.
	DiagnosticUpdated EventType = "diagnostic.updated"
	// DiagnosticPrefilled is published after category data has been mapped onto a record.
	DiagnosticPrefilled EventType = "diagnostic.prefilled"
)

type DiagnosticUpdatedEvent struct {
	UserId      int
	LastUpdated time.Time
}

type DiagnosticPrefilledEvent struct {
	UserId        int
	DebtsReplaced bool
	ItemsReplaced bool
}
