package domain

import "errors"

var (
	// ErrInvalidTransition is returned when a channel state transition is not
	// legal from the current state. State is left untouched.
	ErrInvalidTransition = errors.New("invalid channel state transition")

	// ErrDuplicateStandup is returned by the standup repository when the
	// (channel, user, day) uniqueness constraint is violated. It is absorbed
	// by the service layer, which re-reads the canonical row.
	ErrDuplicateStandup = errors.New("standup already exists for user and day")

	// ErrChannelNotFound is returned when an operation references a channel
	// that does not exist.
	ErrChannelNotFound = errors.New("channel not found")
)
