package domain

// ChannelState is the lifecycle state of a channel's daily standup cycle
type ChannelState string

const (
	StateIdle   ChannelState = "idle"
	StateActive ChannelState = "active"
)

// ChannelEvent is a requested transition on the channel state machine
type ChannelEvent string

const (
	EventStart ChannelEvent = "start"
	EventStop  ChannelEvent = "stop"
)

// Apply returns the state reached by applying event to the current state.
// The only legal edges are start (idle -> active) and stop (active -> idle);
// anything else returns ErrInvalidTransition and the state is unchanged.
func (s ChannelState) Apply(event ChannelEvent) (ChannelState, error) {
	switch {
	case event == EventStart && s == StateIdle:
		return StateActive, nil
	case event == EventStop && s == StateActive:
		return StateIdle, nil
	default:
		return s, ErrInvalidTransition
	}
}
