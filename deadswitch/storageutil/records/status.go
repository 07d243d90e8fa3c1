package records

// Status is the lifecycle state of a switch record. The zero value is
// reserved for records that were never created, so that an unset status
// slot can never be mistaken for a live state.
type Status uint8

const (
	StatusNone Status = iota
	StatusActive
	StatusTriggered
	// StatusCancelled is declared and decoded but no operation currently
	// writes it; a terminal trigger is enforced by gating reads on the
	// grace deadline instead of storing a terminal state.
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusActive:
		return "active"
	case StatusTriggered:
		return "triggered"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
