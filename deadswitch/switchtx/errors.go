package switchtx

import "errors"

// Every failure aborts the whole operation; the tags below are what the
// host surfaces to the caller.
var (
	// validation
	ErrZeroBeneficiary = errors.New("beneficiary address is zero")
	ErrZeroInterval    = errors.New("interval is zero")
	ErrZeroGracePeriod = errors.New("grace period is zero")
	ErrEmptyPayload    = errors.New("payload is empty")
	ErrChunkOutOfRange = errors.New("chunk index out of range")

	// authorization
	ErrNotOwner = errors.New("caller is not the switch owner")

	// state
	ErrSwitchNotFound     = errors.New("switch does not exist")
	ErrNotActive          = errors.New("switch is not active")
	ErrAlreadyTriggered   = errors.New("switch already triggered")
	ErrSwitchCancelled    = errors.New("switch is cancelled")
	ErrNotTriggered       = errors.New("switch is not triggered")
	ErrDeadlineNotReached = errors.New("heartbeat deadline has not passed")
	ErrGraceElapsed       = errors.New("grace period has elapsed")

	// arithmetic
	ErrArithmeticOverflow = errors.New("block arithmetic overflow")

	// dispatch
	ErrUnknownOperation = errors.New("unknown operation")
)
