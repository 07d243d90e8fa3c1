package records

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/address"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/pointer"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/subpointer"
)

// The global id counter is a single slot under the zero sub-pointer.
var counterKey = pointer.Derive(pointer.NextSwitchID, subpointer.SubPointer{})

var oneUint256 = uint256.NewInt(1)

var (
	ErrNotDeployed     = errors.New("switch processor not initialized")
	ErrCounterOverflow = errors.New("switch id counter overflow")
)

// Initialize sets nextSwitchId to 1, reserving id 0 as "does not exist".
// It runs exactly once, on first activation of the processor.
func Initialize(db StateAccess) {
	db.SetState(address.SwitchProcessorAddress, counterKey, oneUint256.Bytes32())
}

// NextSwitchID reads the id the next createSwitch will consume. A zero
// value means the processor was never initialized.
func NextSwitchID(db StateAccess) *uint256.Int {
	word := db.GetState(address.SwitchProcessorAddress, counterKey)
	return new(uint256.Int).SetBytes32(word[:])
}

// AllocateSwitchID consumes the current counter value and advances it by
// exactly one. Ids are monotonic and never reused.
func AllocateSwitchID(db StateAccess) (*uint256.Int, error) {
	next := NextSwitchID(db)
	if next.IsZero() {
		return nil, ErrNotDeployed
	}

	incremented, overflow := new(uint256.Int).AddOverflow(next, oneUint256)
	if overflow {
		return nil, ErrCounterOverflow
	}
	db.SetState(address.SwitchProcessorAddress, counterKey, incremented.Bytes32())

	return next, nil
}

// Exists reports whether id names a created record: 1 <= id < nextSwitchId.
func Exists(db StateAccess, id *uint256.Int) bool {
	if id == nil || id.IsZero() {
		return false
	}
	return id.Lt(NextSwitchID(db))
}
