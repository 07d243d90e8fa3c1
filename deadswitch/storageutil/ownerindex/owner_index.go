// Package ownerindex maintains, per owner account, the ordered append-only
// list of switch ids that owner created. The count lives under the
// owner-count namespace, the elements under the owner-index namespace at
// the (owner, index) compound sub-pointer. Entries are immutable once
// written; there is no removal and status transitions never touch the
// index.
package ownerindex

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/address"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/pointer"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/subpointer"
)

type StateAccess = storageutil.StateAccess

var (
	ErrIndexOutOfBounds = errors.New("owner index out of bounds")
	ErrCountOverflow    = errors.New("owner index count overflow")
)

func countKey(owner common.Address) common.Hash {
	return pointer.Derive(pointer.OwnerCount, subpointer.FromAccount(owner))
}

func elementKey(owner common.Address, index uint64) common.Hash {
	sub := subpointer.Combine(subpointer.FromAccount(owner), subpointer.FromUint64(index))
	return pointer.Derive(pointer.OwnerIndex, sub)
}

// Count returns the number of switches created by owner.
func Count(db StateAccess, owner common.Address) uint64 {
	word := db.GetState(address.SwitchProcessorAddress, countKey(owner))
	return new(uint256.Int).SetBytes32(word[:]).Uint64()
}

// At returns the switch id at the given position in the owner's list.
func At(db StateAccess, owner common.Address, index uint64) (*uint256.Int, error) {
	if index >= Count(db, owner) {
		return nil, fmt.Errorf("%w: index %d for %s", ErrIndexOutOfBounds, index, owner.Hex())
	}
	word := db.GetState(address.SwitchProcessorAddress, elementKey(owner, index))
	return new(uint256.Int).SetBytes32(word[:]), nil
}

// Append writes id at the next free position and advances the count. The
// state machine calls this exactly once per switch, at creation; calling it
// twice for the same switch would duplicate the entry.
func Append(db StateAccess, owner common.Address, id *uint256.Int) error {
	count := Count(db, owner)
	newCount, overflow := math.SafeAdd(count, 1)
	if overflow {
		return ErrCountOverflow
	}

	db.SetState(address.SwitchProcessorAddress, elementKey(owner, count), id.Bytes32())
	db.SetState(address.SwitchProcessorAddress, countKey(owner), uint256.NewInt(newCount).Bytes32())

	return nil
}
