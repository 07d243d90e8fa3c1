package switchtx

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
)

// Trigger fires a switch whose heartbeat deadline has passed. It is
// deliberately permissionless: an absent owner must not be able to keep the
// switch from firing by controlling who may call it.
func Trigger(db StateAccess, ctx Context, id *uint256.Int) ([]*types.Log, error) {
	if err := requireExists(db, id); err != nil {
		return nil, err
	}

	switch records.GetStatus(db, id) {
	case records.StatusTriggered:
		return nil, fmt.Errorf("%w: switch %s", ErrAlreadyTriggered, id)
	case records.StatusCancelled:
		return nil, fmt.Errorf("%w: switch %s", ErrSwitchCancelled, id)
	}

	deadline, overflow := math.SafeAdd(records.GetLastCheckin(db, id), records.GetInterval(db, id))
	if overflow {
		return nil, ErrArithmeticOverflow
	}
	if ctx.BlockNumber <= deadline {
		return nil, fmt.Errorf("%w: switch %s, deadline block %d", ErrDeadlineNotReached, id, deadline)
	}

	records.SetStatus(db, id, records.StatusTriggered)
	records.SetTriggerBlock(db, id, ctx.BlockNumber)

	logs := []*types.Log{
		SwitchTriggered{
			SwitchID:    id,
			Beneficiary: records.GetBeneficiary(db, id),
			BlockHeight: ctx.BlockNumber,
		}.Log(ctx.BlockNumber),
	}

	return logs, nil
}
