package switchtx

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
)

// Cancel restores a TRIGGERED switch to ACTIVE. Only the owner may cancel,
// and only while the grace period is still open. Cancelling counts as a
// fresh checkin at the current block.
func Cancel(db StateAccess, ctx Context, id *uint256.Int) ([]*types.Log, error) {
	if err := requireOwner(db, ctx, id); err != nil {
		return nil, err
	}

	if status := records.GetStatus(db, id); status != records.StatusTriggered {
		return nil, fmt.Errorf("%w: switch %s is %s", ErrNotTriggered, id, status)
	}

	deadline, overflow := math.SafeAdd(records.GetTriggerBlock(db, id), records.GetGracePeriod(db, id))
	if overflow {
		return nil, ErrArithmeticOverflow
	}
	if ctx.BlockNumber > deadline {
		return nil, fmt.Errorf("%w: switch %s, deadline block %d", ErrGraceElapsed, id, deadline)
	}

	records.SetStatus(db, id, records.StatusActive)
	records.SetLastCheckin(db, id, ctx.BlockNumber)
	records.SetTriggerBlock(db, id, 0)

	logs := []*types.Log{
		SwitchCancelled{SwitchID: id, BlockHeight: ctx.BlockNumber}.Log(ctx.BlockNumber),
	}

	return logs, nil
}
