package switchtx

import (
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
)

// Checkin resets the heartbeat deadline of an ACTIVE switch to the current
// block. Owner only.
func Checkin(db StateAccess, ctx Context, id *uint256.Int) ([]*types.Log, error) {
	if err := requireOwner(db, ctx, id); err != nil {
		return nil, err
	}
	if err := requireActive(db, id); err != nil {
		return nil, err
	}

	records.SetLastCheckin(db, id, ctx.BlockNumber)

	logs := []*types.Log{
		CheckedIn{SwitchID: id, BlockHeight: ctx.BlockNumber}.Log(ctx.BlockNumber),
	}

	return logs, nil
}
