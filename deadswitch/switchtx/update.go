package switchtx

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
)

// UpdateBeneficiary changes who receives the switch's payload once it
// fires. Owner only, ACTIVE only.
func UpdateBeneficiary(db StateAccess, ctx Context, id *uint256.Int, newBeneficiary common.Address) ([]*types.Log, error) {
	if err := requireOwner(db, ctx, id); err != nil {
		return nil, err
	}
	if err := requireActive(db, id); err != nil {
		return nil, err
	}
	if newBeneficiary == (common.Address{}) {
		return nil, ErrZeroBeneficiary
	}

	records.SetBeneficiary(db, id, newBeneficiary)

	logs := []*types.Log{
		BeneficiaryUpdated{SwitchID: id, NewBeneficiary: newBeneficiary}.Log(ctx.BlockNumber),
	}

	return logs, nil
}

// UpdateInterval changes the heartbeat interval. Owner only, ACTIVE only;
// emits no event. The new interval applies from the existing lastCheckin.
func UpdateInterval(db StateAccess, ctx Context, id *uint256.Int, newInterval uint64) error {
	if err := requireOwner(db, ctx, id); err != nil {
		return err
	}
	if err := requireActive(db, id); err != nil {
		return err
	}
	if newInterval == 0 {
		return ErrZeroInterval
	}

	records.SetInterval(db, id, newInterval)

	return nil
}
