package switchtx

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/ownerindex"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
)

// CreateSwitch allocates a new switch record owned by the caller. The
// record starts ACTIVE with its heartbeat set to the current block.
func CreateSwitch(
	db StateAccess,
	ctx Context,
	beneficiary common.Address,
	interval uint64,
	gracePeriod uint64,
) (*uint256.Int, []*types.Log, error) {

	if beneficiary == (common.Address{}) {
		return nil, nil, ErrZeroBeneficiary
	}
	if interval == 0 {
		return nil, nil, ErrZeroInterval
	}
	if gracePeriod == 0 {
		return nil, nil, ErrZeroGracePeriod
	}

	id, err := records.AllocateSwitchID(db)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to allocate switch id: %w", err)
	}

	records.SetOwner(db, id, ctx.Caller)
	records.SetBeneficiary(db, id, beneficiary)
	records.SetInterval(db, id, interval)
	records.SetGracePeriod(db, id, gracePeriod)
	records.SetLastCheckin(db, id, ctx.BlockNumber)
	records.SetStatus(db, id, records.StatusActive)
	records.SetTriggerBlock(db, id, 0)
	records.SetChunkCount(db, id, 0)

	if err := ownerindex.Append(db, ctx.Caller, id); err != nil {
		return nil, nil, fmt.Errorf("failed to index switch for owner: %w", err)
	}

	logs := []*types.Log{
		SwitchCreated{SwitchID: id, Owner: ctx.Caller, Beneficiary: beneficiary}.Log(ctx.BlockNumber),
	}

	return id, logs, nil
}
