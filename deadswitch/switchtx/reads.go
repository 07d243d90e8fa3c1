package switchtx

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/ownerindex"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
)

// MaxSwitchesPerQuery bounds how many ids a single getSwitchesByOwner call
// returns, so the response cost stays independent of how many switches an
// owner has accumulated.
const MaxSwitchesPerQuery = 100

// SwitchView is the full scalar state of one record.
type SwitchView struct {
	Owner        common.Address
	Beneficiary  common.Address
	Interval     uint64
	GracePeriod  uint64
	LastCheckin  uint64
	Status       uint8
	TriggerBlock uint64
	ChunkCount   uint64
}

// OwnerPage is the result of getSwitchesByOwner: the owner's total switch
// count and up to MaxSwitchesPerQuery ids from the front of the index.
type OwnerPage struct {
	Total     uint64
	SwitchIDs []*uint256.Int
}

func GetSwitch(db StateAccess, id *uint256.Int) (*SwitchView, error) {
	if err := requireExists(db, id); err != nil {
		return nil, err
	}

	return &SwitchView{
		Owner:        records.GetOwner(db, id),
		Beneficiary:  records.GetBeneficiary(db, id),
		Interval:     records.GetInterval(db, id),
		GracePeriod:  records.GetGracePeriod(db, id),
		LastCheckin:  records.GetLastCheckin(db, id),
		Status:       uint8(records.GetStatus(db, id)),
		TriggerBlock: records.GetTriggerBlock(db, id),
		ChunkCount:   records.GetChunkCount(db, id),
	}, nil
}

// GetData returns the chunk at chunkIndex. A chunk slot below the count
// that was never written (a hole left by storing a higher index first)
// loads as an empty slice.
func GetData(db StateAccess, id *uint256.Int, chunkIndex uint64) ([]byte, error) {
	if err := requireExists(db, id); err != nil {
		return nil, err
	}
	if chunkIndex >= records.GetChunkCount(db, id) {
		return nil, fmt.Errorf("%w: index %d, count %d", ErrChunkOutOfRange, chunkIndex, records.GetChunkCount(db, id))
	}

	return records.LoadChunk(db, id, chunkIndex), nil
}

// GetDecryptionKey releases the encrypted key blob once the switch is
// TRIGGERED. The beneficiary may read it during the grace period; a cancel
// restores ACTIVE and closes the gate again.
func GetDecryptionKey(db StateAccess, id *uint256.Int) ([]byte, error) {
	if err := requireExists(db, id); err != nil {
		return nil, err
	}
	if status := records.GetStatus(db, id); status != records.StatusTriggered {
		return nil, fmt.Errorf("%w: switch %s is %s", ErrNotTriggered, id, status)
	}

	return records.LoadDecryptionKey(db, id), nil
}

// GetSwitchCount returns how many switches have ever been created.
func GetSwitchCount(db StateAccess) *uint256.Int {
	next := records.NextSwitchID(db)
	if next.IsZero() {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).Sub(next, uint256.NewInt(1))
}

// IsExpired reports whether the heartbeat deadline has passed at the
// context's block.
func IsExpired(db StateAccess, ctx Context, id *uint256.Int) (bool, error) {
	if err := requireExists(db, id); err != nil {
		return false, err
	}

	deadline, overflow := math.SafeAdd(records.GetLastCheckin(db, id), records.GetInterval(db, id))
	if overflow {
		return false, ErrArithmeticOverflow
	}

	return ctx.BlockNumber > deadline, nil
}

// GetSwitchesByOwner returns the owner's total count and the first ids of
// their index, capped at MaxSwitchesPerQuery.
func GetSwitchesByOwner(db StateAccess, owner common.Address) (*OwnerPage, error) {
	total := ownerindex.Count(db, owner)

	n := total
	if n > MaxSwitchesPerQuery {
		n = MaxSwitchesPerQuery
	}

	ids := make([]*uint256.Int, 0, n)
	for i := uint64(0); i < n; i++ {
		id, err := ownerindex.At(db, owner, i)
		if err != nil {
			return nil, fmt.Errorf("failed to read owner index %d of %s: %w", i, owner.Hex(), err)
		}
		ids = append(ids, id)
	}

	return &OwnerPage{Total: total, SwitchIDs: ids}, nil
}
