package switchtx

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
)

// StoreData writes a data chunk at chunkIndex, overwriting any previous
// chunk at that index. The chunk count grows to chunkIndex+1 when the write
// lands at or past the current count; it never shrinks. Chunks may only be
// written while the switch is ACTIVE.
func StoreData(db StateAccess, ctx Context, id *uint256.Int, chunkIndex uint64, data []byte) ([]*types.Log, error) {
	if err := requireOwner(db, ctx, id); err != nil {
		return nil, err
	}
	if err := requireActive(db, id); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	if err := records.StoreChunk(db, id, chunkIndex, data); err != nil {
		return nil, fmt.Errorf("failed to store chunk %d of switch %s: %w", chunkIndex, id, err)
	}

	newCount, overflow := math.SafeAdd(chunkIndex, 1)
	if overflow {
		return nil, ErrArithmeticOverflow
	}
	if newCount > records.GetChunkCount(db, id) {
		records.SetChunkCount(db, id, newCount)
	}

	logs := []*types.Log{
		DataStored{SwitchID: id, ChunkIndex: chunkIndex}.Log(ctx.BlockNumber),
	}

	return logs, nil
}

// StoreDecryptionKey overwrites the encrypted key blob of an ACTIVE switch.
// Owner only; emits no event.
func StoreDecryptionKey(db StateAccess, ctx Context, id *uint256.Int, key []byte) error {
	if err := requireOwner(db, ctx, id); err != nil {
		return err
	}
	if err := requireActive(db, id); err != nil {
		return err
	}
	if len(key) == 0 {
		return ErrEmptyPayload
	}

	if err := records.StoreDecryptionKey(db, id, key); err != nil {
		return fmt.Errorf("failed to store decryption key of switch %s: %w", id, err)
	}

	return nil
}
