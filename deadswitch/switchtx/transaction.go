package switchtx

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
)

// SwitchTransaction is the wire form of one call: the operation name and
// the RLP-encoded arguments of that operation.
type SwitchTransaction struct {
	Op   string
	Args []byte
}

// Deploy initializes the processor's durable state. Runs once, on first
// activation; it reserves switch id 0 as "does not exist".
func Deploy(access storageutil.StateAccess) {
	records.Initialize(access)
}

// ExecuteTransaction decodes and runs one switch transaction. All writes
// are staged and only committed when the operation succeeds, so a failed
// operation has no effect on durable state and emits no logs.
func ExecuteTransaction(
	d []byte,
	blockNumber uint64,
	sender common.Address,
	access storageutil.StateAccess,
) ([]byte, []*types.Log, error) {

	tx := &SwitchTransaction{}
	if err := rlp.DecodeBytes(d, tx); err != nil {
		return nil, nil, fmt.Errorf("failed to decode switch transaction: %w", err)
	}

	staged := storageutil.NewStagedWrites(access)

	result, logs, err := Dispatch(staged, Context{BlockNumber: blockNumber, Caller: sender}, tx.Op, tx.Args)
	if err != nil {
		log.Error("failed to run switch transaction", "op", tx.Op, "error", err)
		return nil, nil, fmt.Errorf("failed to run switch transaction: %w", err)
	}

	staged.Commit()

	return result, logs, nil
}
