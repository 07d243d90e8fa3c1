package switchtx

import (
	"github.com/ethereum/go-ethereum/common"
)

// Context carries the ambient ledger facts an operation is allowed to see:
// the block it executes in and the account that sent the transaction. It is
// passed explicitly so the state machine can run against synthetic blocks
// and callers in tests.
type Context struct {
	BlockNumber uint64
	Caller      common.Address
}
