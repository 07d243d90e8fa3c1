package switchtx

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/address"
)

// SwitchCreatedSig is the event signature for switch creation logs.
// Parameters: switchId (indexed), owner, beneficiary
var SwitchCreatedSig = crypto.Keccak256Hash([]byte("SwitchCreated(uint256,address,address)"))

// CheckedInSig is the event signature for heartbeat logs.
// Parameters: switchId (indexed), blockHeight
var CheckedInSig = crypto.Keccak256Hash([]byte("CheckedIn(uint256,uint256)"))

// DataStoredSig is the event signature for chunk storage logs.
// Parameters: switchId (indexed), chunkIndex
var DataStoredSig = crypto.Keccak256Hash([]byte("DataStored(uint256,uint256)"))

// SwitchTriggeredSig is the event signature for trigger logs.
// Parameters: switchId (indexed), beneficiary, blockHeight
var SwitchTriggeredSig = crypto.Keccak256Hash([]byte("SwitchTriggered(uint256,address,uint256)"))

// SwitchCancelledSig is the event signature for cancellation logs.
// Parameters: switchId (indexed), blockHeight
var SwitchCancelledSig = crypto.Keccak256Hash([]byte("SwitchCancelled(uint256,uint256)"))

// BeneficiaryUpdatedSig is the event signature for beneficiary changes.
// Parameters: switchId (indexed), newBeneficiary
var BeneficiaryUpdatedSig = crypto.Keccak256Hash([]byte("BeneficiaryUpdated(uint256,address)"))

// Event is the closed set of lifecycle events the state machine emits. Each
// variant renders itself into a log whose data is the concatenation of its
// fields, 32 bytes each, in declared order; the switch id additionally
// rides as an indexed topic.
type Event interface {
	Log(blockNumber uint64) *types.Log
}

func addressWord(a common.Address) common.Hash {
	var h common.Hash
	copy(h[12:], a[:])
	return h
}

func uintWord(v uint64) common.Hash {
	return common.Hash(uint256.NewInt(v).Bytes32())
}

func eventLog(sig common.Hash, id *uint256.Int, blockNumber uint64, fields ...common.Hash) *types.Log {
	data := make([]byte, 0, len(fields)*common.HashLength)
	for _, f := range fields {
		data = append(data, f[:]...)
	}
	return &types.Log{
		Address:     address.SwitchProcessorAddress,
		Topics:      []common.Hash{sig, common.Hash(id.Bytes32())},
		Data:        data,
		BlockNumber: blockNumber,
	}
}

type SwitchCreated struct {
	SwitchID    *uint256.Int
	Owner       common.Address
	Beneficiary common.Address
}

func (e SwitchCreated) Log(blockNumber uint64) *types.Log {
	return eventLog(SwitchCreatedSig, e.SwitchID, blockNumber,
		common.Hash(e.SwitchID.Bytes32()), addressWord(e.Owner), addressWord(e.Beneficiary))
}

type CheckedIn struct {
	SwitchID    *uint256.Int
	BlockHeight uint64
}

func (e CheckedIn) Log(blockNumber uint64) *types.Log {
	return eventLog(CheckedInSig, e.SwitchID, blockNumber,
		common.Hash(e.SwitchID.Bytes32()), uintWord(e.BlockHeight))
}

type DataStored struct {
	SwitchID   *uint256.Int
	ChunkIndex uint64
}

func (e DataStored) Log(blockNumber uint64) *types.Log {
	return eventLog(DataStoredSig, e.SwitchID, blockNumber,
		common.Hash(e.SwitchID.Bytes32()), uintWord(e.ChunkIndex))
}

type SwitchTriggered struct {
	SwitchID    *uint256.Int
	Beneficiary common.Address
	BlockHeight uint64
}

func (e SwitchTriggered) Log(blockNumber uint64) *types.Log {
	return eventLog(SwitchTriggeredSig, e.SwitchID, blockNumber,
		common.Hash(e.SwitchID.Bytes32()), addressWord(e.Beneficiary), uintWord(e.BlockHeight))
}

type SwitchCancelled struct {
	SwitchID    *uint256.Int
	BlockHeight uint64
}

func (e SwitchCancelled) Log(blockNumber uint64) *types.Log {
	return eventLog(SwitchCancelledSig, e.SwitchID, blockNumber,
		common.Hash(e.SwitchID.Bytes32()), uintWord(e.BlockHeight))
}

type BeneficiaryUpdated struct {
	SwitchID       *uint256.Int
	NewBeneficiary common.Address
}

func (e BeneficiaryUpdated) Log(blockNumber uint64) *types.Log {
	return eventLog(BeneficiaryUpdatedSig, e.SwitchID, blockNumber,
		common.Hash(e.SwitchID.Bytes32()), addressWord(e.NewBeneficiary))
}
