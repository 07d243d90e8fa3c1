// Package records provides the typed accessors for every scalar field of a
// switch record. Each field lives in its own storage namespace under the
// record's id-derived sub-pointer. A read of an unset field returns the zero
// value of the field's type, which is indistinguishable from an explicitly
// stored zero; record existence is always decided by the id counter, never
// by probing a field.
package records

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/address"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/pointer"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/subpointer"
)

type StateAccess = storageutil.StateAccess

func fieldKey(ns pointer.Namespace, id *uint256.Int) common.Hash {
	return pointer.Derive(ns, subpointer.FromScalar(id))
}

func addressWord(a common.Address) common.Hash {
	var h common.Hash
	copy(h[12:], a[:])
	return h
}

func setUint64(db StateAccess, ns pointer.Namespace, id *uint256.Int, v uint64) {
	db.SetState(address.SwitchProcessorAddress, fieldKey(ns, id), uint256.NewInt(v).Bytes32())
}

func getUint64(db StateAccess, ns pointer.Namespace, id *uint256.Int) uint64 {
	word := db.GetState(address.SwitchProcessorAddress, fieldKey(ns, id))
	return new(uint256.Int).SetBytes32(word[:]).Uint64()
}

func SetOwner(db StateAccess, id *uint256.Int, owner common.Address) {
	db.SetState(address.SwitchProcessorAddress, fieldKey(pointer.Owner, id), addressWord(owner))
}

func GetOwner(db StateAccess, id *uint256.Int) common.Address {
	word := db.GetState(address.SwitchProcessorAddress, fieldKey(pointer.Owner, id))
	return common.BytesToAddress(word[12:])
}

func SetBeneficiary(db StateAccess, id *uint256.Int, beneficiary common.Address) {
	db.SetState(address.SwitchProcessorAddress, fieldKey(pointer.Beneficiary, id), addressWord(beneficiary))
}

func GetBeneficiary(db StateAccess, id *uint256.Int) common.Address {
	word := db.GetState(address.SwitchProcessorAddress, fieldKey(pointer.Beneficiary, id))
	return common.BytesToAddress(word[12:])
}

func SetInterval(db StateAccess, id *uint256.Int, blocks uint64) {
	setUint64(db, pointer.Interval, id, blocks)
}

func GetInterval(db StateAccess, id *uint256.Int) uint64 {
	return getUint64(db, pointer.Interval, id)
}

func SetGracePeriod(db StateAccess, id *uint256.Int, blocks uint64) {
	setUint64(db, pointer.GracePeriod, id, blocks)
}

func GetGracePeriod(db StateAccess, id *uint256.Int) uint64 {
	return getUint64(db, pointer.GracePeriod, id)
}

func SetLastCheckin(db StateAccess, id *uint256.Int, block uint64) {
	setUint64(db, pointer.LastCheckin, id, block)
}

func GetLastCheckin(db StateAccess, id *uint256.Int) uint64 {
	return getUint64(db, pointer.LastCheckin, id)
}

func SetStatus(db StateAccess, id *uint256.Int, s Status) {
	setUint64(db, pointer.Status, id, uint64(s))
}

func GetStatus(db StateAccess, id *uint256.Int) Status {
	return Status(getUint64(db, pointer.Status, id))
}

func SetTriggerBlock(db StateAccess, id *uint256.Int, block uint64) {
	setUint64(db, pointer.TriggerBlock, id, block)
}

func GetTriggerBlock(db StateAccess, id *uint256.Int) uint64 {
	return getUint64(db, pointer.TriggerBlock, id)
}

func SetChunkCount(db StateAccess, id *uint256.Int, count uint64) {
	setUint64(db, pointer.ChunkCount, id, count)
}

func GetChunkCount(db StateAccess, id *uint256.Int) uint64 {
	return getUint64(db, pointer.ChunkCount, id)
}
