// Package pointer enumerates the storage namespaces of the switch processor
// and packs them with sub-pointers into full 32-byte slot keys.
package pointer

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/subpointer"
)

type Namespace uint16

// Namespaces are allocated from a single incrementing allocator, in
// declaration order. The order below is part of the durable storage layout:
// never reorder, remove, or insert in the middle. New namespaces go at the
// end.
var (
	NextSwitchID = alloc() // global id counter, single slot
	Owner        = alloc()
	Beneficiary  = alloc()
	Interval     = alloc()
	GracePeriod  = alloc()
	LastCheckin  = alloc()
	Status       = alloc()
	TriggerBlock = alloc()
	ChunkCount   = alloc()
	EncryptedKey = alloc()
	DataChunk    = alloc()
	OwnerCount   = alloc()
	OwnerIndex   = alloc()
)

var allocator Namespace

func alloc() Namespace {
	allocator++
	return allocator
}

// Count reports how many namespaces have been allocated.
func Count() int {
	return int(allocator)
}

// Derive builds the 32-byte storage key for a namespace and sub-pointer:
// the namespace occupies the two high-order bytes, big endian, the
// sub-pointer the remaining thirty.
func Derive(ns Namespace, sub subpointer.SubPointer) common.Hash {
	var key common.Hash
	binary.BigEndian.PutUint16(key[:2], uint16(ns))
	copy(key[2:], sub[:])
	return key
}
