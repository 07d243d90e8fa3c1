// Package subpointer derives the fixed-width sub-keys used to address a
// record's fields and payloads inside a storage namespace. All derivations
// are pure functions of their inputs; re-executing a block must yield the
// exact same storage keys.
package subpointer

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Size is the width of a sub-pointer in bytes. Two bytes of every 32-byte
// storage key are reserved for the namespace, the remaining 30 carry the
// sub-pointer.
const Size = 30

type SubPointer [Size]byte

// FromScalar takes the low-order 30 bytes of the big-endian 32-byte
// representation of v.
func FromScalar(v *uint256.Int) SubPointer {
	b := v.Bytes32()
	var sp SubPointer
	copy(sp[:], b[32-Size:])
	return sp
}

// FromUint64 is FromScalar for plain counters and indices.
func FromUint64(v uint64) SubPointer {
	return FromScalar(uint256.NewInt(v))
}

// FromAccount takes the low-order 30 bytes of the 32-byte left-padded
// account identifier. The 20-byte address occupies the tail, so no address
// bits are lost.
func FromAccount(addr common.Address) SubPointer {
	var h common.Hash
	copy(h[12:], addr[:])
	var sp SubPointer
	copy(sp[:], h[32-Size:])
	return sp
}

// Combine produces the compound sub-pointer for two-key maps, such as
// (switchId, chunkIndex) and (owner, index), by byte-wise XOR.
func Combine(a, b SubPointer) SubPointer {
	var out SubPointer
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}
