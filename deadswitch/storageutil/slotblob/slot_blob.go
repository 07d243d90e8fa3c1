// Package slotblob spreads a variable-length byte payload across fixed-size
// storage slots.
//
// The layout is bit-exact and part of the durable state format:
//
//	slot 0:  [4-byte big-endian length][28 bytes of payload]
//	slot N:  [32 bytes of payload], N >= 1
//
// Slot N is addressed by the base key plus N, big-endian integer addition
// over the 32-byte key. A write overwrites the sequence unconditionally;
// stale trailing slots of a longer previous value are left in place and are
// never read back because the stored length governs the read.
package slotblob

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/address"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil"
)

type StateAccess = storageutil.StateAccess

const (
	lengthHeaderSize = 4
	slotSize         = 32
	headSlotPayload  = slotSize - lengthHeaderSize

	// MaxSlots bounds the cost of a single store or load.
	MaxSlots = 256

	// MaxBlobSize is the largest payload that fits in MaxSlots slots.
	MaxBlobSize = MaxSlots*slotSize - lengthHeaderSize
)

var ErrBlobTooLarge = errors.New("blob exceeds storage capacity")

// Store writes data under the given base key. It fails with ErrBlobTooLarge
// if data does not fit into MaxSlots slots; nothing is written in that case.
func Store(db StateAccess, key common.Hash, data []byte) error {
	if len(data) > MaxBlobSize {
		return fmt.Errorf("%w: %d bytes, capacity %d", ErrBlobTooLarge, len(data), MaxBlobSize)
	}

	var head [slotSize]byte
	binary.BigEndian.PutUint32(head[:lengthHeaderSize], uint32(len(data)))
	n := copy(head[lengthHeaderSize:], data)
	db.SetState(address.SwitchProcessorAddress, key, common.BytesToHash(head[:]))

	keyInt := new(uint256.Int).SetBytes(key[:])
	for off := n; off < len(data); off += slotSize {
		keyInt.AddUint64(keyInt, 1)
		end := min(off+slotSize, len(data))
		db.SetState(
			address.SwitchProcessorAddress,
			keyInt.Bytes32(),
			common.BytesToHash(common.RightPadBytes(data[off:end], slotSize)),
		)
	}

	return nil
}

// Load reconstructs the payload stored under the given base key. An unset
// key decodes as a zero length and yields an empty slice.
func Load(db StateAccess, key common.Hash) []byte {
	head := db.GetState(address.SwitchProcessorAddress, key)

	length := int(binary.BigEndian.Uint32(head[:lengthHeaderSize]))
	if length == 0 {
		return []byte{}
	}

	value := make([]byte, 0, length)
	n := min(length, headSlotPayload)
	value = append(value, head[lengthHeaderSize:lengthHeaderSize+n]...)
	remaining := length - n

	keyInt := new(uint256.Int).SetBytes(key[:])
	for remaining > 0 {
		keyInt.AddUint64(keyInt, 1)
		slot := db.GetState(address.SwitchProcessorAddress, keyInt.Bytes32())
		size := min(remaining, slotSize)
		value = append(value, slot[:size]...)
		remaining -= size
	}

	return value
}
