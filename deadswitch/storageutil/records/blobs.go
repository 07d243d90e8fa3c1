package records

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/pointer"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/slotblob"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/subpointer"
)

func chunkBlobKey(id *uint256.Int, chunkIndex uint64) common.Hash {
	sub := subpointer.Combine(subpointer.FromScalar(id), subpointer.FromUint64(chunkIndex))
	return pointer.Derive(pointer.DataChunk, sub)
}

func keyBlobKey(id *uint256.Int) common.Hash {
	return pointer.Derive(pointer.EncryptedKey, subpointer.FromScalar(id))
}

// StoreChunk overwrites the data chunk at chunkIndex. The chunk count is
// owned by the state machine, not maintained here.
func StoreChunk(db StateAccess, id *uint256.Int, chunkIndex uint64, data []byte) error {
	return slotblob.Store(db, chunkBlobKey(id, chunkIndex), data)
}

// LoadChunk returns the chunk at chunkIndex; a never-written chunk loads as
// an empty slice.
func LoadChunk(db StateAccess, id *uint256.Int, chunkIndex uint64) []byte {
	return slotblob.Load(db, chunkBlobKey(id, chunkIndex))
}

// StoreDecryptionKey overwrites the encrypted key blob of the record.
func StoreDecryptionKey(db StateAccess, id *uint256.Int, key []byte) error {
	return slotblob.Store(db, keyBlobKey(id), key)
}

// LoadDecryptionKey returns the encrypted key blob; empty until written.
func LoadDecryptionKey(db StateAccess, id *uint256.Int) []byte {
	return slotblob.Load(db, keyBlobKey(id))
}
