package records_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/bc1plainview/opswitch-v2/deadswitch/address"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/pointer"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/subpointer"
)

type mockStateAccess struct {
	storage map[common.Address]map[common.Hash]common.Hash
}

func newMockStateAccess() *mockStateAccess {
	return &mockStateAccess{
		storage: make(map[common.Address]map[common.Hash]common.Hash),
	}
}

func (m *mockStateAccess) GetState(addr common.Address, key common.Hash) common.Hash {
	if m.storage[addr] == nil {
		return common.Hash{}
	}
	return m.storage[addr][key]
}

func (m *mockStateAccess) SetState(addr common.Address, key common.Hash, value common.Hash) common.Hash {
	prev := m.GetState(addr, key)
	if m.storage[addr] == nil {
		m.storage[addr] = make(map[common.Hash]common.Hash)
	}
	m.storage[addr][key] = value
	return prev
}

func TestCounter(t *testing.T) {

	t.Run("allocation before initialize fails", func(t *testing.T) {
		db := newMockStateAccess()

		_, err := records.AllocateSwitchID(db)
		require.ErrorIs(t, err, records.ErrNotDeployed)
	})

	t.Run("ids start at one and increase by exactly one", func(t *testing.T) {
		db := newMockStateAccess()
		records.Initialize(db)

		for want := uint64(1); want <= 10; want++ {
			id, err := records.AllocateSwitchID(db)
			require.NoError(t, err)
			require.Equal(t, uint256.NewInt(want), id)
		}
		require.Equal(t, uint256.NewInt(11), records.NextSwitchID(db))
	})

	t.Run("allocation at the saturated counter fails", func(t *testing.T) {
		db := newMockStateAccess()

		var maxWord common.Hash
		for i := range maxWord {
			maxWord[i] = 0xff
		}
		counterKey := pointer.Derive(pointer.NextSwitchID, subpointer.SubPointer{})
		db.SetState(address.SwitchProcessorAddress, counterKey, maxWord)

		_, err := records.AllocateSwitchID(db)
		require.ErrorIs(t, err, records.ErrCounterOverflow)
		require.Equal(t, maxWord, common.Hash(records.NextSwitchID(db).Bytes32()))
	})
}

func TestExists(t *testing.T) {
	db := newMockStateAccess()
	records.Initialize(db)

	id, err := records.AllocateSwitchID(db)
	require.NoError(t, err)

	require.False(t, records.Exists(db, uint256.NewInt(0)))
	require.True(t, records.Exists(db, id))
	require.False(t, records.Exists(db, uint256.NewInt(2)))
}

func TestScalarFields(t *testing.T) {
	db := newMockStateAccess()
	id := uint256.NewInt(7)

	t.Run("unset fields read as zero", func(t *testing.T) {
		require.Equal(t, common.Address{}, records.GetOwner(db, id))
		require.Equal(t, uint64(0), records.GetInterval(db, id))
		require.Equal(t, records.StatusNone, records.GetStatus(db, id))
	})

	t.Run("round trips", func(t *testing.T) {
		owner := common.HexToAddress("0x1000000000000000000000000000000000000001")
		beneficiary := common.HexToAddress("0x2000000000000000000000000000000000000002")

		records.SetOwner(db, id, owner)
		records.SetBeneficiary(db, id, beneficiary)
		records.SetInterval(db, id, 10)
		records.SetGracePeriod(db, id, 5)
		records.SetLastCheckin(db, id, 100)
		records.SetStatus(db, id, records.StatusTriggered)
		records.SetTriggerBlock(db, id, 111)
		records.SetChunkCount(db, id, 3)

		require.Equal(t, owner, records.GetOwner(db, id))
		require.Equal(t, beneficiary, records.GetBeneficiary(db, id))
		require.Equal(t, uint64(10), records.GetInterval(db, id))
		require.Equal(t, uint64(5), records.GetGracePeriod(db, id))
		require.Equal(t, uint64(100), records.GetLastCheckin(db, id))
		require.Equal(t, records.StatusTriggered, records.GetStatus(db, id))
		require.Equal(t, uint64(111), records.GetTriggerBlock(db, id))
		require.Equal(t, uint64(3), records.GetChunkCount(db, id))
	})

	t.Run("fields of different records do not alias", func(t *testing.T) {
		other := uint256.NewInt(8)
		records.SetInterval(db, other, 99)
		require.Equal(t, uint64(10), records.GetInterval(db, id))
	})
}

func TestBlobs(t *testing.T) {
	db := newMockStateAccess()
	id := uint256.NewInt(3)

	t.Run("chunks are independent per index", func(t *testing.T) {
		require.NoError(t, records.StoreChunk(db, id, 0, []byte("abc")))
		require.NoError(t, records.StoreChunk(db, id, 2, []byte("xyz")))

		require.Equal(t, []byte("abc"), records.LoadChunk(db, id, 0))
		require.Equal(t, []byte{}, records.LoadChunk(db, id, 1))
		require.Equal(t, []byte("xyz"), records.LoadChunk(db, id, 2))
	})

	t.Run("chunks of different records do not alias", func(t *testing.T) {
		other := uint256.NewInt(4)
		require.Equal(t, []byte{}, records.LoadChunk(db, other, 0))
	})

	t.Run("decryption key overwrites", func(t *testing.T) {
		require.Equal(t, []byte{}, records.LoadDecryptionKey(db, id))

		require.NoError(t, records.StoreDecryptionKey(db, id, []byte("first")))
		require.NoError(t, records.StoreDecryptionKey(db, id, []byte("second")))
		require.Equal(t, []byte("second"), records.LoadDecryptionKey(db, id))
	})
}
