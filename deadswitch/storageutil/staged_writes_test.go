package storageutil_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil"
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

var (
	addr = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	k1   = common.HexToHash("0x01")
	k2   = common.HexToHash("0x02")
	v1   = common.HexToHash("0x1111")
	v2   = common.HexToHash("0x2222")
)

func TestStagedWrites(t *testing.T) {

	t.Run("reads see staged values before commit", func(t *testing.T) {
		inner := newMockStateAccess()
		staged := storageutil.NewStagedWrites(inner)

		staged.SetState(addr, k1, v1)

		require.Equal(t, v1, staged.GetState(addr, k1))
		require.Equal(t, common.Hash{}, inner.GetState(addr, k1))
	})

	t.Run("reads fall through to inner state", func(t *testing.T) {
		inner := newMockStateAccess()
		inner.SetState(addr, k1, v1)
		staged := storageutil.NewStagedWrites(inner)

		require.Equal(t, v1, staged.GetState(addr, k1))
	})

	t.Run("SetState returns the previous value", func(t *testing.T) {
		inner := newMockStateAccess()
		inner.SetState(addr, k1, v1)
		staged := storageutil.NewStagedWrites(inner)

		require.Equal(t, v1, staged.SetState(addr, k1, v2))
		require.Equal(t, v2, staged.SetState(addr, k1, v1))
	})

	t.Run("commit flushes everything", func(t *testing.T) {
		inner := newMockStateAccess()
		staged := storageutil.NewStagedWrites(inner)

		staged.SetState(addr, k1, v1)
		staged.SetState(addr, k2, v2)
		staged.Commit()

		require.Equal(t, v1, inner.GetState(addr, k1))
		require.Equal(t, v2, inner.GetState(addr, k2))
	})

	t.Run("discard drops everything", func(t *testing.T) {
		inner := newMockStateAccess()
		staged := storageutil.NewStagedWrites(inner)

		staged.SetState(addr, k1, v1)
		staged.Discard()
		staged.Commit()

		require.Equal(t, common.Hash{}, inner.GetState(addr, k1))
		require.Equal(t, common.Hash{}, staged.GetState(addr, k1))
	})
}
