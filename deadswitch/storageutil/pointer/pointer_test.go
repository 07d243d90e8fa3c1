package pointer_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/pointer"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/subpointer"
)

func TestNamespaceAllocation(t *testing.T) {

	t.Run("declaration order is the layout", func(t *testing.T) {
		expected := []pointer.Namespace{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
		actual := []pointer.Namespace{
			pointer.NextSwitchID,
			pointer.Owner,
			pointer.Beneficiary,
			pointer.Interval,
			pointer.GracePeriod,
			pointer.LastCheckin,
			pointer.Status,
			pointer.TriggerBlock,
			pointer.ChunkCount,
			pointer.EncryptedKey,
			pointer.DataChunk,
			pointer.OwnerCount,
			pointer.OwnerIndex,
		}
		require.Equal(t, expected, actual)
	})

	t.Run("thirteen namespaces", func(t *testing.T) {
		require.Equal(t, 13, pointer.Count())
	})

	t.Run("no namespace is zero", func(t *testing.T) {
		require.NotEqual(t, pointer.Namespace(0), pointer.NextSwitchID)
	})
}

func TestDerive(t *testing.T) {

	t.Run("packs namespace and sub-pointer", func(t *testing.T) {
		var sub subpointer.SubPointer
		for i := range sub {
			sub[i] = byte(i + 1)
		}

		key := pointer.Derive(pointer.Status, sub)

		require.Equal(t, []byte{0x00, 0x07}, key[:2])
		require.Equal(t, sub[:], key[2:])
	})

	t.Run("different namespaces never collide on the same sub-pointer", func(t *testing.T) {
		sub := subpointer.FromUint64(99)
		seen := map[common.Hash]bool{}
		for ns := pointer.NextSwitchID; ns <= pointer.OwnerIndex; ns++ {
			key := pointer.Derive(ns, sub)
			require.False(t, seen[key], "collision at namespace %d", ns)
			seen[key] = true
		}
	})
}
