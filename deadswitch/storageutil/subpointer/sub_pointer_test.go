package subpointer_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/subpointer"
)

func TestFromScalar(t *testing.T) {

	t.Run("small values land in the last byte", func(t *testing.T) {
		for v := uint64(0); v < 300; v++ {
			sp := subpointer.FromScalar(uint256.NewInt(v))

			expected := uint256.NewInt(v).Bytes32()
			require.Equal(t, expected[2:], sp[:], "value %d", v)
		}
	})

	t.Run("drops only the two high-order bytes", func(t *testing.T) {
		v := new(uint256.Int).SetBytes(common.FromHex(
			"0xffee112233445566778899aabbccddeeff00112233445566778899aabbccddee",
		))
		sp := subpointer.FromScalar(v)

		require.Equal(t,
			common.FromHex("0x112233445566778899aabbccddeeff00112233445566778899aabbccddee"),
			sp[:],
		)
	})

	t.Run("deterministic", func(t *testing.T) {
		v := uint256.NewInt(123456789)
		require.Equal(t, subpointer.FromScalar(v), subpointer.FromScalar(v))
	})
}

func TestFromUint64(t *testing.T) {
	for v := uint64(0); v < 300; v++ {
		require.Equal(t, subpointer.FromScalar(uint256.NewInt(v)), subpointer.FromUint64(v))
	}
}

func TestFromAccount(t *testing.T) {
	addr := common.HexToAddress("0x00112233445566778899aabbccddeeff00112233")
	sp := subpointer.FromAccount(addr)

	// 10 zero bytes of left padding survive the truncation, then the address
	require.Equal(t, make([]byte, 10), sp[:10])
	require.Equal(t, addr[:], sp[10:])
}

func TestCombine(t *testing.T) {

	t.Run("xor of the operands", func(t *testing.T) {
		a := subpointer.FromUint64(0x0f0f)
		b := subpointer.FromUint64(0x00ff)
		c := subpointer.Combine(a, b)

		require.Equal(t, subpointer.FromUint64(0x0ff0), c)
	})

	t.Run("commutative", func(t *testing.T) {
		a := subpointer.FromAccount(common.HexToAddress("0xabcdef0123456789abcdef0123456789abcdef01"))
		b := subpointer.FromUint64(42)

		require.Equal(t, subpointer.Combine(a, b), subpointer.Combine(b, a))
	})

	t.Run("combining twice restores the original", func(t *testing.T) {
		a := subpointer.FromUint64(77)
		b := subpointer.FromAccount(common.HexToAddress("0x1111111111111111111111111111111111111111"))

		require.Equal(t, a, subpointer.Combine(subpointer.Combine(a, b), b))
	})

	t.Run("distinct chunk indexes yield distinct compound keys", func(t *testing.T) {
		id := subpointer.FromUint64(7)
		seen := map[subpointer.SubPointer]bool{}
		for i := uint64(0); i < 256; i++ {
			c := subpointer.Combine(id, subpointer.FromUint64(i))
			require.False(t, seen[c], "collision at chunk %d", i)
			seen[c] = true
		}
	})
}
