package payload_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/payload"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/slotblob"
)

func TestSplitJoinRoundTrip(t *testing.T) {
	t.Run("empty payload produces no chunks", func(t *testing.T) {
		chunks, err := payload.Split(nil)
		require.NoError(t, err)
		require.Empty(t, chunks)

		data, err := payload.Join(chunks)
		require.NoError(t, err)
		require.Empty(t, data)
	})

	t.Run("small payload fits one chunk", func(t *testing.T) {
		original := []byte("the password to everything")

		chunks, err := payload.Split(original)
		require.NoError(t, err)
		require.Len(t, chunks, 1)

		data, err := payload.Join(chunks)
		require.NoError(t, err)
		require.Equal(t, original, data)
	})

	t.Run("incompressible payload spans multiple chunks", func(t *testing.T) {
		// A repeating counter keeps brotli from collapsing the payload to a
		// single chunk.
		original := make([]byte, 4*slotblob.MaxBlobSize)
		state := uint32(0x9e3779b9)
		for i := range original {
			state = state*1664525 + 1013904223
			original[i] = byte(state >> 24)
		}

		chunks, err := payload.Split(original)
		require.NoError(t, err)
		require.Greater(t, len(chunks), 1)
		for _, chunk := range chunks {
			require.LessOrEqual(t, len(chunk), slotblob.MaxBlobSize)
		}

		data, err := payload.Join(chunks)
		require.NoError(t, err)
		require.True(t, bytes.Equal(original, data))
	})
}
