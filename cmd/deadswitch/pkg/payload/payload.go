// Package payload packs arbitrary client data into chunks that fit the
// processor's per-chunk storage capacity. The contract stores opaque bytes;
// compression and splitting are purely a client concern.
package payload

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/slotblob"
)

// Compress brotli-encodes data at the highest quality. An empty input
// compresses to nothing so it never occupies a chunk.
func Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := brotli.NewWriterV2(&buf, 9)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush compressed payload: %w", err)
	}

	return buf.Bytes(), nil
}

func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoded, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}
	return decoded, nil
}

// Split compresses data and cuts the result into chunks no larger than the
// processor's per-chunk capacity, in storage order.
func Split(data []byte) ([][]byte, error) {
	compressed, err := Compress(data)
	if err != nil {
		return nil, err
	}

	var chunks [][]byte
	for off := 0; off < len(compressed); off += slotblob.MaxBlobSize {
		end := min(off+slotblob.MaxBlobSize, len(compressed))
		chunks = append(chunks, compressed[off:end])
	}

	return chunks, nil
}

// Join reassembles chunks read back in index order and decompresses them.
func Join(chunks [][]byte) ([]byte, error) {
	var compressed []byte
	for _, chunk := range chunks {
		compressed = append(compressed, chunk...)
	}
	return Decompress(compressed)
}
