package compression

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestLz4RoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("min max select "), 512)

	var compressed bytes.Buffer
	require.NoError(t, CompressLz4(src, &compressed))
	require.Less(t, compressed.Len(), len(src))

	out := make([]byte, len(src))
	n, err := DecompressLz4(compressed.Bytes(), out)
	require.NoError(t, err)
	require.Equal(t, len(src), n)
	require.Equal(t, src, out)
}

func TestLz4OutputTooSmall(t *testing.T) {
	src := bytes.Repeat([]byte{1, 2, 3, 4}, 256)

	var compressed bytes.Buffer
	require.NoError(t, CompressLz4(src, &compressed))

	_, err := DecompressLz4(compressed.Bytes(), make([]byte, 100))
	require.True(t, errors.Is(err, ErrOutputTooSmall))
}

func TestLz4CorruptFrame(t *testing.T) {
	_, err := DecompressLz4([]byte("definitely not an lz4 frame"), make([]byte, 64))
	require.Error(t, err)
}
