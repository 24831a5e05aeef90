package block

import (
	"encoding/binary"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/iannr/Trabalho-individual-2-FPAA/bits"
	"github.com/iannr/Trabalho-individual-2-FPAA/minmax"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func sample(size int) []float64 {
	r := rand.New(rand.NewSource(int64(size)))

	values := make([]float64, size)
	for i := range values {
		values[i] = float64(r.Int63n(50000) - 25000)
	}
	return values
}

func TestEncodeDecode(t *testing.T) {
	for _, compressionType := range []CompressionType{NoCompression, Lz4Compression} {
		t.Run(compressionType.String(), func(t *testing.T) {
			values := sample(4096)

			data, header, err := Encode(values, compressionType)
			require.NoError(t, err)

			expected, _ := minmax.Scan(values)
			require.Equal(t, expected, header.Bounds)
			require.Equal(t, uint64(len(values)), header.Items)
			require.Equal(t, TotalHeaderSize+int(header.PayloadSize), len(data))

			decodedHeader, decoded, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, *header, *decodedHeader)
			require.Equal(t, values, decoded)
			require.NoError(t, decodedHeader.Verify(decoded))
		})
	}
}

func TestEncodeEmpty(t *testing.T) {
	_, _, err := Encode(nil, NoCompression)
	require.True(t, errors.Is(err, minmax.ErrEmptyInput))
}

func TestEncodeUnsupportedCompression(t *testing.T) {
	_, _, err := Encode([]float64{1}, CompressionType(9))
	require.True(t, errors.Is(err, ErrUnsupportedCompression))
}

func TestDecodeTruncated(t *testing.T) {
	data, _, err := Encode(sample(16), NoCompression)
	require.NoError(t, err)

	_, _, err = Decode(data[:TotalHeaderSize/2])
	require.Error(t, err)

	_, _, err = Decode(data[:len(data)-8])
	require.Error(t, err)
}

func TestVerifyMismatch(t *testing.T) {
	values := []float64{3, -1, 7}

	_, header, err := Encode(values, NoCompression)
	require.NoError(t, err)

	header.Bounds.Max = 100
	require.True(t, errors.Is(header.Verify(values), ErrBoundsMismatch))

	require.True(t, errors.Is(header.Verify(values[:2]), ErrBoundsMismatch))
}

func TestDumpLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.block")
	values := sample(1000)

	header, err := Dump(path, values, Lz4Compression)
	require.NoError(t, err)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(TotalHeaderSize)+int64(header.PayloadSize), stat.Size())

	loadedHeader, loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, header.Uid, loadedHeader.Uid)
	require.Equal(t, values, loaded)
}

func TestLoadMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.block"))
	require.Error(t, err)
}

func rawBlock(t *testing.T, items uint64, compressionType CompressionType, payload []byte) []byte {
	header := NewHeader(compressionType)
	header.Items = items
	header.PayloadSize = uint64(len(payload))

	bw := bits.NewEncodeBuffer(make([]byte, TotalHeaderSize), binary.LittleEndian)
	bw.EnableGrowing()

	_, err := header.WriteTo(&bw)
	require.NoError(t, err)
	bw.Write(payload)

	return bw.Bytes()
}

func TestDecodeRejectsBogusItemCount(t *testing.T) {
	cases := []struct {
		name        string
		items       uint64
		compression CompressionType
		payload     []byte
	}{
		{"overflowing count", 1 << 61, NoCompression, make([]byte, 8)},
		{"count larger than payload", 1 << 59, NoCompression, make([]byte, 8)},
		{"zero count with payload", 0, NoCompression, make([]byte, 8)},
		{"overflowing compressed count", 1 << 60, Lz4Compression, []byte{1, 2, 3}},
		{"count beyond lz4 ratio", 1 << 40, Lz4Compression, []byte{1, 2, 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data := rawBlock(t, c.items, c.compression, c.payload)

			require.NotPanics(t, func() {
				_, _, err := Decode(data)
				require.True(t, errors.Is(err, bits.ErrReadMismatch), "got %v", err)
			})
		})
	}
}

func TestEncodeGrowsPastHeader(t *testing.T) {
	values := sample(3)

	data, header, err := Encode(values, NoCompression)
	require.NoError(t, err)
	require.Len(t, data, TotalHeaderSize+3*ValueSize)
	require.Equal(t, uint64(3*ValueSize), header.PayloadSize)

	_, decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}
