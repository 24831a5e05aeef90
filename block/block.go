// Package block stores a sequence of float64 values in a self describing
// binary block: a fixed size header followed by the (optionally lz4
// compressed) little endian payload.
package block

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/iannr/Trabalho-individual-2-FPAA/bits"
	"github.com/iannr/Trabalho-individual-2-FPAA/compression"
	"github.com/iannr/Trabalho-individual-2-FPAA/minmax"
	"github.com/pkg/errors"
)

const (
	maxItems = math.MaxInt / ValueSize

	// lz4 never inflates a frame by more than this factor
	maxLz4Ratio = 255
)

func Encode(values []float64, compressionType CompressionType) ([]byte, *Header, error) {

	bounds, err := minmax.Select(values)
	if err != nil {
		return nil, nil, err
	}

	header := NewHeader(compressionType)
	header.Items = uint64(len(values))
	header.Bounds = bounds

	raw := make([]byte, len(values)*ValueSize)
	for i, v := range values {
		binary.LittleEndian.PutUint64(raw[i*ValueSize:], math.Float64bits(v))
	}

	payload := raw

	switch compressionType {
	case NoCompression:
	case Lz4Compression:
		var compressed bytes.Buffer
		if compressErr := compression.CompressLz4(raw, &compressed); compressErr != nil {
			return nil, nil, errors.Wrap(compressErr, "unable to compress block payload")
		}
		payload = compressed.Bytes()
	default:
		return nil, nil, errors.Wrapf(ErrUnsupportedCompression, "%d", uint8(compressionType))
	}

	header.PayloadSize = uint64(len(payload))

	bw := bits.NewEncodeBuffer(make([]byte, TotalHeaderSize), binary.LittleEndian)
	bw.EnableGrowing()

	if _, headerErr := header.WriteTo(&bw); headerErr != nil {
		return nil, nil, headerErr
	}
	bw.Write(payload)

	return bw.Bytes(), header, nil
}

// Decode parses a block produced by Encode. The stored bounds are not checked,
// see Header.Verify.
func Decode(data []byte) (*Header, []float64, error) {

	header := &Header{}
	if headerErr := header.FromBytes(bytes.NewReader(data)); headerErr != nil {
		return nil, nil, headerErr
	}

	payload := data[TotalHeaderSize:]
	if uint64(len(payload)) != header.PayloadSize {
		return nil, nil, errors.Wrapf(bits.ErrReadMismatch, "payload is %d bytes, header says %d", len(payload), header.PayloadSize)
	}

	if header.Items > maxItems {
		return nil, nil, errors.Wrapf(bits.ErrReadMismatch, "header lists %d items", header.Items)
	}

	raw := payload
	rawSize := int(header.Items) * ValueSize

	switch header.Compression {
	case NoCompression:
		if len(payload) != rawSize {
			return nil, nil, errors.Wrapf(bits.ErrReadMismatch, "payload is %d bytes, %d items need %d", len(payload), header.Items, rawSize)
		}
	case Lz4Compression:
		if rawSize/maxLz4Ratio > len(payload) {
			return nil, nil, errors.Wrapf(bits.ErrReadMismatch, "%d compressed bytes cannot hold %d items", len(payload), header.Items)
		}
		raw = make([]byte, rawSize)
		n, decompressErr := compression.DecompressLz4(payload, raw)
		if decompressErr != nil {
			return nil, nil, errors.Wrapf(decompressErr, "unable to decompress block data [input length %d, output buffer: %d]", len(payload), rawSize)
		}
		raw = raw[:n]
	default:
		return nil, nil, errors.Wrapf(ErrUnsupportedCompression, "%d", uint8(header.Compression))
	}

	if len(raw) != rawSize {
		return nil, nil, errors.Wrapf(bits.ErrReadMismatch, "expected %d value bytes, got %d", rawSize, len(raw))
	}

	values := make([]float64, header.Items)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*ValueSize:]))
	}

	return header, values, nil
}
