package block

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/iannr/Trabalho-individual-2-FPAA/bits"
	"github.com/iannr/Trabalho-individual-2-FPAA/minmax"
	"github.com/pkg/errors"
)

const TotalHeaderSize = 64

const HeaderSizeUsed = 16 + 8 + 1 + 8 + 16 // guid + items + compression + payload size + [max value + min value] bounds : 16
const ReservedSize = TotalHeaderSize - HeaderSizeUsed

const ValueSize = 8

type CompressionType uint8

const (
	NoCompression CompressionType = iota
	Lz4Compression
)

func (c CompressionType) String() string {
	switch c {
	case NoCompression:
		return "none"
	case Lz4Compression:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

var (
	ErrBoundsMismatch         = errors.New("stored bounds do not match values")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// Header describes one number block. Bounds are the selection result over
// the stored values.
type Header struct {
	Uid uuid.UUID

	Items       uint64
	Compression CompressionType
	PayloadSize uint64

	Bounds minmax.Bounds[float64]
}

func NewHeader(compression CompressionType) *Header {
	return &Header{
		Uid:         uuid.New(),
		Compression: compression,
	}
}

func (header *Header) FromBytes(input io.Reader) (topErr error) {

	reader := bits.NewReader(input, binary.LittleEndian)

	header.Uid, topErr = reader.ReadUUID()
	if topErr != nil {
		return errors.Wrap(topErr, "unable to decode block header guid")
	}

	header.Items, topErr = reader.ReadU64()
	if topErr != nil {
		return errors.Wrap(topErr, "unable to decode block header items")
	}

	compressionRaw, topErr := reader.ReadU8()
	if topErr != nil {
		return errors.Wrap(topErr, "unable to decode block header compression")
	}
	header.Compression = CompressionType(compressionRaw)

	header.PayloadSize, topErr = reader.ReadU64()
	if topErr != nil {
		return errors.Wrap(topErr, "unable to decode block header payload size")
	}

	// max goes first
	header.Bounds.Max, topErr = reader.ReadF64()
	if topErr != nil {
		return errors.Wrap(topErr, "unable to decode block header bounds")
	}
	header.Bounds.Min, topErr = reader.ReadF64()
	if topErr != nil {
		return errors.Wrap(topErr, "unable to decode block header bounds")
	}

	var reserved [ReservedSize]byte
	if topErr = reader.ReadBytes(ReservedSize, reserved[:]); topErr != nil {
		return errors.Wrap(topErr, "unable to decode block header")
	}

	return nil
}

func (header *Header) WriteTo(bw *bits.BitWriter) (int, error) {

	start := bw.Position()

	// UUID
	n, _ := bw.Write(header.Uid[:])
	if n != 16 {
		return 0, fmt.Errorf("failed to write block uid")
	}

	bw.PutUint64(header.Items)
	bw.WriteByte(uint8(header.Compression))
	bw.PutUint64(header.PayloadSize)

	// bounds
	bw.PutFloat64(header.Bounds.Max)
	bw.PutFloat64(header.Bounds.Min)

	bw.EmptyBytes(ReservedSize)

	return bw.Position() - start, nil
}

// Verify recomputes the bounds of values and compares them with the stored ones.
func (header *Header) Verify(values []float64) error {

	if uint64(len(values)) != header.Items {
		return errors.Wrapf(ErrBoundsMismatch, "header lists %d items, got %d", header.Items, len(values))
	}

	actual, err := minmax.Select(values)
	if err != nil {
		return err
	}

	if actual != header.Bounds {
		return errors.Wrapf(ErrBoundsMismatch, "stored %v, computed %v", header.Bounds, actual)
	}

	return nil
}
