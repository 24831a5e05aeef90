package bits

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrReadMismatch = errors.New("read size mismatch")
)

const MaxBinReaderBufferSize = 16

type BitsReader struct {
	readBuffer [MaxBinReaderBufferSize]byte

	buf   io.Reader
	order binary.ByteOrder
}

func NewReader(buf io.Reader, order binary.ByteOrder) *BitsReader {
	return &BitsReader{buf: buf, order: order}
}

func (r *BitsReader) readNextBytesIntoReadBuffer(size int) error {
	return r.ReadBytes(size, r.readBuffer[:size])
}

func (r *BitsReader) ReadU8() (uint8, error) {
	err := r.readNextBytesIntoReadBuffer(1)

	if err != nil {
		return 0, err
	}

	return r.readBuffer[0], nil
}

func (r *BitsReader) ReadUUID() (result uuid.UUID, err error) {
	err = r.ReadBytes(16, result[:])
	return result, err
}

func (r *BitsReader) ReadU64() (uint64, error) {

	readErr := r.readNextBytesIntoReadBuffer(8)
	if readErr != nil {
		return 0, readErr
	}

	v := r.order.Uint64(r.readBuffer[:8])
	return v, nil
}

func (r *BitsReader) ReadF64() (float64, error) {
	u, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// ReadBytes fills out[:n]. A stream that ends early yields ErrReadMismatch.
func (r *BitsReader) ReadBytes(n int, out []byte) error {

	readBytes, err := io.ReadFull(r.buf, out[:n])

	if err == io.ErrUnexpectedEOF || (err == io.EOF && n > 0) {
		return errors.Wrapf(ErrReadMismatch, "wanted %d bytes, got %d", n, readBytes)
	}

	return err
}
