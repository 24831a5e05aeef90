package compression

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

var ErrOutputTooSmall = errors.New("decompression output buffer too small")

func CompressLz4(src []byte, output *bytes.Buffer) error {
	zw := lz4.NewWriter(output)

	if _, writeErr := zw.Write(src); writeErr != nil {
		return writeErr
	}

	flushErr := zw.Flush()

	if flushErr != nil {
		return flushErr
	}

	return zw.Close()
}

// DecompressLz4 inflates an lz4 frame into dst and returns the number of bytes
// written. dst must be large enough to hold the whole frame contents.
func DecompressLz4(src []byte, dst []byte) (int, error) {
	zr := lz4.NewReader(bytes.NewReader(src))

	n, readErr := io.ReadFull(zr, dst)

	switch readErr {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		return n, nil
	default:
		return n, errors.Wrap(readErr, "lz4 frame")
	}

	// dst is full, the frame has to be exhausted as well
	var probe [1]byte
	if extra, _ := zr.Read(probe[:]); extra != 0 {
		return n, ErrOutputTooSmall
	}

	return n, nil
}
