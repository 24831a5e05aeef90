package block

import (
	"os"

	"github.com/iannr/Trabalho-individual-2-FPAA/logging"
	"github.com/pkg/errors"
)

// Dump encodes values and writes the block to path, replacing any existing file.
func Dump(path string, values []float64, compressionType CompressionType) (*Header, error) {

	data, header, err := Encode(values, compressionType)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}

	writtenBytes, err := f.Write(data)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "unable to write %s", path)
	}

	logging.Default().Debug("written %d bytes @ %s [uid=%s, items=%d, compression=%s]", writtenBytes, path, header.Uid, header.Items, header.Compression)

	if err = f.Close(); err != nil {
		return nil, errors.Wrapf(err, "unable to close %s", path)
	}

	return header, nil
}

// Load reads and decodes the block stored at path.
func Load(path string) (*Header, []float64, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to read %s", path)
	}

	header, values, err := Decode(data)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to decode %s", path)
	}

	logging.Default().Debug("loaded %d bytes @ %s [uid=%s, items=%d, compression=%s]", len(data), path, header.Uid, header.Items, header.Compression)

	return header, values, nil
}
