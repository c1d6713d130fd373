package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// decompressor wraps r according to the file extension: .gz and .zst are
// decompressed and anything else is read as is.
func decompressor(filename string, r io.Reader) (io.ReadCloser, error) {
	switch filepath.Ext(filename) {
	case ".gz":
		return gzip.NewReader(r)
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

// compressor is the writing counterpart of decompressor.
func compressor(filename string, w io.Writer) (io.WriteCloser, error) {
	switch filepath.Ext(filename) {
	case ".gz":
		return gzip.NewWriter(w), nil
	case ".zst":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// readRaw reads exactly n little-endian elements from the named file.
func readRaw[T any](filename string, n int64) ([]T, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decompressor(filename, bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("unable to decompress %s: %v", filename, err)
	}
	defer r.Close()

	data := make([]T, n)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("expected %d elements in %s: %v", n, filename, err)
	}
	var extra [1]byte
	if m, _ := io.ReadFull(r, extra[:]); m != 0 {
		return nil, fmt.Errorf("%s holds more than the expected %d elements", filename, n)
	}
	return data, nil
}

// writeRaw writes data as packed little-endian elements to the named file,
// compressed if the name ends in .gz or .zst.
func writeRaw[T any](filename string, data []T) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	w, err := compressor(filename, bw)
	if err != nil {
		f.Close()
		return fmt.Errorf("unable to compress %s: %v", filename, err)
	}
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		f.Close()
		return fmt.Errorf("unable to write %s: %v", filename, err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("unable to finish %s: %v", filename, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("unable to write %s: %v", filename, err)
	}
	return f.Close()
}
