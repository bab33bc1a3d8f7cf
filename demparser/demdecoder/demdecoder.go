/*

Package demdecoder provides access to the demo container: opening plain or
compressed demo files and byte slices, and handing the raw demo bytes to
the parser.

Demo files are commonly distributed gzip- or zstd-compressed; the container
format is detected from the leading magic bytes and decompressed
transparently. Plain files are memory-mapped instead of being read into
memory.

*/
package demdecoder

import (
	"bytes"
	"fmt"
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Format identifies the demo container format.
type Format int

// Possible values of Format.
const (
	FormatUnknown Format = iota // Unrecognized container
	FormatPlain                 // Raw demo bytes
	FormatGzip                  // Gzip-compressed demo
	FormatZstd                  // Zstd-compressed demo
)

// Container magics.
var (
	plainMagic = []byte("HL2DEMO\x00")
	gzipMagic  = []byte{0x1f, 0x8b}
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// DetectFormat detects the container format from the leading bytes.
func DetectFormat(head []byte) Format {
	switch {
	case bytes.HasPrefix(head, plainMagic):
		return FormatPlain
	case bytes.HasPrefix(head, gzipMagic):
		return FormatGzip
	case bytes.HasPrefix(head, zstdMagic):
		return FormatZstd
	}
	return FormatUnknown
}

// Source is an opened demo container. Close must be called to release the
// mapping of file-backed sources.
type Source struct {
	format Format
	data   []byte

	mm mmap.MMap
	f  *os.File
}

// Format returns the detected container format.
func (s *Source) Format() Format {
	return s.format
}

// Data returns the raw (decompressed) demo bytes.
func (s *Source) Data() []byte {
	return s.data
}

// Close releases the resources of the source. The data returned by Data
// must not be used afterwards.
func (s *Source) Close() error {
	var err error
	if s.mm != nil {
		err = s.mm.Unmap()
		s.mm = nil
	}
	if s.f != nil {
		if cerr := s.f.Close(); err == nil {
			err = cerr
		}
		s.f = nil
	}
	s.data = nil
	return err
}

// NewFromFile opens a demo file. The file is memory-mapped; compressed
// containers are decompressed into memory and the mapping is released.
func NewFromFile(name string) (s *Source, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			f.Close()
		}
	}()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("not a file: %s", name)
	}

	// Memory map the file instead of reading it.
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}

	format := DetectFormat(mm)
	if format == FormatPlain || format == FormatUnknown {
		// Unknown containers are handed to the parser as-is; it reports
		// ErrNotDemoFile with the full context.
		return &Source{format: format, data: mm, mm: mm, f: f}, nil
	}

	data, err := decompress(format, mm)
	mm.Unmap()
	f.Close()
	if err != nil {
		return nil, err
	}
	return &Source{format: format, data: data}, nil
}

// New wraps a demo byte slice, decompressing compressed containers.
func New(data []byte) (*Source, error) {
	format := DetectFormat(data)
	if format == FormatPlain || format == FormatUnknown {
		return &Source{format: format, data: data}, nil
	}

	decompressed, err := decompress(format, data)
	if err != nil {
		return nil, err
	}
	return &Source{format: format, data: decompressed}, nil
}

// decompress inflates a compressed container.
func decompress(format Format, data []byte) ([]byte, error) {
	switch format {
	case FormatGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)

	case FormatZstd:
		decoder, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer decoder.Close()
		return io.ReadAll(decoder)
	}
	return data, nil
}
