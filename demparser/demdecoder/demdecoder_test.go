package demdecoder

import (
	"bytes"
	"os"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// demoBytes returns bytes starting with the demo magic.
func demoBytes() []byte {
	data := []byte("HL2DEMO\x00")
	return append(data, 1, 2, 3, 4, 5)
}

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		head   []byte
		format Format
	}{
		{demoBytes(), FormatPlain},
		{[]byte{0x1f, 0x8b, 0x08}, FormatGzip},
		{[]byte{0x28, 0xb5, 0x2f, 0xfd, 0}, FormatZstd},
		{[]byte("garbage"), FormatUnknown},
		{nil, FormatUnknown},
	}

	for _, c := range cases {
		if got := DetectFormat(c.head); got != c.format {
			t.Errorf("Expected: %v, got: %v", c.format, got)
		}
	}
}

func TestNewPlain(t *testing.T) {
	data := demoBytes()
	s, err := New(data)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if s.Format() != FormatPlain {
		t.Errorf("Expected: %v, got: %v", FormatPlain, s.Format())
	}
	if !bytes.Equal(s.Data(), data) {
		t.Error("Data differs!")
	}
}

func TestNewGzip(t *testing.T) {
	data := demoBytes()

	buf := &bytes.Buffer{}
	zw := gzip.NewWriter(buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	s, err := New(buf.Bytes())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if s.Format() != FormatGzip {
		t.Errorf("Expected: %v, got: %v", FormatGzip, s.Format())
	}
	if !bytes.Equal(s.Data(), data) {
		t.Error("Decompressed data differs!")
	}
}

func TestNewZstd(t *testing.T) {
	data := demoBytes()

	buf := &bytes.Buffer{}
	zw, err := zstd.NewWriter(buf)
	if err != nil {
		t.Fatalf("NewWriter() error: %v", err)
	}
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	s, err := New(buf.Bytes())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if s.Format() != FormatZstd {
		t.Errorf("Expected: %v, got: %v", FormatZstd, s.Format())
	}
	if !bytes.Equal(s.Data(), data) {
		t.Error("Decompressed data differs!")
	}
}

func TestFromFile(t *testing.T) {
	data := demoBytes()
	name := t.TempDir() + "/test.dem"
	if err := os.WriteFile(name, data, 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	s, err := NewFromFile(name)
	if err != nil {
		t.Fatalf("NewFromFile() error: %v", err)
	}
	defer s.Close()

	if s.Format() != FormatPlain {
		t.Errorf("Expected: %v, got: %v", FormatPlain, s.Format())
	}
	if !bytes.Equal(s.Data(), data) {
		t.Error("Data differs!")
	}
}
