// Package compress implements the byte-compression pass applied to encoded
// indexes.
//
// Every supported container starts with a distinct magic sequence, so
// Decompress needs no out-of-band format information:
//
//	bzip2  "BZh"
//	zstd   28 B5 2F FD
//	lz4    04 22 4D 18 (frame format)
//	gzip   1F 8B
//	none   a JSON document ("{" after optional whitespace)
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type defines the compression algorithm used.
type Type uint8

const (
	// None stores the encoded index as is.
	None Type = iota
	// Bzip2 is the default. It has the best ratio on identifier lists and is
	// readable by other implementations of the index format.
	Bzip2
	// Zstd trades a little ratio for much faster load times.
	Zstd
	// LZ4 is the fastest to decode.
	LZ4
	// Gzip is widely available in external tooling.
	Gzip
)

// Default is the compression used when none is configured.
const Default = Bzip2

var (
	// ErrUnknownFormat is returned when the data does not start with any known
	// magic sequence.
	ErrUnknownFormat = errors.New("compress: unknown format")
	// ErrUnknownType is returned for a Type or name outside the supported set.
	ErrUnknownType = errors.New("compress: unknown compression type")
)

var typeNames = map[Type]string{
	None:  "none",
	Bzip2: "bzip2",
	Zstd:  "zstd",
	LZ4:   "lz4",
	Gzip:  "gzip",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Types returns all supported types in declaration order.
func Types() []Type {
	return []Type{None, Bzip2, Zstd, LZ4, Gzip}
}

// ParseType maps a name (as returned by Type.String) to a Type.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

var (
	magicBzip2 = []byte("BZh")
	magicZstd  = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicLZ4   = []byte{0x04, 0x22, 0x4D, 0x18}
	magicGzip  = []byte{0x1F, 0x8B}
)

// Detect returns the compression type of data based on its leading bytes.
func Detect(data []byte) (Type, bool) {
	switch {
	case bytes.HasPrefix(data, magicBzip2):
		return Bzip2, true
	case bytes.HasPrefix(data, magicZstd):
		return Zstd, true
	case bytes.HasPrefix(data, magicLZ4):
		return LZ4, true
	case bytes.HasPrefix(data, magicGzip):
		return Gzip, true
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return None, true
	}
	return None, false
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Compress compresses data with the given algorithm.
func Compress(data []byte, t Type) ([]byte, error) {
	switch t {
	case None:
		return data, nil
	case Zstd:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		return enc.EncodeAll(data, nil), nil
	case Bzip2, LZ4, Gzip:
		var buf bytes.Buffer
		w, err := newWriter(&buf, t)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			_ = w.Close()
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

func newWriter(w io.Writer, t Type) (io.WriteCloser, error) {
	switch t {
	case Bzip2:
		return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	case LZ4:
		return lz4.NewWriter(w), nil
	case Gzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

// Decompress detects the compression type of data and decompresses it.
func Decompress(data []byte) ([]byte, Type, error) {
	t, ok := Detect(data)
	if !ok {
		return nil, None, ErrUnknownFormat
	}

	switch t {
	case None:
		return data, t, nil
	case Zstd:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, t, fmt.Errorf("zstd: %w", err)
		}
		return out, t, nil
	}

	r, err := newReader(bytes.NewReader(data), t)
	if err != nil {
		return nil, t, fmt.Errorf("%s: %w", t, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, t, fmt.Errorf("%s: %w", t, err)
	}
	return out, t, nil
}

func newReader(r io.Reader, t Type) (io.ReadCloser, error) {
	switch t {
	case Bzip2:
		return bzip2.NewReader(r, nil)
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case Gzip:
		return gzip.NewReader(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}
