// Package compress provides the compression codecs used for vizu frame
// artifacts.
//
// A rendered animation is a sequence of text frames joined into a single
// artifact. Frames are highly repetitive (per-frame chart scaffolding
// changes little between time steps), so general-purpose compression works
// well on them. Four codecs are supported:
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
package compress

import (
	"fmt"

	"github.com/arloliu/vizu/errs"
)

// Type identifies a compression algorithm for the frame artifact.
type Type uint8

const (
	// TypeNone disables artifact compression.
	TypeNone Type = iota

	// TypeZstd selects Zstandard compression.
	TypeZstd

	// TypeS2 selects S2 (Snappy-compatible) compression.
	TypeS2

	// TypeLZ4 selects LZ4 block compression.
	TypeLZ4
)

// String returns the lowercase name of the compression type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeZstd:
		return "zstd"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseType parses a compression type name as accepted on the CLI.
func ParseType(name string) (Type, error) {
	switch name {
	case "none", "":
		return TypeNone, nil
	case "zstd":
		return TypeZstd, nil
	case "s2":
		return TypeS2, nil
	case "lz4":
		return TypeLZ4, nil
	default:
		return TypeNone, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}

// Compressor compresses a complete frame artifact.
//
// The returned slice is newly allocated and owned by the caller; the input
// slice is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a frame artifact compressed with the matching
// algorithm. Corrupted or mismatched input returns an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the codec for the given compression type.
func CreateCodec(t Type) (Codec, error) {
	switch t {
	case TypeNone:
		return NewNoOpCompressor(), nil
	case TypeZstd:
		return NewZstdCompressor(), nil
	case TypeS2:
		return NewS2Compressor(), nil
	case TypeLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, t)
	}
}
