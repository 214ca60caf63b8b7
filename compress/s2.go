package compress

import "github.com/klauspost/compress/s2"

// S2Compressor provides S2 compression, a balanced default when the
// artifact should stay cheap to both write and replay.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the frame artifact using S2. The artifact is
// written once and replayed many times, so the better-ratio encoder is
// worth its extra encode cost.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decompresses an S2-compressed frame artifact.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
