package crypt

import (
	"bytes"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Default compression settings
const (
	defaultCompressionThreshold = 1024 // 1KB
	minCompressionSavings       = 0.10 // 10% minimum savings to use compression

	// maxDecompressedSize caps expansion of a compressed payload (64MB).
	maxDecompressedSize = 64 * 1024 * 1024
)

// zstdMagic opens every zstd frame. 0xB5 is a UTF-8 continuation byte, so no
// valid text starts with this sequence and a compressed plaintext is always
// distinguishable from an uncompressed one.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

var (
	// zstd encoder and decoder are thread-safe and reusable
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
	zstdOnce    sync.Once
	zstdErr     error
)

// initZstd initializes the zstd encoder and decoder once.
func initZstd() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdEncoder, zstdErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if zstdErr != nil {
			return
		}
		zstdDecoder, zstdErr = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecompressedSize))
		if zstdErr != nil {
			zstdEncoder.Close()
			zstdEncoder = nil
		}
	})
	return zstdEncoder, zstdDecoder, zstdErr
}

func compressZstd(data []byte) ([]byte, error) {
	encoder, _, err := initZstd()
	if err != nil {
		return nil, err
	}
	return encoder.EncodeAll(data, nil), nil
}

// decompressZstd returns ErrDecompressionFailed for corrupt frames and for
// output larger than maxDecompressedSize.
func decompressZstd(data []byte) ([]byte, error) {
	_, decoder, err := initZstd()
	if err != nil {
		return nil, newError(OpDecrypt, ErrDecompressionFailed, err.Error(), err)
	}
	result, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, newError(OpDecrypt, ErrDecompressionFailed, err.Error(), err)
	}
	if len(result) > maxDecompressedSize {
		return nil, newError(OpDecrypt, ErrDecompressionFailed, "size limit exceeded", nil)
	}
	return result, nil
}

// maybeCompress compresses data if it reaches the threshold and compression
// saves at least minCompressionSavings. Reports whether data was compressed.
func maybeCompress(data []byte, threshold int, enabled bool) ([]byte, bool) {
	if !enabled || len(data) < threshold {
		return data, false
	}

	compressed, err := compressZstd(data)
	if err != nil {
		return data, false
	}

	savings := float64(len(data)-len(compressed)) / float64(len(data))
	if savings < minCompressionSavings {
		return data, false
	}
	return compressed, true
}

// maybeDecompress expands data when it is a zstd frame.
func maybeDecompress(data []byte) ([]byte, bool, error) {
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, false, nil
	}
	result, err := decompressZstd(data)
	return result, true, err
}
