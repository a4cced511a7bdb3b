// SPDX-License-Identifier: EPL-2.0

package wave

import "encoding/binary"

// Encoding tags recognized by this package. Every other tag, the
// compressed encodings included, fails validation.
const (
	FormatPCM       = 1
	FormatIEEEFloat = 3
)

// FormatDescriptorSize is the canonical payload size of a "fmt " chunk.
const FormatDescriptorSize = 16

// FormatDescriptor mirrors the canonical 16-byte payload of the
// "fmt " chunk.
type FormatDescriptor struct {
	AudioFormat    uint16
	NumChans       uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitDepth       uint16
}

// DecodeFormat decodes a format descriptor from the payload of a
// "fmt " chunk. Payloads longer than the canonical 16 bytes (such as
// WAVEFORMATEX extensions) keep their trailing bytes unexamined.
func DecodeFormat(buf []byte) (FormatDescriptor, error) {
	if len(buf) < FormatDescriptorSize {
		return FormatDescriptor{}, ErrShortFormatChunk
	}

	return FormatDescriptor{
		AudioFormat:    binary.LittleEndian.Uint16(buf[0:2]),
		NumChans:       binary.LittleEndian.Uint16(buf[2:4]),
		SampleRate:     binary.LittleEndian.Uint32(buf[4:8]),
		AvgBytesPerSec: binary.LittleEndian.Uint32(buf[8:12]),
		BlockAlign:     binary.LittleEndian.Uint16(buf[12:14]),
		BitDepth:       binary.LittleEndian.Uint16(buf[14:16]),
	}, nil
}

// Valid reports whether the descriptor names a supported encoding:
// PCM at 8, 16 or 32 bits, or IEEE float at 32 or 64 bits.
func (f FormatDescriptor) Valid() bool {
	switch f.AudioFormat {
	case FormatPCM:
		return f.BitDepth == 8 || f.BitDepth == 16 || f.BitDepth == 32
	case FormatIEEEFloat:
		return f.BitDepth == 32 || f.BitDepth == 64
	}

	return false
}

// sampleFormat maps the (encoding tag, bit depth) pair to a
// SampleFormat. Pairs outside the supported set map to unknown.
func (f FormatDescriptor) sampleFormat() SampleFormat {
	switch f.AudioFormat {
	case FormatPCM:
		switch f.BitDepth {
		case 8:
			return SampleFormatU8
		case 16:
			return SampleFormatS16
		case 32:
			return SampleFormatS32
		}
	case FormatIEEEFloat:
		switch f.BitDepth {
		case 32:
			return SampleFormatF32
		case 64:
			return SampleFormatF64
		}
	}

	return SampleFormatUnknown
}

// SampleFormat identifies the binary encoding of a single sample.
type SampleFormat int

const (
	SampleFormatUnknown SampleFormat = iota
	SampleFormatU8
	SampleFormatS16
	SampleFormatS32
	SampleFormatF32
	SampleFormatF64
)

func (sf SampleFormat) String() string {
	switch sf {
	case SampleFormatU8:
		return "u8"
	case SampleFormatS16:
		return "s16"
	case SampleFormatS32:
		return "s32"
	case SampleFormatF32:
		return "f32"
	case SampleFormatF64:
		return "f64"
	}

	return "unknown"
}
