// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// HeaderSize is the byte length of a RIFF container header.
	HeaderSize = 12
	// ChunkHeaderSize is the byte length of a chunk id plus its size field.
	ChunkHeaderSize = 8
)

// FourCC is a four-character chunk or form identifier.
type FourCC [4]byte

// Well-known identifiers of the WAVE form.
var (
	RiffID = FourCC{'R', 'I', 'F', 'F'}
	WaveID = FourCC{'W', 'A', 'V', 'E'}
	FmtID  = FourCC{'f', 'm', 't', ' '}
	DataID = FourCC{'d', 'a', 't', 'a'}
)

func (f FourCC) String() string { return string(f[:]) }

// Header is the 12-byte RIFF container header. Size counts every byte
// following the size field itself, so it includes the 4-byte form id.
type Header struct {
	ID   FourCC
	Size uint32
	Form FourCC
}

// IsWave reports whether the header describes a RIFF container with
// WAVE content. Both identifiers must match exactly.
func (h Header) IsWave() bool {
	return h.ID == RiffID && h.Form == WaveID
}

// DecodeHeader decodes a container header from the first HeaderSize
// bytes of buf.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrShortHeader
	}

	var h Header
	copy(h.ID[:], buf[0:4])
	h.Size = binary.LittleEndian.Uint32(buf[4:8])
	copy(h.Form[:], buf[8:12])
	return h, nil
}

// ReadHeader reads and decodes a container header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, fmt.Errorf("read riff header: %w", err)
	}

	return DecodeHeader(buf[:])
}

// Chunk is the 8-byte header of a tagged chunk. Size is the payload
// length; it never counts the header or the trailing pad byte.
type Chunk struct {
	ID   FourCC
	Size uint32
}

// next returns the offset of the chunk following this one, given the
// offset of this chunk's payload. Odd payloads carry one pad byte.
func (c Chunk) next(payloadOff int64) int64 {
	return payloadOff + int64(c.Size) + int64(c.Size&1)
}
