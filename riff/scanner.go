// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Scanner walks the chunks of a RIFF region one header at a time, in
// the manner of bufio.Scanner.
//
// Only the 8-byte chunk headers are read; payloads are passed over
// with seeks. A caller may read a payload (or part of one) between
// Scan calls — the next Scan seeks to the following chunk from an
// absolute offset, so the stream position in between does not matter.
// The even-byte padding rule is applied when advancing.
type Scanner struct {
	r     io.ReadSeeker
	pos   int64 // offset of the next chunk header
	limit int64 // exclusive upper bound of the region

	chunk      Chunk
	payloadOff int64
	started    bool
	err        error
}

// NewScanner returns a Scanner over the region [start, limit) of r.
func NewScanner(r io.ReadSeeker, start, limit int64) *Scanner {
	return &Scanner{r: r, pos: start, limit: limit}
}

// Scan advances to the next chunk header. It returns false when the
// region is exhausted or scanning failed; Err tells the two apart.
// A chunk whose declared size would run past the region bound stops
// the scan with ErrChunkBounds.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	if s.started {
		s.pos = s.chunk.next(s.payloadOff)
	}
	s.started = true

	if s.pos+ChunkHeaderSize > s.limit {
		return false
	}

	if _, err := s.r.Seek(s.pos, io.SeekStart); err != nil {
		s.err = fmt.Errorf("seek chunk header: %w", err)
		return false
	}

	var buf [ChunkHeaderSize]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		s.err = fmt.Errorf("read chunk header: %w", err)
		return false
	}

	copy(s.chunk.ID[:], buf[:4])
	s.chunk.Size = binary.LittleEndian.Uint32(buf[4:])
	s.payloadOff = s.pos + ChunkHeaderSize

	if s.payloadOff+int64(s.chunk.Size) > s.limit {
		s.err = ErrChunkBounds
		return false
	}

	return true
}

// Chunk returns the header read by the last successful Scan.
func (s *Scanner) Chunk() Chunk { return s.chunk }

// PayloadOffset returns the absolute offset of the current chunk's
// payload within the stream.
func (s *Scanner) PayloadOffset() int64 { return s.payloadOff }

// Err returns the first error encountered while scanning. Reaching
// the end of the region is not an error.
func (s *Scanner) Err() error { return s.err }
