// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"bytes"

	"github.com/ik5/wavefile/riff"
)

// ParseBuffer decodes a complete WAVE image held in memory.
//
// The returned File borrows buf: SampleData aliases it and nothing is
// copied, so buf must stay alive and unmodified for as long as the
// handle is used. Release on such a handle is a no-op.
//
// A missing or unsupported "fmt " chunk fails the parse. A "data"
// chunk is optional; without one the sample queries report their zero
// sentinels. Chunks with any other id are skipped unexamined.
func ParseBuffer(buf []byte) (*File, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyInput
	}

	hdr, err := riff.DecodeHeader(buf)
	if err != nil || !hdr.IsWave() {
		return nil, ErrMalformedContainer
	}

	f := &File{Header: hdr}

	// The header size field counts everything after itself; the four
	// form-id bytes it covers are already part of the decoded header.
	limit := int64(riff.HeaderSize) + int64(hdr.Size) - 4
	if max := int64(len(buf)); limit > max {
		limit = max
	}

	var fmtPayload []byte

	sc := riff.NewScanner(bytes.NewReader(buf), riff.HeaderSize, limit)
	for sc.Scan() {
		chunk := sc.Chunk()
		off := sc.PayloadOffset()

		switch chunk.ID {
		case riff.FmtID:
			f.FormatChunk = &chunk
			f.FormatOffset = off - riff.ChunkHeaderSize
			fmtPayload = buf[off : off+int64(chunk.Size)]
		case riff.DataID:
			f.DataChunk = &chunk
			f.DataOffset = off - riff.ChunkHeaderSize
			f.SampleOffset = off
			f.SampleSize = int64(chunk.Size)
			f.SampleData = buf[off : off+int64(chunk.Size)]
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	if f.FormatChunk == nil {
		return nil, ErrMissingFormatChunk
	}

	desc, err := DecodeFormat(fmtPayload)
	if err != nil {
		return nil, err
	}
	if !desc.Valid() {
		return nil, ErrUnsupportedFormat
	}
	f.Format = &desc

	return f, nil
}
