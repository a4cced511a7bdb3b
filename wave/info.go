// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/wavefile/riff"
)

// LoadStreamInfo resolves the metadata of a WAVE stream without
// materializing its sample payload.
//
// The container header is read and validated before any further I/O.
// Chunk headers are then read one at a time up to the size bound: the
// "fmt " payload is copied into a small allocator-owned block, the
// "data" chunk only has its absolute offset and declared size
// recorded, and every other chunk is passed over with a seek. The
// sample payload itself is never read.
//
// Callers that later want the samples can use SampleReader, or do
// their own bounded read at SampleRegion, against the same stream.
func LoadStreamInfo(rs io.ReadSeeker, size int64, alloc Allocator) (*File, error) {
	alloc = orDefault(alloc)

	hdr, err := riff.ReadHeader(rs)
	if err != nil {
		return nil, err
	}
	if !hdr.IsWave() {
		return nil, ErrMalformedContainer
	}

	f := &File{Header: hdr, alloc: alloc}

	sc := riff.NewScanner(rs, riff.HeaderSize, size)
	for sc.Scan() {
		chunk := sc.Chunk()
		off := sc.PayloadOffset()

		switch chunk.ID {
		case riff.FmtID:
			if f.Format != nil {
				break
			}
			f.FormatChunk = &chunk
			f.FormatOffset = off - riff.ChunkHeaderSize

			block, err := alloc.Allocate(int(chunk.Size))
			if err != nil {
				return nil, fmt.Errorf("allocate fmt block: %w", err)
			}
			if block == nil {
				return nil, ErrAllocFailed
			}
			if _, err := io.ReadFull(rs, block); err != nil {
				alloc.Release(block)
				return nil, fmt.Errorf("read fmt chunk: %w", err)
			}

			desc, err := DecodeFormat(block)
			if err != nil {
				alloc.Release(block)
				return nil, err
			}
			f.owned = block
			f.Format = &desc
		case riff.DataID:
			f.DataChunk = &chunk
			f.DataOffset = off - riff.ChunkHeaderSize
			f.SampleOffset = off
			f.SampleSize = int64(chunk.Size)
			// The payload stays on the stream; the scanner seeks
			// past it on the next Scan.
		}
	}

	if err := sc.Err(); err != nil {
		f.Release()
		return nil, err
	}

	if f.Format == nil {
		f.Release()
		return nil, ErrMissingFormatChunk
	}
	if !f.Format.Valid() {
		f.Release()
		return nil, ErrUnsupportedFormat
	}

	return f, nil
}

// LoadPathInfo is the path-based counterpart of LoadStreamInfo,
// mirroring LoadPath: it opens path read-only, measures it and
// resolves the metadata without reading the samples.
func LoadPathInfo(path string, alloc Allocator) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wave file: %w", err)
	}
	defer file.Close()

	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("measure wave file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind wave file: %w", err)
	}

	return LoadStreamInfo(file, size, alloc)
}
