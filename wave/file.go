// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"io"
	"time"

	"github.com/go-audio/audio"

	"github.com/ik5/wavefile/riff"
)

// File is the result of a successful parse or load. It is populated in
// a single pass and never mutated afterwards, so a fully populated
// handle is safe for concurrent reads.
//
// Depending on the loading mode the handle either borrows the caller's
// buffer (ParseBuffer), owns the whole file image (LoadStream,
// LoadPath) or owns only a small metadata block (LoadStreamInfo,
// LoadPathInfo). Owned memory goes back to the allocator via Release;
// a borrowed buffer stays the caller's problem and must outlive the
// handle.
type File struct {
	Header riff.Header

	// FormatChunk and DataChunk are the located chunk headers; their
	// offsets are absolute positions of those headers in the source
	// buffer or file. DataChunk is nil when the container has no
	// "data" chunk.
	FormatChunk  *riff.Chunk
	FormatOffset int64
	DataChunk    *riff.Chunk
	DataOffset   int64

	Format *FormatDescriptor

	// SampleData aliases the sample payload for buffer and full-load
	// handles. Info-only handles leave it nil; the payload stays on
	// disk and SampleOffset/SampleSize locate it.
	SampleData   []byte
	SampleOffset int64
	SampleSize   int64

	owned []byte
	alloc Allocator
}

// SampleFormat returns the encoding of the stored samples, or
// SampleFormatUnknown when no format was resolved.
func (f *File) SampleFormat() SampleFormat {
	if f == nil || f.Format == nil {
		return SampleFormatUnknown
	}

	return f.Format.sampleFormat()
}

// BytesPerSample returns the byte width of a single sample, zero when
// no format was resolved.
func (f *File) BytesPerSample() int {
	if f == nil || f.Format == nil {
		return 0
	}

	return int(f.Format.BitDepth) / 8
}

// SampleCount returns the total number of interleaved samples across
// all channels. A container without a data chunk counts zero.
func (f *File) SampleCount() int {
	bps := f.BytesPerSample()
	if bps == 0 {
		return 0
	}

	return int(f.SampleSize) / bps
}

// Duration returns the playback length of the sample data: sample
// frames divided by the sample rate. It is zero when the format is
// unresolved or no data chunk was found.
func (f *File) Duration() time.Duration {
	if f == nil || f.Format == nil || f.Format.NumChans == 0 || f.Format.SampleRate == 0 {
		return 0
	}

	frames := f.SampleCount() / int(f.Format.NumChans)
	return time.Duration(frames) * time.Second / time.Duration(f.Format.SampleRate)
}

// Channels returns the channel count, zero when unresolved.
func (f *File) Channels() int {
	if f == nil || f.Format == nil {
		return 0
	}

	return int(f.Format.NumChans)
}

// SampleRate returns the per-channel sample frequency in Hz, zero
// when unresolved.
func (f *File) SampleRate() int {
	if f == nil || f.Format == nil {
		return 0
	}

	return int(f.Format.SampleRate)
}

// Samples returns the materialized sample payload. It fails for a
// container without a data chunk and for info-only handles, whose
// samples were never read.
func (f *File) Samples() ([]byte, error) {
	if f == nil || f.DataChunk == nil {
		return nil, ErrMissingDataChunk
	}
	if f.SampleData == nil {
		return nil, ErrSamplesNotLoaded
	}

	return f.SampleData, nil
}

// SampleRegion returns the absolute byte offset and length of the
// sample payload within the source buffer or file.
func (f *File) SampleRegion() (offset, size int64, err error) {
	if f == nil || f.DataChunk == nil {
		return 0, 0, ErrMissingDataChunk
	}

	return f.SampleOffset, f.SampleSize, nil
}

// SampleReader positions rs at the sample payload and returns a reader
// bounded to it. rs must be the stream the File was loaded from, or a
// reopened handle of the same file. This is the streaming counterpart
// of Samples for info-only handles.
func (f *File) SampleReader(rs io.ReadSeeker) (io.Reader, error) {
	off, size, err := f.SampleRegion()
	if err != nil {
		return nil, err
	}

	if _, err := rs.Seek(off, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek sample data: %w", err)
	}

	return io.LimitReader(rs, size), nil
}

// AudioFormat returns the stream description in the go-audio currency,
// nil when no format was resolved.
func (f *File) AudioFormat() *audio.Format {
	if f == nil || f.Format == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(f.Format.NumChans),
		SampleRate:  int(f.Format.SampleRate),
	}
}

// Release returns any owned allocation to the allocator the File was
// loaded with. Releasing twice, or releasing a handle that only
// borrows a caller buffer, is a no-op.
func (f *File) Release() {
	if f == nil || f.owned == nil {
		return
	}

	buf := f.owned
	f.owned = nil
	f.SampleData = nil
	f.alloc.Release(buf)
}
