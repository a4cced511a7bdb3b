// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"io"
	"os"
)

// LoadStream reads exactly size bytes from r into a buffer obtained
// from alloc and parses them as a WAVE image. The returned File owns
// the buffer and Release hands it back to the allocator. A nil alloc
// means HeapAllocator.
//
// A stream holding fewer than size bytes is an error (wrapping
// io.ErrUnexpectedEOF), never a silently truncated parse.
func LoadStream(r io.Reader, size int64, alloc Allocator) (*File, error) {
	if size <= 0 {
		return nil, ErrEmptyInput
	}
	alloc = orDefault(alloc)

	buf, err := alloc.Allocate(int(size))
	if err != nil {
		return nil, fmt.Errorf("allocate file buffer: %w", err)
	}
	if buf == nil {
		return nil, ErrAllocFailed
	}

	if _, err := io.ReadFull(r, buf); err != nil {
		alloc.Release(buf)
		return nil, fmt.Errorf("read stream: %w", err)
	}

	f, err := ParseBuffer(buf)
	if err != nil {
		alloc.Release(buf)
		return nil, err
	}

	f.owned = buf
	f.alloc = alloc
	return f, nil
}

// LoadPath opens path read-only, measures it by seeking to its end,
// rewinds and loads the whole file via LoadStream. Open, seek and read
// failures are reported to the caller; they are never folded into a
// zeroed handle.
func LoadPath(path string, alloc Allocator) (*File, error) {
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

	return LoadStream(file, size, alloc)
}
