// SPDX-License-Identifier: EPL-2.0

package wave

// Allocator is the strategy the stream loaders use to acquire the
// buffers a File ends up owning. An Allocator shared across concurrent
// loads must be safe for concurrent use; the loaders themselves do no
// locking.
type Allocator interface {
	// Allocate returns a zeroed buffer of exactly size bytes.
	Allocate(size int) ([]byte, error)

	// Release takes back a buffer previously handed out by Allocate.
	Release(buf []byte)
}

// HeapAllocator allocates from the Go heap and leaves reclamation to
// the garbage collector. It is the strategy used whenever a loader is
// given a nil Allocator.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrAllocFailed
	}

	return make([]byte, size), nil
}

func (HeapAllocator) Release([]byte) {}

func orDefault(alloc Allocator) Allocator {
	if alloc == nil {
		return HeapAllocator{}
	}

	return alloc
}
