// SPDX-License-Identifier: EPL-2.0

// Package wave decodes the RIFF/WAVE container of uncompressed audio
// files.
//
// Only linear PCM (8, 16 or 32 bit) and IEEE float (32 or 64 bit)
// sample encodings are accepted; compressed codecs are rejected with
// ErrUnsupportedFormat. Chunks other than "fmt " and "data" are
// skipped, not parsed.
//
// # Loading modes
//
// There are three ways to obtain a File handle:
//
//   - ParseBuffer decodes an in-memory image in place. The handle
//     borrows the buffer and makes no copies.
//   - LoadStream / LoadPath read the whole file into one allocation
//     and parse it. The handle owns that allocation.
//   - LoadStreamInfo / LoadPathInfo read only the chunk headers and
//     the format payload. The sample data stays on disk; the handle
//     records its offset and size so it can be streamed later with
//     SampleReader or a caller-side bounded read.
//
// Buffers for the owning modes come from a pluggable Allocator
// strategy; passing nil selects HeapAllocator. Owned memory is handed
// back with Release, which is idempotent.
//
// # Querying
//
// A populated File answers SampleFormat, SampleCount, Duration,
// Channels, SampleRate, Samples and SampleRegion. All queries are
// side-effect free and degrade to zero values (or sentinel errors)
// when the relevant chunk is absent, so a format-only file is still a
// valid parse.
//
// # Errors
//
// Failures are discriminated sentinel errors — ErrMalformedContainer,
// ErrMissingFormatChunk, ErrUnsupportedFormat and friends — matched
// with errors.Is. I/O failures are wrapped and propagated; a load
// never reports success over a failed read.
package wave
