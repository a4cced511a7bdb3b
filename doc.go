// SPDX-License-Identifier: EPL-2.0

// Package wavefile reads metadata and sample data from RIFF/WAVE audio
// files.
//
// The package walks the tagged-chunk structure of a WAVE container,
// validates that the audio is an uncompressed encoding it understands,
// and exposes the derived metadata (sample rate, channel count, bit
// depth, duration, sample count) together with the raw sample payload
// or its on-disk location.
//
// # Supported Formats
//
// Only uncompressed sample encodings are accepted:
//   - Linear PCM at 8, 16 or 32 bits per sample
//   - IEEE float at 32 or 64 bits per sample
//
// Compressed codecs (MP3, ADPCM, GSM and so on) are out of scope, as
// is writing WAVE files. Chunks other than "fmt " and "data" — cue
// points, LIST/INFO metadata, JUNK alignment blocks — are skipped,
// not parsed.
//
// # Quick Start
//
// The two entry points in this package work on file paths:
//
//	// Everything in memory, samples included
//	f, err := wavefile.Load("audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer f.Release()
//	pcm, _ := f.Samples()
//
//	// Metadata only; samples stay on disk
//	info, err := wavefile.Info("audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer info.Release()
//	off, size, _ := info.SampleRegion()
//
// # Lower-Level Access
//
// The wave subpackage exposes the full surface: ParseBuffer for
// in-memory images, LoadStream/LoadStreamInfo for seekable streams,
// and the Allocator strategy that owns the loaded buffers. The riff
// subpackage holds the generic chunk scanner for callers that need to
// walk other RIFF content themselves.
//
// # Performance
//
// The decoder makes at most one allocation per load (none at all for
// ParseBuffer) and the info mode never reads sample payloads, so
// inspecting a multi-gigabyte recording costs a handful of small
// reads and seeks.
package wavefile
