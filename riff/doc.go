// SPDX-License-Identifier: EPL-2.0

// Package riff implements the tagged-chunk layer of the RIFF container
// format used by WAVE files.
//
// A RIFF file starts with a 12-byte container header (the "RIFF" id, a
// little-endian size and a form id such as "WAVE"), followed by a
// sequence of chunks. Each chunk is an 8-byte header — a four-character
// id and a little-endian payload size — followed by the payload and,
// for odd payload sizes, one pad byte that no size field accounts for.
//
// The Scanner iterates that chunk sequence over any io.ReadSeeker
// without interpreting payloads; higher layers decide which chunks to
// read and which to pass over.
package riff
