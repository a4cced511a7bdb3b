// SPDX-License-Identifier: EPL-2.0

// Package wavetest serializes RIFF/WAVE images for tests.
// It is deliberately dependency-free (and duplicates a few format
// constants) so every package in the module can use it without cycles.
package wavetest

import (
	"bytes"
	"encoding/binary"
)

// Chunk is an arbitrary chunk to place inside a built container.
type Chunk struct {
	ID      string
	Payload []byte
}

// Options describe the WAVE image to build.
type Options struct {
	AudioFormat uint16
	NumChans    uint16
	SampleRate  uint32
	BitDepth    uint16

	// OmitFormat drops the "fmt " chunk entirely.
	OmitFormat bool

	// Extra chunks are inserted between the fmt and data chunks.
	Extra []Chunk

	// Data is the sample payload. A nil Data omits the data chunk;
	// an empty non-nil one writes a zero-length chunk.
	Data []byte
}

// Build serializes a RIFF/WAVE image with a canonical 16-byte format
// payload, correct chunk padding and a size field covering everything
// after itself.
func Build(opt Options) []byte {
	body := new(bytes.Buffer)

	if !opt.OmitFormat {
		writeChunk(body, "fmt ", fmtPayload(opt))
	}
	for _, c := range opt.Extra {
		writeChunk(body, c.ID, c.Payload)
	}
	if opt.Data != nil {
		writeChunk(body, "data", opt.Data)
	}

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(4+body.Len()))
	buf.WriteString("WAVE")
	buf.Write(body.Bytes())

	return buf.Bytes()
}

// PCM16 builds a canonical PCM image holding the given 16-bit samples.
func PCM16(sampleRate uint32, channels uint16, samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}

	return Build(Options{
		AudioFormat: 1,
		NumChans:    channels,
		SampleRate:  sampleRate,
		BitDepth:    16,
		Data:        data,
	})
}

func fmtPayload(opt Options) []byte {
	bytesPerFrame := uint32(opt.NumChans) * uint32(opt.BitDepth/8)

	p := make([]byte, 16)
	binary.LittleEndian.PutUint16(p[0:], opt.AudioFormat)
	binary.LittleEndian.PutUint16(p[2:], opt.NumChans)
	binary.LittleEndian.PutUint32(p[4:], opt.SampleRate)
	binary.LittleEndian.PutUint32(p[8:], opt.SampleRate*bytesPerFrame)
	binary.LittleEndian.PutUint16(p[12:], uint16(bytesPerFrame))
	binary.LittleEndian.PutUint16(p[14:], opt.BitDepth)

	return p
}

func writeChunk(buf *bytes.Buffer, id string, payload []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)
	if len(payload)%2 == 1 {
		buf.WriteByte(0)
	}
}
