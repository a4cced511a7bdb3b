// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	gariff "github.com/go-audio/riff"
)

// buildContainer serializes a RIFF/WAVE container with the given
// chunks, honouring the padding rule.
func buildContainer(chunks ...struct {
	id      string
	payload []byte
}) []byte {
	body := new(bytes.Buffer)
	for _, c := range chunks {
		body.WriteString(c.id)
		binary.Write(body, binary.LittleEndian, uint32(len(c.payload)))
		body.Write(c.payload)
		if len(c.payload)%2 == 1 {
			body.WriteByte(0)
		}
	}

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(4+body.Len()))
	buf.WriteString("WAVE")
	buf.Write(body.Bytes())
	return buf.Bytes()
}

func chunk(id string, payload []byte) struct {
	id      string
	payload []byte
} {
	return struct {
		id      string
		payload []byte
	}{id, payload}
}

func TestScanner_WalksChunks(t *testing.T) {
	t.Parallel()

	buf := buildContainer(
		chunk("fmt ", make([]byte, 16)),
		chunk("JUNK", make([]byte, 7)), // odd size, padded to 8
		chunk("data", []byte{1, 2, 3, 4}),
	)

	sc := NewScanner(bytes.NewReader(buf), HeaderSize, int64(len(buf)))

	type step struct {
		id   string
		size uint32
		off  int64
	}
	want := []step{
		{"fmt ", 16, 20},
		{"JUNK", 7, 44},
		{"data", 4, 60}, // 44 + 7 + 1 pad + 8
	}

	var got []step
	for sc.Scan() {
		got = append(got, step{sc.Chunk().ID.String(), sc.Chunk().Size, sc.PayloadOffset()})
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}

	if len(got) != len(want) {
		t.Fatalf("scanned %d chunks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScanner_PayloadReadBetweenScans(t *testing.T) {
	t.Parallel()

	buf := buildContainer(
		chunk("fmt ", []byte("0123456789abcdef")),
		chunk("data", []byte("xy")),
	)

	r := bytes.NewReader(buf)
	sc := NewScanner(r, HeaderSize, int64(len(buf)))

	if !sc.Scan() {
		t.Fatalf("Scan() = false, err = %v", sc.Err())
	}

	// Consume part of the payload; the next Scan must still land on
	// the data chunk because it seeks from an absolute offset.
	half := make([]byte, 8)
	if _, err := io.ReadFull(r, half); err != nil {
		t.Fatalf("payload read error = %v", err)
	}

	if !sc.Scan() {
		t.Fatalf("second Scan() = false, err = %v", sc.Err())
	}
	if sc.Chunk().ID != DataID {
		t.Errorf("second chunk = %q, want %q", sc.Chunk().ID, DataID)
	}
}

func TestScanner_Overrun(t *testing.T) {
	t.Parallel()

	// A chunk declaring more payload than the region holds.
	buf := buildContainer(chunk("data", []byte{1, 2, 3, 4}))
	binary.LittleEndian.PutUint32(buf[16:], 4096)

	sc := NewScanner(bytes.NewReader(buf), HeaderSize, int64(len(buf)))
	for sc.Scan() {
	}

	if !errors.Is(sc.Err(), ErrChunkBounds) {
		t.Errorf("Err() = %v, want ErrChunkBounds", sc.Err())
	}
}

func TestScanner_EmptyRegion(t *testing.T) {
	t.Parallel()

	buf := buildContainer()
	sc := NewScanner(bytes.NewReader(buf), HeaderSize, int64(len(buf)))

	if sc.Scan() {
		t.Error("Scan() = true on an empty region")
	}
	if err := sc.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

// TestScanner_GoAudioParity walks the same container with the
// go-audio/riff parser and checks both walkers agree on the chunk
// sequence. go-audio reports odd sizes already rounded up to the pad
// boundary, so the comparison accounts for that.
func TestScanner_GoAudioParity(t *testing.T) {
	t.Parallel()

	buf := buildContainer(
		chunk("fmt ", make([]byte, 16)),
		chunk("JUNK", make([]byte, 11)),
		chunk("data", make([]byte, 32)),
	)

	sc := NewScanner(bytes.NewReader(buf), HeaderSize, int64(len(buf)))

	p := gariff.New(bytes.NewReader(buf))
	if err := p.ParseHeaders(); err != nil {
		t.Fatalf("riff.ParseHeaders() error = %v", err)
	}

	for sc.Scan() {
		ch, err := p.NextChunk()
		if err != nil {
			t.Fatalf("riff.NextChunk() error = %v", err)
		}

		if [4]byte(sc.Chunk().ID) != ch.ID {
			t.Errorf("chunk id %q, go-audio saw %q", sc.Chunk().ID, ch.ID)
		}

		padded := int(sc.Chunk().Size + sc.Chunk().Size&1)
		if padded != ch.Size {
			t.Errorf("chunk %q size %d, go-audio saw %d", sc.Chunk().ID, padded, ch.Size)
		}

		ch.Drain()
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}

	if _, err := p.NextChunk(); !errors.Is(err, io.EOF) {
		t.Errorf("go-audio has chunks left, err = %v", err)
	}
}
