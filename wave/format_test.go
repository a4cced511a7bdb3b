// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"testing"
)

func TestFormatDescriptor_SupportedPairs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag   uint16
		bits  uint16
		want  SampleFormat
		label string
	}{
		{FormatPCM, 8, SampleFormatU8, "u8"},
		{FormatPCM, 16, SampleFormatS16, "s16"},
		{FormatPCM, 32, SampleFormatS32, "s32"},
		{FormatIEEEFloat, 32, SampleFormatF32, "f32"},
		{FormatIEEEFloat, 64, SampleFormatF64, "f64"},
	}

	for _, c := range cases {
		desc := FormatDescriptor{AudioFormat: c.tag, BitDepth: c.bits}

		if !desc.Valid() {
			t.Errorf("Valid() = false for %s", c.label)
		}
		if got := desc.sampleFormat(); got != c.want {
			t.Errorf("sampleFormat() = %v for %s, want %v", got, c.label, c.want)
		}
		if got := desc.sampleFormat().String(); got != c.label {
			t.Errorf("String() = %q, want %q", got, c.label)
		}
	}
}

func TestFormatDescriptor_UnsupportedPairs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag  uint16
		bits uint16
	}{
		{FormatPCM, 24},
		{FormatPCM, 64},
		{FormatIEEEFloat, 16},
		{FormatIEEEFloat, 8},
		{2, 16},      // ADPCM
		{0x0055, 16}, // MP3
		{0, 0},
	}

	for _, c := range cases {
		desc := FormatDescriptor{AudioFormat: c.tag, BitDepth: c.bits}

		if desc.Valid() {
			t.Errorf("Valid() = true for tag %d / %d bits", c.tag, c.bits)
		}
		if got := desc.sampleFormat(); got != SampleFormatUnknown {
			t.Errorf("sampleFormat() = %v for tag %d / %d bits, want unknown", got, c.tag, c.bits)
		}
	}
}

func TestDecodeFormat(t *testing.T) {
	t.Parallel()

	payload := []byte{
		0x01, 0x00, // PCM
		0x02, 0x00, // stereo
		0x44, 0xac, 0x00, 0x00, // 44100 Hz
		0x10, 0xb1, 0x02, 0x00, // 176400 bytes/sec
		0x04, 0x00, // block align
		0x10, 0x00, // 16 bits
	}

	desc, err := DecodeFormat(payload)
	if err != nil {
		t.Fatalf("DecodeFormat() error = %v, want nil", err)
	}

	if desc.AudioFormat != FormatPCM {
		t.Errorf("AudioFormat = %d, want %d", desc.AudioFormat, FormatPCM)
	}
	if desc.NumChans != 2 {
		t.Errorf("NumChans = %d, want 2", desc.NumChans)
	}
	if desc.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", desc.SampleRate)
	}
	if desc.AvgBytesPerSec != 176400 {
		t.Errorf("AvgBytesPerSec = %d, want 176400", desc.AvgBytesPerSec)
	}
	if desc.BlockAlign != 4 {
		t.Errorf("BlockAlign = %d, want 4", desc.BlockAlign)
	}
	if desc.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", desc.BitDepth)
	}
}

func TestDecodeFormat_Short(t *testing.T) {
	t.Parallel()

	_, err := DecodeFormat(make([]byte, 10))
	if !errors.Is(err, ErrShortFormatChunk) {
		t.Errorf("DecodeFormat() error = %v, want ErrShortFormatChunk", err)
	}
}
