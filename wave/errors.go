// SPDX-License-Identifier: EPL-2.0

package wave

import "errors"

var (
	ErrEmptyInput         = errors.New("empty input")
	ErrMalformedContainer = errors.New("not a RIFF/WAVE container")
	ErrShortFormatChunk   = errors.New("fmt chunk payload too short")
	ErrUnsupportedFormat  = errors.New("unsupported sample encoding or bit depth")
	ErrMissingFormatChunk = errors.New("no fmt chunk in container")
	ErrMissingDataChunk   = errors.New("no data chunk in container")
	ErrSamplesNotLoaded   = errors.New("sample data not materialized")
	ErrAllocFailed        = errors.New("allocator returned no buffer")
)
