// SPDX-License-Identifier: EPL-2.0

package riff

import "errors"

var (
	ErrShortHeader = errors.New("short RIFF container header")
	ErrChunkBounds = errors.New("chunk size exceeds container bound")
)
