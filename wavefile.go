// SPDX-License-Identifier: EPL-2.0

package wavefile

import "github.com/ik5/wavefile/wave"

// Load reads the whole WAVE file at path into memory and returns its
// parsed handle, using the default heap allocator.
//
// The handle owns the file image: metadata queries and Samples are all
// answered from memory, and Release frees the image when the caller is
// done. For large files whose samples are not needed up front, Info is
// the cheaper entry point.
//
// Example:
//
//	f, err := wavefile.Load("speech.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer f.Release()
//
//	pcm, _ := f.Samples()
//	fmt.Printf("%d Hz, %d channels, %d bytes of samples\n",
//	    f.SampleRate(), f.Channels(), len(pcm))
func Load(path string) (*wave.File, error) {
	return wave.LoadPath(path, nil)
}

// Info resolves the metadata of the WAVE file at path without reading
// its sample payload, using the default heap allocator.
//
// Only the chunk headers and the format payload are read; the samples
// stay on disk. The handle reports the same sample rate, channel
// count, sample format and sample region as a full Load would, and
// SampleRegion (or wave.File.SampleReader with a reopened file) gives
// direct access to the audio bytes later.
//
// Example:
//
//	f, err := wavefile.Info("concert.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer f.Release()
//
//	fmt.Printf("%s, %v long\n", f.SampleFormat(), f.Duration())
func Info(path string) (*wave.File, error) {
	return wave.LoadPathInfo(path, nil)
}
