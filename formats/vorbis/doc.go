// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure-Go Vorbis
// decoder, so no native libraries are needed.
//
// # Decoding Ogg Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source with the stream's own sample rate
// and channel count. Vorbis decodes natively to float32, so samples pass
// through without conversion.
//
// # Limitations
//
// Note:
//   - Vorbis writing is not supported (decoding only)
//   - Chained Ogg streams decode as a single logical stream
//   - ReadSamples only fills whole frames; a destination not divisible
//     by the channel count leaves the tail untouched
package vorbis
