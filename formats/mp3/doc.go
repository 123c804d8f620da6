// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio encoding and decoding.
//
// Encoding is backed by the LAME library (libmp3lame) through cgo and
// exposed as a codec.Encoder. Decoding uses the pure-Go
// github.com/hajimehoshi/go-mp3 package and produces an audio.Source.
//
// # Encoding
//
// Open an encoding session with a Config, feed it fixed-size blocks of
// interleaved 16-bit PCM, and collect one complete MPEG audio frame per
// call once enough output has accumulated:
//
//	enc, err := mp3.NewEncoder(mp3.Config{
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BitRate:    128000,
//	    CompressionLevel: mp3.CompressionDefault,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	defer enc.Close()
//
//	block := make([]int16, enc.BlockSize()*2)
//	for { // fill block with PCM...
//	    frame, err := enc.Encode(block)
//	    if err != nil {
//	        // Handle error
//	    }
//	    if frame != nil {
//	        out.Write(frame)
//	    }
//	}
//
// The library buffers lookahead internally, so output lags input. After
// the last block, drain with Flush until it returns nil:
//
//	for {
//	    frame, err := enc.Flush()
//	    if err != nil || frame == nil {
//	        break
//	    }
//	    out.Write(frame)
//	}
//
// Frame slices returned by Encode and Flush are reused between calls;
// copy them if they must outlive the next call.
//
// # Variable Bitrate
//
// Setting Config.VBR switches to quality-driven variable bitrate. The
// BitRate field is ignored and Config.Quality drives the library's VBR
// quality instead. The encoder never writes a Xing/VBR metadata frame,
// so VBR output plays with correct duration only in players that scan
// frame headers.
//
// # Build Requirements
//
// The encoder needs cgo and libmp3lame at build time:
//
//	apt install libmp3lame-dev   # Debian/Ubuntu
//	brew install lame            # macOS
//
// Without cgo, NewEncoder returns an error and decoding still works.
//
// # Decoding
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Decoder output is always stereo float32; use audio.NewMonoMixer and
// audio.NewResampler to convert.
//
// # Registration
//
// Register wires both directions into a codec.Registry, making the
// encoder reachable through codec.OpenEncoder with the name "mp3" and
// option validation driven by EncoderDescriptor:
//
//	reg := codec.NewRegistry()
//	mp3.Register(reg)
//	enc, err := reg.OpenEncoder("mp3", codec.Config{
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BitRate:    128000,
//	    CompressionLevel: codec.CompressionDefault,
//	})
//
// # Limitations
//
// Note:
//   - Encoding accepts 1 or 2 channels only
//   - The input sample rate must be one the MPEG layer III standard
//     supports; see EncoderDescriptor for the list
//   - Free-format streams (bitrate index 0) are not handled
//   - Decoder output is always stereo (use MonoMixer to convert)
package mp3
