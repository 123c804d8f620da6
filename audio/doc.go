// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio processing primitives the
// rest of the library is built on.
//
// # Source Interface
//
// The Source interface is the common currency between decoders, the
// processing stages, and the encoder pump:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Every format decoder returns a Source, and every processing stage both
// consumes and implements it, so stages chain freely.
//
// # Resampling
//
// The Resampler changes the sample rate of a stream using Catmull-Rom
// cubic interpolation:
//
//	resampler := audio.NewResampler(source, 44100)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Both upsampling and downsampling are supported; downsampling applies a
// simple low-pass filter against aliasing.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//
// Encoders that only accept one or two channels use it to fold wider
// layouts down before encoding.
//
// # Sample Format
//
// Samples are interleaved float32 values in [-1.0, 1.0]. Conversion to
// and from 16-bit PCM lives in the utils package.
//
// # Error Handling
//
// Streaming functions return io.EOF when the stream ends:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // process n samples from buf
//	}
package audio
