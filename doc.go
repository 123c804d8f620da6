// SPDX-License-Identifier: EPL-2.0

// Package audiocodec provides audio encoding, decoding and processing
// for Go applications.
//
// The package ties three layers together:
//
//   - codec: encoder descriptors, a registry, and the Encoder contract
//     (fixed-size PCM blocks in, encoded frames out)
//   - formats: per-format codecs: MP3 (libmp3lame encode, go-mp3
//     decode), Opus (libopus encode), WAV, AIFF and Ogg Vorbis decode
//   - audio: the Source abstraction plus Resampler and MonoMixer
//     pipeline stages
//
// # Quick Start
//
// Transcode pumps any decoded source through any registered encoder:
//
//	reg := codec.NewRegistry()
//	mp3.Register(reg)
//
//	f, _ := os.Open("input.wav")
//	src, _ := wav.Decoder{}.Decode(f)
//
//	enc, _ := reg.OpenEncoder("mp3", codec.Config{
//	    SampleRate:       44100,
//	    Channels:         2,
//	    BitRate:          128000,
//	    CompressionLevel: codec.CompressionDefault,
//	})
//	defer enc.Close()
//
//	out, _ := os.Create("output.mp3")
//	written, err := audiocodec.Transcode(out, src, enc, 44100, 2)
//
// Transcode resamples and remixes the source to the encoder's
// configuration, chunks the PCM into exact encoder blocks, and drains
// the encoder's delayed output at the end.
//
// # Processing Pipeline
//
// For direct PCM work without an encoder, build the pipeline by hand:
//
//	resampler := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(resampler)
//
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// or collect everything at once:
//
//	samples, rate, _ := audiocodec.ResampleToMono16(src, 8000, 4096)
//
// # Native Dependencies
//
// Decoding and the processing stages are pure Go. The MP3 and Opus
// encoders bind to libmp3lame and libopus through cgo; without cgo
// their constructors return an error and everything else keeps working.
package audiocodec
