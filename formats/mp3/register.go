// SPDX-License-Identifier: EPL-2.0

package mp3

import "github.com/avfoundry/audiocodec/codec"

// EncoderDescriptor describes the MP3 encoder to the codec framework.
func EncoderDescriptor() codec.Descriptor {
	return codec.Descriptor{
		Name:          "mp3",
		LongName:      "MP3 (MPEG audio layer 3) via libmp3lame",
		Type:          codec.MediaTypeAudio,
		SampleFormats: []codec.SampleFormat{codec.SampleFormatS16},
		SampleRates: []int{
			44100, 48000, 32000, 22050, 24000, 16000, 11025, 12000, 8000,
		},
		// Output lags input: the library buffers lookahead that only a
		// flush drains
		Capabilities: codec.CapDelay,
		Options: []codec.Option{
			{Name: "reservoir", Help: "Use bit reservoir.", Default: 1, Min: 0, Max: 1},
		},
	}
}

// Register adds the MP3 encoder and decoder to a codec registry.
func Register(r *codec.Registry) {
	r.RegisterEncoder(EncoderDescriptor(), func(cfg codec.Config) (codec.Encoder, error) {
		return NewEncoder(Config{
			SampleRate:       cfg.SampleRate,
			Channels:         cfg.Channels,
			BitRate:          cfg.BitRate,
			CompressionLevel: cfg.CompressionLevel,
			Quality:          cfg.Quality,
			VBR:              cfg.VBR,
			DisableReservoir: cfg.ParamOr("reservoir", 1) == 0,
		})
	})
	r.RegisterDecoder("mp3", Decoder{})
}
