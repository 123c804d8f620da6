package opus

import "github.com/avfoundry/audiocodec/codec"

// EncoderDescriptor describes the Opus encoder to the codec framework.
func EncoderDescriptor() codec.Descriptor {
	return codec.Descriptor{
		Name:          "libopus",
		LongName:      "Opus via libopus",
		Type:          codec.MediaTypeAudio,
		SampleFormats: []codec.SampleFormat{codec.SampleFormatS16},
		SampleRates:   supportedRates,
		Options: []codec.Option{
			{Name: "dtx", Help: "Enable discontinuous transmission.", Default: 0, Min: 0, Max: 1},
		},
	}
}

// Register adds the Opus encoder to a codec registry.
func Register(r *codec.Registry) {
	r.RegisterEncoder(EncoderDescriptor(), func(cfg codec.Config) (codec.Encoder, error) {
		return NewEncoder(Config{
			SampleRate: cfg.SampleRate,
			Channels:   cfg.Channels,
			BitRate:    cfg.BitRate,
			DTX:        cfg.ParamOr("dtx", 0) != 0,
		})
	})
}
