// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"sync"

	"github.com/avfoundry/audiocodec/audio"
)

// EncoderFactory opens a new encoder session for a validated Config.
type EncoderFactory func(cfg Config) (Encoder, error)

type encoderEntry struct {
	desc    Descriptor
	factory EncoderFactory
}

// Registry maps codec names to encoder descriptors and format names to
// decoders. Registration and lookup are safe for concurrent use.
type Registry struct {
	encoders map[string]encoderEntry
	decoders map[string]audio.Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		encoders: make(map[string]encoderEntry),
		decoders: make(map[string]audio.Decoder),
		mtx:      &sync.Mutex{},
	}
}

// RegisterEncoder adds an encoder under its descriptor name.
func (r *Registry) RegisterEncoder(desc Descriptor, factory EncoderFactory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[desc.Name] = encoderEntry{desc: desc, factory: factory}
}

// RegisterDecoder adds a decoder under a format key (e.g. "wav", "mp3").
func (r *Registry) RegisterDecoder(format string, d audio.Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[format] = d
}

// Encoder returns the descriptor registered under name.
func (r *Registry) Encoder(name string) (Descriptor, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[name]
	return e.desc, ok
}

// Decoder returns the decoder registered under format.
func (r *Registry) Decoder(format string) (audio.Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.decoders[format]
	return d, ok
}

// Encoders lists the registered encoder names.
func (r *Registry) Encoders() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.encoders))
	for name := range r.encoders {
		names = append(names, name)
	}
	return names
}

// OpenEncoder validates cfg against the named codec's descriptor and, if
// it passes, opens a new encoder session.
func (r *Registry) OpenEncoder(name string, cfg Config) (Encoder, error) {
	r.mtx.Lock()
	e, ok := r.encoders[name]
	r.mtx.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, name)
	}

	if !e.desc.SupportsRate(cfg.SampleRate) {
		return nil, fmt.Errorf("%w: %d Hz not supported by %s",
			ErrUnsupportedSampleRate, cfg.SampleRate, name)
	}

	for param, value := range cfg.Params {
		opt, ok := e.desc.Option(param)
		if !ok {
			return nil, fmt.Errorf("%w: %q for codec %s", ErrUnknownOption, param, name)
		}
		if value < opt.Min || value > opt.Max {
			return nil, fmt.Errorf("%w: %s=%d outside [%d, %d]",
				ErrOptionOutOfRange, param, value, opt.Min, opt.Max)
		}
	}

	return e.factory(cfg)
}
