package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/avfoundry/audiocodec/audio"
)

// oggReader is the slice of oggvorbis.Reader the source needs; an
// interface so tests can inject a fake.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples reads interleaved float32 samples straight from the
// decoder. The library wants the destination length to be a multiple of
// the channel count, so a trailing partial frame in dst goes unused.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) < s.channels {
		return 0, nil
	}

	usable := (len(dst) / s.channels) * s.channels

	n, err := s.dec.Read(dst[:usable])
	if n == 0 && err != nil {
		return 0, err
	}

	return n, err
}

// Decoder reads Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
