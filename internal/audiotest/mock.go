// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform produces the sample value for a given frame and channel.
type Waveform func(frame, channel int) float32

// Source generates deterministic audio and implements the audio.Source
// interface (without importing it, to stay import-cycle free).
type Source struct {
	sampleRate  int
	channels    int
	totalFrames int
	read        int
	waveform    Waveform
}

// NewSource creates a generator producing totalFrames frames of audio
// from the given waveform.
func NewSource(sampleRate, channels, totalFrames int, waveform Waveform) *Source {
	return &Source{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilence generates totalFrames frames of silence.
func NewSilence(sampleRate, channels, totalFrames int) *Source {
	return NewSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return 0.0
	})
}

// NewSine generates a sine wave at the given frequency on all channels.
func NewSine(sampleRate, channels, totalFrames int, frequency float64) *Source {
	return NewSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstant generates a constant value on all channels.
func NewConstant(sampleRate, channels, totalFrames int, value float32) *Source {
	return NewSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return value
	})
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }
func (s *Source) Close() error    { return nil }

// Reset rewinds the generator so the source can be read again.
func (s *Source) Reset() {
	s.read = 0
}

// ReadSamples fills dst with interleaved samples, whole frames only.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.read >= s.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.channels, s.totalFrames-s.read)

	for frame := 0; frame < frames; frame++ {
		for ch := 0; ch < s.channels; ch++ {
			dst[frame*s.channels+ch] = s.waveform(s.read+frame, ch)
		}
	}

	s.read += frames
	samples := frames * s.channels

	if s.read >= s.totalFrames {
		return samples, io.EOF
	}

	return samples, nil
}
