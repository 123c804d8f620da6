// SPDX-License-Identifier: EPL-2.0

package audiocodec

import (
	"errors"
	"fmt"
	"io"

	"github.com/avfoundry/audiocodec/audio"
	"github.com/avfoundry/audiocodec/codec"
	"github.com/avfoundry/audiocodec/utils"
)

// ErrUnsupportedChannels reports a channel count Transcode cannot
// produce from the given source.
var ErrUnsupportedChannels = errors.New("unsupported channel count")

// Transcode pumps an audio source through an encoder and writes the
// encoded stream to w. The source is resampled to sampleRate and mixed
// to the requested channel count as needed, then fed to the encoder in
// exact BlockSize chunks; a final partial block is zero padded. After
// the source is exhausted the encoder is flushed until it reports no
// more output.
//
// sampleRate and channels must match the configuration the encoder was
// opened with. Transcode returns the number of encoded bytes written.
func Transcode(w io.Writer, src audio.Source, enc codec.Encoder, sampleRate, channels int) (int64, error) {
	if channels < 1 || channels > 2 {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	pipe := src
	if pipe.SampleRate() != sampleRate {
		pipe = audio.NewResampler(pipe, sampleRate)
	}
	if channels == 1 && pipe.Channels() > 1 {
		pipe = audio.NewMonoMixer(pipe)
	}
	if channels == 2 && pipe.Channels() == 1 {
		pipe = &stereoUpmix{src: pipe}
	}
	if pipe.Channels() != channels {
		return 0, fmt.Errorf("%w: source has %d channels, want %d",
			ErrUnsupportedChannels, pipe.Channels(), channels)
	}

	blockSamples := enc.BlockSize() * channels
	fbuf := make([]float32, blockSamples)
	pcm := make([]int16, blockSamples)

	var written int64
	filled := 0

	flushBlock := func() error {
		utils.Float32BufToInt16(pcm, fbuf[:blockSamples])
		frame, err := enc.Encode(pcm)
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if frame != nil {
			n, err := w.Write(frame)
			written += int64(n)
			if err != nil {
				return fmt.Errorf("%w", err)
			}
		}
		filled = 0
		return nil
	}

	for {
		n, err := pipe.ReadSamples(fbuf[filled:])
		filled += n

		if filled == blockSamples {
			if err := flushBlock(); err != nil {
				return written, err
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return written, fmt.Errorf("%w", err)
		}
	}

	// Zero-pad the trailing partial block
	if filled > 0 {
		for i := filled; i < blockSamples; i++ {
			fbuf[i] = 0
		}
		if err := flushBlock(); err != nil {
			return written, err
		}
	}

	for {
		frame, err := enc.Flush()
		if err != nil {
			return written, fmt.Errorf("%w", err)
		}
		if frame == nil {
			break
		}
		n, err := w.Write(frame)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("%w", err)
		}
	}

	return written, nil
}

// stereoUpmix duplicates a mono source onto two channels.
type stereoUpmix struct {
	src audio.Source
	buf []float32
}

func (u *stereoUpmix) SampleRate() int { return u.src.SampleRate() }
func (u *stereoUpmix) Channels() int   { return 2 }
func (u *stereoUpmix) BufSize() int    { return u.src.BufSize() }
func (u *stereoUpmix) Close() error    { return u.src.Close() }

func (u *stereoUpmix) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / 2
	if frames == 0 {
		return 0, nil
	}

	if cap(u.buf) < frames {
		u.buf = make([]float32, frames)
	}
	u.buf = u.buf[:frames]

	n, err := u.src.ReadSamples(u.buf)
	for i := 0; i < n; i++ {
		dst[2*i] = u.buf[i]
		dst[2*i+1] = u.buf[i]
	}

	return n * 2, err
}
