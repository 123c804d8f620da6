// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
)

const (
	// Samples per channel in an MPEG1 layer III frame; the holding buffer
	// is sized for the worst-case output of one input block plus headroom.
	mpaFrameSize = 1152
	bufferSize   = 7200 + 2*mpaFrameSize + mpaFrameSize/4

	// Mid-range speed/quality trade-off on the library's 0 (best, slow)
	// to 9 (fastest) scale, used when the caller does not pick one.
	qualityDefault = 5

	// Divisor turning the caller's quality scale into the library's VBR
	// quality value.
	qpToLambda = 118
)

// CompressionDefault selects qualityDefault; any non-negative
// CompressionLevel is handed to the library unchanged.
const CompressionDefault = -1

// Config holds the parameters of one MP3 encoding session.
type Config struct {
	// SampleRate of the input PCM in Hz. See EncoderDescriptor for the
	// rates the encoder accepts.
	SampleRate int
	// Channels of input PCM; 1 or 2.
	Channels int
	// BitRate target in bits per second, e.g. 128000. Ignored when VBR
	// is set.
	BitRate int
	// CompressionLevel on the library's 0-9 scale, or CompressionDefault.
	CompressionLevel int
	// Quality drives the variable-bitrate quality when VBR is set; the
	// value is divided by qpToLambda before reaching the library.
	Quality int
	// VBR selects quality-driven variable bitrate instead of BitRate.
	VBR bool
	// DisableReservoir turns off the bit reservoir. The zero value keeps
	// the reservoir enabled, the library default.
	DisableReservoir bool
}

// Encoder adapts libmp3lame to the codec.Encoder contract: it feeds PCM
// blocks to the library, accumulates the variable-length output in a
// holding buffer, and hands back exactly one complete MPEG audio frame
// per call once enough bytes are buffered.
//
// An Encoder belongs to a single session. Calls must not overlap, and
// Close must be called exactly once; afterwards the Encoder is unusable.
type Encoder struct {
	eng       engine
	buf       []byte // holding buffer for encoder output
	w         int    // valid bytes in buf awaiting frame extraction
	frame     []byte // reusable holder for the extracted frame
	blockSize int
	channels  int
}

// NewEncoder opens an encoding session. On failure no encoder instance
// is left behind: a handle created before a later configuration error is
// released before the error is returned.
func NewEncoder(cfg Config) (*Encoder, error) {
	return newEncoder(cfg, newEngine)
}

func newEncoder(cfg Config, open func() (engine, error)) (*Encoder, error) {
	if cfg.Channels < 1 || cfg.Channels > 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannelLayout, cfg.Channels)
	}

	eng, err := open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailure, err)
	}

	eng.setInSampleRate(cfg.SampleRate)
	eng.setOutSampleRate(cfg.SampleRate)
	eng.setChannels(cfg.Channels)

	if cfg.CompressionLevel < 0 {
		eng.setQuality(qualityDefault)
	} else {
		eng.setQuality(cfg.CompressionLevel)
	}

	if cfg.Channels > 1 {
		eng.setMode(modeJointStereo)
	} else {
		eng.setMode(modeMono)
	}

	eng.setBitRateKbps(cfg.BitRate / 1000)

	if cfg.VBR {
		// Quality-driven mode: the bitrate is unset and the VBR quality
		// derived from the caller's quality scale.
		eng.setBitRateKbps(0)
		eng.setVBR(vbrDefault)
		eng.setVBRQuality(float32(cfg.Quality) / qpToLambda)
	}

	// The adapter never writes the Xing/VBR metadata frame
	eng.setWriteVBRTag(false)
	eng.setDisableReservoir(cfg.DisableReservoir)

	if eng.initParams() < 0 {
		eng.close()
		return nil, ErrConfigurationRejected
	}

	return &Encoder{
		eng:       eng,
		buf:       make([]byte, bufferSize),
		frame:     make([]byte, bufferSize),
		blockSize: eng.blockSize(),
		channels:  cfg.Channels,
	}, nil
}

// BlockSize is the number of samples per channel every Encode call must
// supply.
func (e *Encoder) BlockSize() int { return e.blockSize }

// Encode consumes exactly one block of interleaved PCM and returns the
// next complete MPEG audio frame, or nil while the encoder has not yet
// buffered a full frame. The returned slice is reused and only valid
// until the next Encode or Flush call.
func (e *Encoder) Encode(pcm []int16) ([]byte, error) {
	if len(pcm) != e.blockSize*e.channels {
		return nil, fmt.Errorf("%w: got %d samples, want %d",
			ErrInvalidBlockSize, len(pcm), e.blockSize*e.channels)
	}
	return e.produce(pcm)
}

// Flush signals end of input and drains the samples the library retains
// for block lookahead, one frame per call. Once everything is drained it
// keeps returning nil; flushing an exhausted encoder is a harmless no-op.
func (e *Encoder) Flush() ([]byte, error) {
	return e.produce(nil)
}

func (e *Encoder) produce(pcm []int16) ([]byte, error) {
	var n int
	switch {
	case pcm == nil:
		n = e.eng.flush(e.buf[e.w:])
	case e.channels > 1:
		n = e.eng.encodeInterleaved(pcm, e.buf[e.w:])
	default:
		n = e.eng.encodeMono(pcm, e.buf[e.w:])
	}

	if n < 0 {
		if n == engineErrBufferTooSmall {
			return nil, fmt.Errorf("%w: write offset %d, free bytes %d",
				ErrOutputBufferTooSmall, e.w, len(e.buf)-e.w)
		}
		return nil, fmt.Errorf("%w: library returned %d", ErrEncodeFailed, n)
	}

	e.w += n

	// A frame header is 4 bytes; until one is buffered there is nothing
	// to extract.
	if e.w < 4 {
		return nil, nil
	}

	info, err := parseFrameHeader(binary.BigEndian.Uint32(e.buf[:4]))
	if err != nil {
		return nil, err
	}

	if info.frameSize > e.w {
		// Frame not complete yet; caller supplies more input or flushes
		return nil, nil
	}

	n = info.frameSize
	copy(e.frame, e.buf[:n])
	e.w -= n
	copy(e.buf, e.buf[n:n+e.w])

	return e.frame[:n], nil
}

// Close releases the frame holder and the library handle. The library
// does not tolerate a double release, so Close must be called exactly
// once.
func (e *Encoder) Close() error {
	e.frame = nil
	e.eng.close()
	return nil
}
