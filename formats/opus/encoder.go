package opus

import "fmt"

// Sample rates the Opus codec accepts.
var supportedRates = []int{48000, 24000, 16000, 12000, 8000}

// Config holds the parameters of one Opus encoding session.
type Config struct {
	// SampleRate of the input PCM in Hz; one of 8000, 12000, 16000,
	// 24000 or 48000.
	SampleRate int
	// Channels of input PCM; 1 or 2.
	Channels int
	// BitRate target in bits per second; 0 leaves the library default.
	BitRate int
	// DTX enables discontinuous transmission: near-silent input produces
	// tiny packets that Encode reports as no output.
	DTX bool
}

// Encoder adapts libopus to the codec.Encoder contract. Each Encode
// call consumes one 20 ms block of interleaved PCM and produces exactly
// one Opus packet.
type Encoder struct {
	eng       packetEncoder
	blockSize int
	channels  int
	out       []byte
}

// NewEncoder opens an encoding session.
func NewEncoder(cfg Config) (*Encoder, error) {
	return newEncoder(cfg, newPacketEncoder)
}

func newEncoder(cfg Config, open func(Config) (packetEncoder, error)) (*Encoder, error) {
	if cfg.Channels < 1 || cfg.Channels > 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannelLayout, cfg.Channels)
	}

	supported := false
	for _, rate := range supportedRates {
		if cfg.SampleRate == rate {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("%w: %d Hz", ErrUnsupportedSampleRate, cfg.SampleRate)
	}

	eng, err := open(cfg)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		eng:       eng,
		blockSize: cfg.SampleRate / 50, // 20 ms frames
		channels:  cfg.Channels,
		out:       make([]byte, maxPacketSize),
	}, nil
}

// BlockSize is the number of samples per channel every Encode call must
// supply.
func (e *Encoder) BlockSize() int { return e.blockSize }

// Encode consumes exactly one block of interleaved PCM and returns one
// Opus packet. With DTX enabled, silence may yield nil output. The
// returned slice is reused and only valid until the next Encode call.
func (e *Encoder) Encode(pcm []int16) ([]byte, error) {
	if len(pcm) != e.blockSize*e.channels {
		return nil, fmt.Errorf("%w: got %d samples, want %d",
			ErrInvalidBlockSize, len(pcm), e.blockSize*e.channels)
	}

	n, err := e.eng.Encode(pcm, e.out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	// Packets under 3 bytes carry no audio, only DTX keepalive
	if n < 3 {
		return nil, nil
	}

	return e.out[:n], nil
}

// Flush is a no-op: Opus packets are self-contained and the library
// holds no output back.
func (e *Encoder) Flush() ([]byte, error) { return nil, nil }

// Close releases the packet holder. The underlying library handle is
// garbage collected.
func (e *Encoder) Close() error {
	e.out = nil
	return nil
}
