// SPDX-License-Identifier: EPL-2.0

package codec

// MediaType classifies what kind of stream a codec handles.
type MediaType int

const (
	MediaTypeAudio MediaType = iota
)

func (t MediaType) String() string {
	switch t {
	case MediaTypeAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// SampleFormat identifies the PCM representation an encoder accepts.
type SampleFormat int

const (
	// SampleFormatS16 is interleaved signed 16-bit PCM.
	SampleFormatS16 SampleFormat = iota
)

func (f SampleFormat) String() string {
	switch f {
	case SampleFormatS16:
		return "s16"
	default:
		return "unknown"
	}
}

// Capability flags advertised by a codec descriptor.
type Capability uint

const (
	// CapDelay marks codecs whose output lags behind their input: the
	// caller must keep flushing after the last sample block to drain
	// whatever the codec still holds.
	CapDelay Capability = 1 << iota
)

// Option declares one user-configurable codec parameter. The table is
// purely declarative: frontends read it to build help text and to
// validate user input before opening an encoder.
type Option struct {
	Name    string
	Help    string
	Default int
	Min     int
	Max     int
}

// Descriptor describes a codec to the framework: identity, the input it
// accepts, and the options it understands.
type Descriptor struct {
	// Name is the registry key, e.g. "mp3".
	Name string
	// LongName is a human-readable description.
	LongName string
	// Type of media handled.
	Type MediaType
	// SampleFormats the encoder accepts. Empty means unconstrained.
	SampleFormats []SampleFormat
	// SampleRates is an explicit allow-list in Hz. Empty means any rate.
	SampleRates []int
	// Capabilities flags.
	Capabilities Capability
	// Options the codec exposes.
	Options []Option
}

// SupportsRate reports whether rate is allowed by the descriptor.
func (d *Descriptor) SupportsRate(rate int) bool {
	if len(d.SampleRates) == 0 {
		return true
	}
	for _, r := range d.SampleRates {
		if r == rate {
			return true
		}
	}
	return false
}

// Option looks up a declared option by name.
func (d *Descriptor) Option(name string) (Option, bool) {
	for _, o := range d.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// Encoder turns fixed-size blocks of PCM samples into encoded frames.
//
// An Encoder is owned by a single session: no concurrent calls may be
// issued against the same instance, and Close must be called exactly
// once, after which the instance is unusable.
type Encoder interface {
	// BlockSize is the number of samples per channel an Encode call expects.
	BlockSize() int
	// Encode consumes exactly one block of interleaved PCM and returns
	// the next complete encoded frame, or nil when the codec has not
	// accumulated a full frame yet. The returned slice is only valid
	// until the next Encode or Flush call.
	Encode(pcm []int16) ([]byte, error)
	// Flush signals end of input and drains buffered data, one frame per
	// call. A nil result means nothing is left; flushing an exhausted
	// encoder stays a harmless no-op.
	Flush() ([]byte, error)
	// Close releases the encoder's resources.
	Close() error
}

// Config carries the caller's encoding parameters to an encoder factory.
type Config struct {
	// SampleRate of the input PCM in Hz.
	SampleRate int
	// Channels in the input PCM.
	Channels int
	// BitRate target in bits per second. Ignored in quality-driven modes.
	BitRate int
	// CompressionLevel selects the codec's speed/quality trade-off.
	// CompressionDefault lets the codec pick.
	CompressionLevel int
	// Quality drives quality-based variable bitrate modes when VBR is set.
	Quality int
	// VBR requests quality-driven variable bitrate instead of BitRate.
	VBR bool
	// Params holds codec-specific options declared in the descriptor's
	// option table, keyed by option name.
	Params map[string]int
}

// CompressionDefault asks the codec to use its default compression level.
const CompressionDefault = -1

// ParamOr returns the named codec option, falling back to the
// descriptor-declared default when the caller did not set it.
func (c *Config) ParamOr(name string, def int) int {
	if c.Params == nil {
		return def
	}
	if v, ok := c.Params[name]; ok {
		return v
	}
	return def
}
