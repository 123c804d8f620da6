package codec

import (
	"errors"
	"io"
	"testing"

	"github.com/avfoundry/audiocodec/audio"
)

// fakeEncoder is a minimal Encoder used to observe factory calls.
type fakeEncoder struct {
	cfg Config
}

func (f *fakeEncoder) BlockSize() int                 { return 1152 }
func (f *fakeEncoder) Encode(pcm []int16) ([]byte, error) { return nil, nil }
func (f *fakeEncoder) Flush() ([]byte, error)         { return nil, nil }
func (f *fakeEncoder) Close() error                   { return nil }

type fakeDecoder struct{ name string }

func (d *fakeDecoder) Decode(r io.Reader) (audio.Source, error) { return nil, nil }

func testDescriptor() Descriptor {
	return Descriptor{
		Name:          "fake",
		LongName:      "fake test codec",
		Type:          MediaTypeAudio,
		SampleFormats: []SampleFormat{SampleFormatS16},
		SampleRates:   []int{8000, 44100, 48000},
		Capabilities:  CapDelay,
		Options: []Option{
			{Name: "reservoir", Help: "Use bit reservoir.", Default: 1, Min: 0, Max: 1},
		},
	}
}

func TestRegistry_RegisterAndLookupEncoder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.RegisterEncoder(testDescriptor(), func(cfg Config) (Encoder, error) {
		return &fakeEncoder{cfg: cfg}, nil
	})

	desc, ok := registry.Encoder("fake")
	if !ok {
		t.Fatal("Registry.Encoder() failed to find registered codec")
	}
	if desc.LongName != "fake test codec" {
		t.Errorf("descriptor LongName = %q", desc.LongName)
	}

	if _, ok := registry.Encoder("nonexistent"); ok {
		t.Error("Registry.Encoder() found a codec that was never registered")
	}
}

func TestRegistry_RegisterAndLookupDecoder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &fakeDecoder{name: "wav"}
	mp3Decoder := &fakeDecoder{name: "mp3"}

	registry.RegisterDecoder("wav", wavDecoder)
	registry.RegisterDecoder("mp3", mp3Decoder)

	tests := []struct {
		format string
		want   audio.Decoder
		wantOK bool
	}{
		{"wav", wavDecoder, true},
		{"mp3", mp3Decoder, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Decoder(tt.format)
			if ok != tt.wantOK {
				t.Errorf("Registry.Decoder(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Decoder(%q) returned wrong decoder", tt.format)
			}
		})
	}
}

func TestRegistry_OpenEncoder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.RegisterEncoder(testDescriptor(), func(cfg Config) (Encoder, error) {
		return &fakeEncoder{cfg: cfg}, nil
	})

	enc, err := registry.OpenEncoder("fake", Config{SampleRate: 44100, Channels: 2})
	if err != nil {
		t.Fatalf("OpenEncoder() error = %v", err)
	}
	if enc.BlockSize() != 1152 {
		t.Errorf("BlockSize() = %d, want 1152", enc.BlockSize())
	}
}

func TestRegistry_OpenEncoderValidation(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.RegisterEncoder(testDescriptor(), func(cfg Config) (Encoder, error) {
		return &fakeEncoder{cfg: cfg}, nil
	})

	tests := []struct {
		name    string
		codec   string
		cfg     Config
		wantErr error
	}{
		{
			name:    "unknown codec",
			codec:   "nope",
			cfg:     Config{SampleRate: 44100},
			wantErr: ErrUnknownCodec,
		},
		{
			name:    "rate outside allow-list",
			codec:   "fake",
			cfg:     Config{SampleRate: 96000},
			wantErr: ErrUnsupportedSampleRate,
		},
		{
			name:    "unknown option",
			codec:   "fake",
			cfg:     Config{SampleRate: 44100, Params: map[string]int{"mystery": 1}},
			wantErr: ErrUnknownOption,
		},
		{
			name:    "option out of range",
			codec:   "fake",
			cfg:     Config{SampleRate: 44100, Params: map[string]int{"reservoir": 2}},
			wantErr: ErrOptionOutOfRange,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := registry.OpenEncoder(tt.codec, tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("OpenEncoder() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_Encoders(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	desc := testDescriptor()
	registry.RegisterEncoder(desc, func(cfg Config) (Encoder, error) {
		return &fakeEncoder{cfg: cfg}, nil
	})

	names := registry.Encoders()
	if len(names) != 1 || names[0] != "fake" {
		t.Errorf("Encoders() = %v, want [fake]", names)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &fakeDecoder{name: "test"}

	done := make(chan bool)
	for iter := 0; iter < 10; iter++ {
		go func() {
			registry.RegisterDecoder("format", decoder)
			done <- true
		}()
	}
	for iter := 0; iter < 10; iter++ {
		go func() {
			_, _ = registry.Decoder("format")
			done <- true
		}()
	}
	for iter := 0; iter < 20; iter++ {
		<-done
	}

	got, ok := registry.Decoder("format")
	if !ok || got != decoder {
		t.Error("Registry lost the decoder after concurrent operations")
	}
}
