package opus

import (
	"bytes"
	"errors"
	"testing"
)

// fakePacketEncoder stands in for the libopus encoder.
type fakePacketEncoder struct {
	packet  []byte
	err     error
	lastPCM []int16
	calls   int
}

func (f *fakePacketEncoder) Encode(pcm []int16, out []byte) (int, error) {
	f.calls++
	f.lastPCM = pcm
	if f.err != nil {
		return 0, f.err
	}
	return copy(out, f.packet), nil
}

func openFake(f *fakePacketEncoder) func(Config) (packetEncoder, error) {
	return func(Config) (packetEncoder, error) { return f, nil }
}

func monoConfig() Config {
	return Config{SampleRate: 48000, Channels: 1, BitRate: 64000}
}

func TestNewEncoder_ChannelValidation(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{0, 3, -1} {
		cfg := monoConfig()
		cfg.Channels = channels

		_, err := newEncoder(cfg, openFake(&fakePacketEncoder{}))
		if !errors.Is(err, ErrUnsupportedChannelLayout) {
			t.Errorf("channels=%d: error = %v, want ErrUnsupportedChannelLayout", channels, err)
		}
	}
}

func TestNewEncoder_SampleRateValidation(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{44100, 22050, 96000, 0} {
		cfg := monoConfig()
		cfg.SampleRate = rate

		_, err := newEncoder(cfg, openFake(&fakePacketEncoder{}))
		if !errors.Is(err, ErrUnsupportedSampleRate) {
			t.Errorf("rate=%d: error = %v, want ErrUnsupportedSampleRate", rate, err)
		}
	}
}

func TestNewEncoder_BlockSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate int
		want int
	}{
		{rate: 48000, want: 960},
		{rate: 24000, want: 480},
		{rate: 16000, want: 320},
		{rate: 12000, want: 240},
		{rate: 8000, want: 160},
	}

	for _, tt := range tests {
		cfg := monoConfig()
		cfg.SampleRate = tt.rate

		enc, err := newEncoder(cfg, openFake(&fakePacketEncoder{}))
		if err != nil {
			t.Fatalf("rate=%d: newEncoder() error = %v", tt.rate, err)
		}
		if enc.BlockSize() != tt.want {
			t.Errorf("rate=%d: BlockSize() = %d, want %d", tt.rate, enc.BlockSize(), tt.want)
		}
	}
}

func TestNewEncoder_OpenFailure(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("no libopus")
	_, err := newEncoder(monoConfig(), func(Config) (packetEncoder, error) {
		return nil, wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}

func TestEncode_RejectsWrongBlockSize(t *testing.T) {
	t.Parallel()

	enc, err := newEncoder(monoConfig(), openFake(&fakePacketEncoder{}))
	if err != nil {
		t.Fatalf("newEncoder() error = %v", err)
	}

	_, err = enc.Encode(make([]int16, 100))
	if !errors.Is(err, ErrInvalidBlockSize) {
		t.Errorf("error = %v, want ErrInvalidBlockSize", err)
	}
}

func TestEncode_ProducesPacket(t *testing.T) {
	t.Parallel()

	fake := &fakePacketEncoder{packet: []byte{0x78, 0x01, 0x02, 0x03}}
	enc, err := newEncoder(monoConfig(), openFake(fake))
	if err != nil {
		t.Fatalf("newEncoder() error = %v", err)
	}

	packet, err := enc.Encode(make([]int16, enc.BlockSize()))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if !bytes.Equal(packet, fake.packet) {
		t.Errorf("Encode() = %v, want %v", packet, fake.packet)
	}
	if len(fake.lastPCM) != enc.BlockSize() {
		t.Errorf("engine saw %d samples, want %d", len(fake.lastPCM), enc.BlockSize())
	}
}

func TestEncode_DTXPacketDropped(t *testing.T) {
	t.Parallel()

	// 2-byte packets are DTX keepalive, not audio
	fake := &fakePacketEncoder{packet: []byte{0x78, 0x00}}
	enc, err := newEncoder(monoConfig(), openFake(fake))
	if err != nil {
		t.Fatalf("newEncoder() error = %v", err)
	}

	packet, err := enc.Encode(make([]int16, enc.BlockSize()))
	if err != nil {
		t.Errorf("Encode() error = %v", err)
	}
	if packet != nil {
		t.Errorf("Encode() = %v, want nil for DTX packet", packet)
	}
}

func TestEncode_EngineFailure(t *testing.T) {
	t.Parallel()

	fake := &fakePacketEncoder{err: errors.New("opus: buffer too small")}
	enc, err := newEncoder(monoConfig(), openFake(fake))
	if err != nil {
		t.Fatalf("newEncoder() error = %v", err)
	}

	_, err = enc.Encode(make([]int16, enc.BlockSize()))
	if !errors.Is(err, ErrEncodeFailed) {
		t.Errorf("error = %v, want ErrEncodeFailed", err)
	}
}

func TestFlush_NoOp(t *testing.T) {
	t.Parallel()

	enc, err := newEncoder(monoConfig(), openFake(&fakePacketEncoder{}))
	if err != nil {
		t.Fatalf("newEncoder() error = %v", err)
	}

	packet, err := enc.Flush()
	if err != nil {
		t.Errorf("Flush() error = %v", err)
	}
	if packet != nil {
		t.Errorf("Flush() = %v, want nil", packet)
	}
}

func TestStereoBlockSize(t *testing.T) {
	t.Parallel()

	cfg := monoConfig()
	cfg.Channels = 2

	fake := &fakePacketEncoder{packet: []byte{1, 2, 3, 4}}
	enc, err := newEncoder(cfg, openFake(fake))
	if err != nil {
		t.Fatalf("newEncoder() error = %v", err)
	}

	// Stereo blocks carry twice the samples
	if _, err := enc.Encode(make([]int16, enc.BlockSize()*2)); err != nil {
		t.Errorf("Encode() error = %v", err)
	}

	_, err = enc.Encode(make([]int16, enc.BlockSize()))
	if !errors.Is(err, ErrInvalidBlockSize) {
		t.Errorf("mono-sized block error = %v, want ErrInvalidBlockSize", err)
	}
}
