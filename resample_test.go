// SPDX-License-Identifier: EPL-2.0

package audiocodec

import (
	"testing"

	"github.com/avfoundry/audiocodec/internal/audiotest"
)

func TestResampleToMono16_Basic(t *testing.T) {
	t.Parallel()

	// One second of stereo audio at 16 kHz down to 8 kHz mono
	src := audiotest.NewSine(16000, 2, 16000, 440)

	pcm16, rate, err := ResampleToMono16(src, 8000, 4096)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}

	// Expect roughly one second at the target rate
	if len(pcm16) < 7000 || len(pcm16) > 9000 {
		t.Errorf("got %d samples, want about 8000", len(pcm16))
	}
}

func TestResampleToMono16_AlreadyMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSine(8000, 1, 8000, 200)

	pcm16, rate, err := ResampleToMono16(src, 8000, 4096)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	if len(pcm16) < 7000 || len(pcm16) > 9000 {
		t.Errorf("got %d samples, want about 8000", len(pcm16))
	}
}

func TestResampleToMono16_Silence(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilence(16000, 1, 1600)

	pcm16, _, err := ResampleToMono16(src, 8000, 1024)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	for i, s := range pcm16 {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0 for silence", i, s)
		}
	}
}

func TestResampleToMono16_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilence(8000, 1, 0)

	pcm16, rate, err := ResampleToMono16(src, 8000, 4096)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	if len(pcm16) != 0 {
		t.Errorf("got %d samples from empty source, want 0", len(pcm16))
	}
}

func TestResampleToMono16_Clamping(t *testing.T) {
	t.Parallel()

	// Values beyond [-1, 1] must clamp, not wrap
	src := audiotest.NewConstant(8000, 1, 100, 1.5)

	pcm16, _, err := ResampleToMono16(src, 8000, 4096)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	for i, s := range pcm16 {
		if s != 32767 {
			t.Fatalf("sample %d = %d, want 32767 (clamped)", i, s)
		}
	}
}

func BenchmarkResampleToMono16(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src := audiotest.NewSine(44100, 2, 44100, 440)
		_, _, _ = ResampleToMono16(src, 8000, 4096)
	}
}
