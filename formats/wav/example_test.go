// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/avfoundry/audiocodec/formats/wav"
)

// Example demonstrates writing and reading back a WAV file.
func Example() {
	samples := []int16{0, 1000, -1000, 2000, -2000}

	buf := new(bytes.Buffer)
	if err := wav.WriteWAV16(buf, 8000, 1, samples); err != nil {
		log.Fatal(err)
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	fmt.Printf("Sample Rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Channels: %d\n", src.Channels())

	// Output:
	// Sample Rate: 8000 Hz
	// Channels: 1
}

// ExampleWriteWAV16 shows creating a WAV file from PCM samples.
func ExampleWriteWAV16() {
	samples := []int16{100, -100, 200, -200}

	f, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, 8000, 1, samples); err != nil {
		log.Fatal(err)
	}

	fmt.Println("WAV file written")
}

// ExampleDecoder_Decode shows how to decode a WAV file.
func ExampleDecoder_Decode() {
	f, err := os.Open("audio.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	decoder := wav.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	buf := make([]float32, 4096)
	n, _ := src.ReadSamples(buf)
	fmt.Printf("Read %d samples at %d Hz\n", n, src.SampleRate())
}
