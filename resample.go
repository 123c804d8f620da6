// SPDX-License-Identifier: EPL-2.0

package audiocodec

import (
	"fmt"
	"io"

	"github.com/avfoundry/audiocodec/audio"
	"github.com/avfoundry/audiocodec/utils"
)

// ResampleToMono16 resamples a source to targetRate, mixes it down to
// mono and collects the result as 16-bit PCM.
//
// The pipeline is audio.NewResampler followed by audio.NewMonoMixer;
// float32 samples are clamped and scaled by the utils package. For more
// control over the stages, build the pipeline directly.
//
// bufferSize is the read granularity in samples, e.g. 4096. The output
// sample rate is returned alongside the samples so callers can hand both
// to a writer.
func ResampleToMono16(src audio.Source, targetRate, bufferSize int) ([]int16, int, error) {
	resampler := audio.NewResampler(src, targetRate)
	mono := audio.NewMonoMixer(resampler)

	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufferSize)
	conv := make([]int16, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			utils.Float32BufToInt16(conv[:n], buf[:n])
			pcm16 = append(pcm16, conv[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}
