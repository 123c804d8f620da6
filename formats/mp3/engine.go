// SPDX-License-Identifier: EPL-2.0

package mp3

// mpegMode mirrors the stereo mode enum of the external encoder.
type mpegMode int

const (
	modeStereo mpegMode = iota
	modeJointStereo
	modeDualChannel
	modeMono
)

// vbrMode mirrors the external encoder's variable-bitrate mode enum.
type vbrMode int

const (
	vbrOff     vbrMode = 0
	vbrDefault vbrMode = 4 // vbr_mtrh, the library's recommended mode
)

// engineErrBufferTooSmall is the encode return code meaning the output
// slice could not hold the produced bytes.
const engineErrBufferTooSmall = -1

// engine is the narrow surface of the external MP3 encoder the adapter
// drives. The production implementation wraps libmp3lame; tests inject a
// fake, the same pattern the decoder uses for its go-mp3 reader.
//
// Encode and flush calls return the number of bytes written into out, or
// a negative library error code.
type engine interface {
	setInSampleRate(hz int)
	setOutSampleRate(hz int)
	setChannels(n int)
	setQuality(q int)
	setMode(m mpegMode)
	setBitRateKbps(kbps int)
	setVBR(mode vbrMode)
	setVBRQuality(q float32)
	setDisableReservoir(disable bool)
	setWriteVBRTag(write bool)

	// initParams finalizes the configuration; negative means rejected.
	initParams() int
	// blockSize is the fixed number of samples per channel the encoder
	// consumes per encode call. Valid only after initParams succeeded.
	blockSize() int

	// encodeInterleaved consumes one block of interleaved stereo PCM.
	encodeInterleaved(pcm []int16, out []byte) int
	// encodeMono consumes one block of single-channel PCM.
	encodeMono(pcm []int16, out []byte) int
	// flush drains samples the encoder still holds from block lookahead.
	flush(out []byte) int

	// close releases the encoder instance. Must be called exactly once.
	close()
}
