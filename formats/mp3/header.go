// SPDX-License-Identifier: EPL-2.0

package mp3

// MPEG audio frame header decoding. Every MPEG audio frame starts with a
// self-describing 32-bit big-endian header from which the total frame
// length in bytes can be computed; the encoder uses that to carve
// complete frames out of its holding buffer.

// Header word layout (from bit 31 down):
//
//	11 bits  frame sync, all set
//	 2 bits  version (00=MPEG2.5, 01=reserved, 10=MPEG2, 11=MPEG1)
//	 2 bits  layer (00=reserved, 01=III, 10=II, 11=I)
//	 1 bit   protection
//	 4 bits  bitrate index (0=free format, 15=invalid)
//	 2 bits  sample rate index (3=invalid)
//	 1 bit   padding
const frameSyncMask = 0x7FF

const (
	versionMPEG25 = 0
	versionMPEG2  = 2
	versionMPEG1  = 3
)

const (
	layerIII = 1
	layerII  = 2
	layerI   = 3
)

// Bitrate tables in kbit/s, indexed by bitrate index 1..14.
// Index 0 is free format, index 15 invalid.
var bitRateTables = map[[2]int][14]int{
	{versionMPEG1, layerI}:    {32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448},
	{versionMPEG1, layerII}:   {32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384},
	{versionMPEG1, layerIII}:  {32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},
	{versionMPEG2, layerI}:    {32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256},
	{versionMPEG2, layerII}:   {8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
	{versionMPEG2, layerIII}:  {8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
	{versionMPEG25, layerI}:   {32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256},
	{versionMPEG25, layerII}:  {8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
	{versionMPEG25, layerIII}: {8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
}

// Sample rates in Hz for MPEG1; MPEG2 halves them, MPEG2.5 quarters them.
var sampleRateTable = [3]int{44100, 48000, 32000}

// frameInfo is the metadata decoded from a frame header.
type frameInfo struct {
	version    int
	layer      int
	bitRate    int // bits/s
	sampleRate int // Hz
	padding    int
	frameSize  int // total frame length in bytes, header included
}

// parseFrameHeader decodes a 32-bit frame header word. Free-format
// streams (bitrate index 0) carry no frame length and are rejected with
// ErrUnsupportedFrameFormat; malformed headers with ErrInvalidFrameHeader.
func parseFrameHeader(hdr uint32) (frameInfo, error) {
	if (hdr>>21)&frameSyncMask != frameSyncMask {
		return frameInfo{}, ErrInvalidFrameHeader
	}

	version := int(hdr>>19) & 3
	layer := int(hdr>>17) & 3
	bitRateIdx := int(hdr>>12) & 0xF
	sampleRateIdx := int(hdr>>10) & 3
	padding := int(hdr>>9) & 1

	if version == 1 || layer == 0 || bitRateIdx == 0xF || sampleRateIdx == 3 {
		return frameInfo{}, ErrInvalidFrameHeader
	}
	if bitRateIdx == 0 {
		return frameInfo{}, ErrUnsupportedFrameFormat
	}

	sampleRate := sampleRateTable[sampleRateIdx]
	switch version {
	case versionMPEG2:
		sampleRate /= 2
	case versionMPEG25:
		sampleRate /= 4
	}

	bitRate := bitRateTables[[2]int{version, layer}][bitRateIdx-1] * 1000

	info := frameInfo{
		version:    version,
		layer:      layer,
		bitRate:    bitRate,
		sampleRate: sampleRate,
		padding:    padding,
	}

	switch layer {
	case layerI:
		info.frameSize = (12*bitRate/sampleRate + padding) * 4
	case layerII:
		info.frameSize = 144*bitRate/sampleRate + padding
	case layerIII:
		if version == versionMPEG1 {
			info.frameSize = 144*bitRate/sampleRate + padding
		} else {
			// MPEG2/2.5 layer III frames carry half the samples
			info.frameSize = 72*bitRate/sampleRate + padding
		}
	}

	return info, nil
}
