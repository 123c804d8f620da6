// SPDX-License-Identifier: EPL-2.0

// Package opus provides Opus audio encoding through libopus.
//
// Encoding is backed by gopkg.in/hraban/opus.v2 (cgo bindings to
// libopus) and exposed as a codec.Encoder. Each Encode call consumes a
// 20 ms block of interleaved 16-bit PCM and produces one self-contained
// Opus packet; there is no delayed output and Flush is a no-op.
//
//	enc, err := opus.NewEncoder(opus.Config{
//	    SampleRate: 48000,
//	    Channels:   2,
//	    BitRate:    96000,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	defer enc.Close()
//
//	block := make([]int16, enc.BlockSize()*2)
//	packet, err := enc.Encode(block)
//
// With Config.DTX set, near-silent input produces keepalive packets the
// encoder drops, so Encode may return nil without an error.
//
// The codec only accepts the Opus sample rates (8, 12, 16, 24 and
// 48 kHz); resample other material first.
//
// Building needs cgo and libopus:
//
//	apt install libopus-dev libopusfile-dev   # Debian/Ubuntu
//	brew install opus opusfile                # macOS
package opus
