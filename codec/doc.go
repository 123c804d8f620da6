// SPDX-License-Identifier: EPL-2.0

// Package codec defines the framework surface that format packages plug
// into: codec descriptors, the Encoder interface, and a registry.
//
// # Descriptors
//
// A Descriptor declares what a codec is and what input it accepts: its
// name, media type, accepted sample formats, an explicit sample-rate
// allow-list, capability flags, and a declarative table of the options
// it understands:
//
//	desc, _ := registry.Encoder("mp3")
//	for _, opt := range desc.Options {
//	    fmt.Printf("%s: %s (default %d)\n", opt.Name, opt.Help, opt.Default)
//	}
//
// Frontends use the table for introspection and help text; it has no
// bearing on the codec's internals beyond the values the caller binds.
//
// # Encoders
//
// Encoders consume fixed-size PCM blocks and hand back one complete
// encoded frame at a time:
//
//	enc, err := registry.OpenEncoder("mp3", codec.Config{
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BitRate:    128000,
//	    CompressionLevel: codec.CompressionDefault,
//	})
//	if err != nil {
//	    // handle error
//	}
//	defer enc.Close()
//
//	block := make([]int16, enc.BlockSize()*2)
//	frame, err := enc.Encode(block) // nil frame until enough accumulated
//
// Codecs carrying CapDelay buffer input internally; after the last block
// the caller keeps calling Flush until it returns nil.
//
// # Registry
//
// The Registry binds encoder descriptors and format decoders under
// string keys and validates configurations against descriptors before
// opening a session. OpenEncoder rejects sample rates outside the
// allow-list and option values outside their declared range.
//
// # Concurrency
//
// The Registry is safe for concurrent use. Encoder sessions are not:
// each session is single-owner and serialization is the caller's
// responsibility.
package codec
