package opus

// packetEncoder is the slice of the libopus encoder the adapter needs;
// an interface so tests can inject a fake.
type packetEncoder interface {
	Encode(pcm []int16, out []byte) (int, error)
}

// Maximum size of a single Opus packet.
const maxPacketSize = 4000
