package wavels

import (
	"strconv"

	"github.com/go-audio/audio"
)

// PCMInfo is the format of a PCM audio stream.
type PCMInfo struct {
	SampleRate uint32 // Hz
	BitDepth   uint16 // bits per sample
	Channels   uint16
}

// Format returns the go-audio format descriptor for the stream. The
// conversion is lossy: audio.Format has no bit depth, pair it with
// BitDepth the way audio.IntBuffer carries SourceBitDepth.
func (p PCMInfo) Format() *audio.Format {
	return &audio.Format{
		NumChannels: int(p.Channels),
		SampleRate:  int(p.SampleRate),
	}
}

// String renders the format as "<rate> khz <depth> bit <channels>", e.g.
// "44.1 khz 16 bit stereo".
func (p PCMInfo) String() string {
	return KiloHertz(p.SampleRate) + " khz " +
		strconv.FormatUint(uint64(p.BitDepth), 10) + " bit " +
		ChannelDescription(p.Channels)
}

// KiloHertz formats a rate in kHz without trailing zeros.
func KiloHertz(hz uint32) string {
	return strconv.FormatFloat(float64(hz)/1000, 'f', -1, 64)
}

// ChannelDescription returns "mono", "stereo" or "<n> channels".
func ChannelDescription(n uint16) string {
	switch n {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return strconv.FormatUint(uint64(n), 10) + " channels"
	}
}
