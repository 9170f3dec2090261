package wavels

import "encoding/binary"

// fmtPayloadLen is the size of the fields shared by every WAVE format tag.
// Extension bytes past it are never read.
const fmtPayloadLen = 16

// decodeFmtChunk reads the WAVEFORMAT fields of a fmt chunk payload:
//
//	0  format tag       u16
//	2  channels         u16
//	4  sample rate      u32
//	8  avg bytes/sec    u32
//	12 block align      u16
//	14 bits per sample  u16
func decodeFmtChunk(payload []byte, order binary.ByteOrder) (PCMInfo, error) {
	return PCMInfo{
		SampleRate: order.Uint32(payload[4:8]),
		BitDepth:   order.Uint16(payload[14:16]),
		Channels:   order.Uint16(payload[2:4]),
	}, nil
}
