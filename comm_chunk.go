package wavels

import "encoding/binary"

// commPayloadLen is the size of the COMM chunk of a plain AIFF file.
const commPayloadLen = 18

// decodeCommChunk reads the fields of an AIFF COMM chunk payload:
//
//	0  channels            u16
//	2  sample frames       u32
//	6  sample size (bits)  u16
//	8  sample rate         80 bit extended float
func decodeCommChunk(payload []byte, order binary.ByteOrder) (PCMInfo, error) {
	var rate [extendedLen]byte
	copy(rate[:], payload[8:18])

	hz, err := extendedToHz(rate)
	if err != nil {
		return PCMInfo{}, err
	}

	return PCMInfo{
		SampleRate: hz,
		BitDepth:   order.Uint16(payload[6:8]),
		Channels:   order.Uint16(payload[0:2]),
	}, nil
}
