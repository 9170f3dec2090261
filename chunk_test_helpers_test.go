package wavels

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/bits"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
	// noSize keeps size as given instead of len(data)
	noSize bool
}

func chunkOf(id string, data []byte) testChunk {
	return testChunk{id: id, data: data}
}

// buildStream writes an envelope and chunks the way an encoder would, odd
// sized payloads get a pad byte.
func buildStream(magic, formType string, order binary.ByteOrder, chunks ...testChunk) []byte {
	var body bytes.Buffer

	for _, ch := range chunks {
		size := uint32(len(ch.data))
		if ch.noSize {
			size = ch.size
		}

		body.WriteString(ch.id)
		binary.Write(&body, order, size)
		body.Write(ch.data)

		if len(ch.data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	var out bytes.Buffer
	out.WriteString(magic)
	binary.Write(&out, order, uint32(4+body.Len()))
	out.WriteString(formType)
	out.Write(body.Bytes())

	return out.Bytes()
}

func waveStream(chunks ...testChunk) []byte {
	return buildStream("RIFF", "WAVE", binary.LittleEndian, chunks...)
}

func aiffStream(chunks ...testChunk) []byte {
	return buildStream("FORM", "AIFF", binary.BigEndian, chunks...)
}

func fmtPayload(channels uint16, sampleRate uint32, bitDepth uint16) []byte {
	blockAlign := channels * ((bitDepth + 7) / 8)

	buf := make([]byte, 16)
	binary.LittleEndian.PutUint16(buf[0:2], 1)
	binary.LittleEndian.PutUint16(buf[2:4], channels)
	binary.LittleEndian.PutUint32(buf[4:8], sampleRate)
	binary.LittleEndian.PutUint32(buf[8:12], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(buf[12:14], blockAlign)
	binary.LittleEndian.PutUint16(buf[14:16], bitDepth)

	return buf
}

func commPayload(channels uint16, frames uint32, bitDepth uint16, sampleRate uint32) []byte {
	return commPayloadRaw(channels, frames, bitDepth, hzToExtended(sampleRate))
}

// hzToExtended encodes hz as a normalized big-endian 80 bit extended float,
// the way AIFF writers store the COMM sample rate.
func hzToExtended(hz uint32) [10]byte {
	var b [10]byte
	if hz == 0 {
		return b
	}

	msb := bits.Len32(hz) - 1
	binary.BigEndian.PutUint16(b[0:2], uint16(16383+msb))
	binary.BigEndian.PutUint64(b[2:10], uint64(hz)<<(63-msb))

	return b
}

func commPayloadRaw(channels uint16, frames uint32, bitDepth uint16, rate [10]byte) []byte {
	buf := make([]byte, 18)
	binary.BigEndian.PutUint16(buf[0:2], channels)
	binary.BigEndian.PutUint32(buf[2:6], frames)
	binary.BigEndian.PutUint16(buf[6:8], bitDepth)
	copy(buf[8:18], rate[:])

	return buf
}

// streamReader hides io.Seeker so skips go through the read path.
type streamReader struct {
	io.Reader
}
