package wavels

import (
	"encoding/binary"
	"fmt"
)

const (
	envelopeLen    = 12
	chunkHeaderLen = 8
)

// Container is the container family detected from the envelope.
type Container uint8

const (
	ContainerUnknown Container = iota
	ContainerWave
	ContainerAIFF
)

func (c Container) String() string {
	switch c {
	case ContainerWave:
		return "WAVE"
	case ContainerAIFF:
		return "AIFF"
	default:
		return "unknown"
	}
}

// ByteOrder returns the byte order of every multi-byte field in the
// container, or nil for ContainerUnknown.
func (c Container) ByteOrder() binary.ByteOrder {
	if f := c.family(); f != nil {
		return f.order
	}

	return nil
}

// Magic returns the identifier expected at offset 0.
func (c Container) Magic() [4]byte {
	if f := c.family(); f != nil {
		return f.magic
	}

	return [4]byte{}
}

// FormatTag returns the form type expected at offset 8.
func (c Container) FormatTag() [4]byte {
	if f := c.family(); f != nil {
		return f.formType
	}

	return [4]byte{}
}

// TargetID returns the identifier of the chunk carrying the format fields.
func (c Container) TargetID() [4]byte {
	if f := c.family(); f != nil {
		return f.target
	}

	return [4]byte{}
}

func (c Container) family() *family {
	switch c {
	case ContainerWave:
		return waveFamily
	case ContainerAIFF:
		return aiffFamily
	default:
		return nil
	}
}

// chunkHeader is the 8 byte header preceding every chunk payload.
type chunkHeader struct {
	ID   [4]byte
	Size uint32
	// Offset of the header from the start of the stream.
	Offset int64
}

// paddedSize is the on-disk footprint of the payload. RIFF and IFF chunks
// are word aligned, odd sized payloads are followed by one pad byte that
// the size field does not count.
func (h chunkHeader) paddedSize() int64 {
	n := int64(h.Size)
	if n%2 == 1 {
		n++
	}

	return n
}

func idString(id [4]byte) string {
	return fmt.Sprintf("%q", id[:])
}
