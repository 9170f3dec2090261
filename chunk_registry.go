package wavels

import (
	"encoding/binary"

	"github.com/go-audio/aiff"
	"github.com/go-audio/riff"
)

var (
	// CIDForm is the IFF container magic used by AIFF.
	CIDForm = [4]byte{'F', 'O', 'R', 'M'}
	// CIDAiff is the FORM type of an uncompressed AIFF file.
	CIDAiff = [4]byte{'A', 'I', 'F', 'F'}
	// CIDBext is the chunk ID for the broadcast extension chunk.
	CIDBext = [4]byte{'b', 'e', 'x', 't'}
	// CIDID3 is the chunk ID for an embedded ID3 tag.
	CIDID3 = [4]byte{'i', 'd', '3', ' '}
	// CIDFake is the chunk ID Pro Tools writes as placeholder.
	CIDFake = [4]byte{'F', 'a', 'k', 'e'}
	// CIDJunk is the chunk ID for the RIFF alignment chunk.
	CIDJunk = [4]byte{'J', 'U', 'N', 'K'}
	// CIDInst is the chunk ID for the AIFF instrument chunk.
	CIDInst = [4]byte{'I', 'N', 'S', 'T'}
	// CIDMark is the chunk ID for the AIFF marker chunk.
	CIDMark = [4]byte{'M', 'A', 'R', 'K'}
)

// chunkAction is what the walker does with a chunk. The zero value rejects,
// so any identifier missing from a family table is an error.
type chunkAction uint8

const (
	actionReject chunkAction = iota
	actionSkip
	actionTarget
)

func (a chunkAction) String() string {
	switch a {
	case actionSkip:
		return "skip"
	case actionTarget:
		return "target"
	default:
		return "reject"
	}
}

// extractFunc decodes the fixed prefix of a target chunk payload.
type extractFunc func(payload []byte, order binary.ByteOrder) (PCMInfo, error)

// family holds everything that differs between RIFF/WAVE and FORM/AIFF.
type family struct {
	container Container
	magic     [4]byte
	formType  [4]byte
	order     binary.ByteOrder
	formatErr error

	target     [4]byte
	payloadLen int
	extract    extractFunc

	actions map[[4]byte]chunkAction
}

var waveFamily = &family{
	container:  ContainerWave,
	magic:      riff.RiffID,
	formType:   riff.WavFormatID,
	order:      binary.LittleEndian,
	formatErr:  ErrInvalidRIFFFormat,
	target:     riff.FmtID,
	payloadLen: fmtPayloadLen,
	extract:    decodeFmtChunk,
	actions: map[[4]byte]chunkAction{
		riff.FmtID: actionTarget,
		CIDBext:    actionSkip,
		CIDID3:     actionSkip,
		CIDFake:    actionSkip,
		CIDJunk:    actionSkip,
	},
}

var aiffFamily = &family{
	container:  ContainerAIFF,
	magic:      CIDForm,
	formType:   CIDAiff,
	order:      binary.BigEndian,
	formatErr:  ErrInvalidFORMFormat,
	target:     aiff.COMMID,
	payloadLen: commPayloadLen,
	extract:    decodeCommChunk,
	actions: map[[4]byte]chunkAction{
		aiff.COMMID: actionTarget,
		aiff.COMTID: actionSkip,
		CIDInst:     actionSkip,
		CIDMark:     actionSkip,
	},
}

func familyForMagic(magic [4]byte) *family {
	switch magic {
	case waveFamily.magic:
		return waveFamily
	case aiffFamily.magic:
		return aiffFamily
	default:
		return nil
	}
}

func (f *family) classify(id [4]byte) chunkAction {
	return f.actions[id]
}
