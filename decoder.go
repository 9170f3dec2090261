package wavels

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Decoder reads the header of a single RIFF/WAVE or FORM/AIFF stream.
// The reader doesn't get rewinded: decoding starts at its current position
// and leaves it right after the format fields.
// A Decoder is meant for one stream and one goroutine.
type Decoder struct {
	r      io.Reader
	offset int64
	// streamLen is the length of a seekable source, -1 until measured.
	streamLen int64
	// noSeek is set once the source refused a seek. Pipes and terminals
	// are *os.File values that can't seek.
	noSeek bool

	container    Container
	declaredSize uint32

	// Logger receives a debug entry for every chunk walked.
	Logger logrus.FieldLogger
}

// NewDecoder creates a decoder for the passed reader. Sources that also
// implement io.Seeker get skippable chunks seeked over instead of read.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:         r,
		streamLen: -1,
		Logger:    logrus.StandardLogger(),
	}
}

// Decode reads the PCM format of the stream in r.
func Decode(r io.Reader) (PCMInfo, error) {
	return NewDecoder(r).Decode()
}

// DecodeFile opens path read-only and decodes its header.
func DecodeFile(path string) (PCMInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return PCMInfo{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return NewDecoder(file).Decode()
}

// Container returns the family detected from the envelope.
func (d *Decoder) Container() Container {
	if d == nil {
		return ContainerUnknown
	}

	return d.container
}

// Offset returns the number of bytes consumed from the source so far.
func (d *Decoder) Offset() int64 {
	if d == nil {
		return 0
	}

	return d.offset
}

// DeclaredSize returns the container size from the envelope. It is never
// checked against the real stream length.
func (d *Decoder) DeclaredSize() uint32 {
	if d == nil {
		return 0
	}

	return d.declaredSize
}

// Decode validates the envelope then walks the chunks until the format
// chunk of the container family is found.
func (d *Decoder) Decode() (PCMInfo, error) {
	if d == nil || d.r == nil {
		return PCMInfo{}, errNilReader
	}

	fam, err := d.readEnvelope()
	if err != nil {
		return PCMInfo{}, err
	}

	for {
		chunk, err := d.nextChunk(fam)
		if err != nil {
			return PCMInfo{}, err
		}

		action := fam.classify(chunk.ID)
		d.log(chunk).WithField("action", action).Debug("chunk")

		switch action {
		case actionTarget:
			return d.extract(fam, chunk)
		case actionSkip:
			if err := d.skip(chunk); err != nil {
				return PCMInfo{}, err
			}
		default:
			return PCMInfo{}, &DecodeError{Kind: ErrInvalidChunkID, ID: chunk.ID, Offset: chunk.Offset}
		}
	}
}

func (d *Decoder) readEnvelope() (*family, error) {
	var hdr [envelopeLen]byte
	if err := d.readFull(hdr[:]); err != nil {
		return nil, err
	}

	var magic, formType [4]byte
	copy(magic[:], hdr[0:4])
	copy(formType[:], hdr[8:12])

	fam := familyForMagic(magic)
	if fam == nil {
		return nil, &DecodeError{Kind: ErrInvalidContainerEnvelope, ID: magic, Offset: d.offset - envelopeLen}
	}

	if formType != fam.formType {
		return nil, &DecodeError{Kind: fam.formatErr, ID: formType, Offset: d.offset - 4}
	}

	d.container = fam.container
	d.declaredSize = fam.order.Uint32(hdr[4:8])

	return fam, nil
}

// nextChunk reads the 8 byte header of the next chunk. riff.Parser only
// reads little-endian headers and consumes pad bytes and short skips
// itself, so both families share this walker instead.
func (d *Decoder) nextChunk(fam *family) (chunkHeader, error) {
	var buf [chunkHeaderLen]byte

	hdr := chunkHeader{Offset: d.offset}
	if err := d.readFull(buf[:]); err != nil {
		return hdr, err
	}

	copy(hdr.ID[:], buf[0:4])
	hdr.Size = fam.order.Uint32(buf[4:8])

	return hdr, nil
}

// extract reads the fixed prefix of the target payload. The declared chunk
// size is not consulted, only the bytes the fields need are read.
func (d *Decoder) extract(fam *family, chunk chunkHeader) (PCMInfo, error) {
	payload := make([]byte, fam.payloadLen)
	if err := d.readFull(payload); err != nil {
		return PCMInfo{}, err
	}

	info, err := fam.extract(payload, fam.order)
	if err != nil {
		// only the COMM sample rate can be rejected
		return PCMInfo{}, &DecodeError{
			Kind:   ErrInvalidSampleRate,
			ID:     chunk.ID,
			Offset: chunk.Offset,
			Err:    err,
		}
	}

	return info, nil
}

// skip moves past the payload of chunk and its pad byte.
func (d *Decoder) skip(chunk chunkHeader) error {
	n := chunk.paddedSize()
	if n == 0 {
		return nil
	}

	if s, ok := d.r.(io.Seeker); ok && !d.noSeek {
		cur, err := s.Seek(0, io.SeekCurrent)
		if err == nil {
			return d.seekForward(s, cur, n)
		}

		d.noSeek = true
		d.log(chunk).WithError(err).Debug("source is not seekable, reading past chunks")
	}

	copied, err := io.CopyN(io.Discard, d.r, n)
	d.offset += copied

	if err != nil {
		return d.readErr(err, chunk.Offset)
	}

	return nil
}

// seekForward seeks n bytes ahead of cur. Seeking past the end of a file
// succeeds silently, so the target is checked against the stream length
// first.
func (d *Decoder) seekForward(s io.Seeker, cur, n int64) error {
	if d.streamLen < 0 {
		end, err := s.Seek(0, io.SeekEnd)
		if err != nil {
			return fmt.Errorf("failed to seek to the end of the stream: %w", err)
		}

		if _, err := s.Seek(cur, io.SeekStart); err != nil {
			return fmt.Errorf("failed to seek back to %d: %w", cur, err)
		}

		d.streamLen = end
	}

	if n > d.streamLen-cur {
		return &DecodeError{
			Kind:   ErrShortRead,
			ID:     VoidID,
			Offset: d.offset,
			Err:    fmt.Errorf("skip of %d bytes with %d left: %w", n, d.streamLen-cur, io.ErrUnexpectedEOF),
		}
	}

	if _, err := s.Seek(n, io.SeekCurrent); err != nil {
		return fmt.Errorf("failed to skip %d bytes: %w", n, err)
	}

	d.offset += n

	return nil
}

func (d *Decoder) readFull(buf []byte) error {
	start := d.offset

	n, err := io.ReadFull(d.r, buf)
	d.offset += int64(n)

	if err != nil {
		return d.readErr(err, start)
	}

	return nil
}

// readErr classifies a read failure. Running out of bytes is a defect of
// the file, anything else is an I/O problem and is passed through.
func (d *Decoder) readErr(err error, offset int64) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &DecodeError{Kind: ErrShortRead, ID: VoidID, Offset: offset, Err: err}
	}

	return fmt.Errorf("failed to read at offset %d: %w", offset, err)
}

func (d *Decoder) log(chunk chunkHeader) logrus.FieldLogger {
	logger := d.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return logger.WithFields(logrus.Fields{
		"container": d.container,
		"id":        idString(chunk.ID),
		"size":      chunk.Size,
		"offset":    chunk.Offset,
	})
}
