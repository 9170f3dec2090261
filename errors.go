package wavels

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrShortRead is returned when the stream ends before the current
	// parsing step has the bytes it needs.
	ErrShortRead = errors.New("short read")
	// ErrInvalidContainerEnvelope is returned when the stream starts with
	// neither RIFF nor FORM.
	ErrInvalidContainerEnvelope = errors.New("invalid container envelope")
	// ErrInvalidContainerFormat is returned when the form type at offset 8
	// does not match the container family.
	ErrInvalidContainerFormat = errors.New("invalid container format")
	// ErrInvalidRIFFFormat is a RIFF container whose form type is not WAVE.
	ErrInvalidRIFFFormat = fmt.Errorf("%w: RIFF form type is not WAVE", ErrInvalidContainerFormat)
	// ErrInvalidFORMFormat is a FORM container whose form type is not AIFF.
	ErrInvalidFORMFormat = fmt.Errorf("%w: FORM type is not AIFF", ErrInvalidContainerFormat)
	// ErrInvalidChunkID is returned for a chunk that is neither the format
	// chunk nor a known skippable chunk of the container family.
	ErrInvalidChunkID = errors.New("invalid chunk id")
	// ErrInvalidSampleRate is returned when the COMM sample rate is negative,
	// not finite, or does not fit in 32 bits.
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	errNilReader = errors.New("nil reader")
)

// VoidID is reported as the identifier of errors that are not tied to a
// chunk or envelope identifier.
var VoidID = [4]byte{'v', 'o', 'i', 'd'}

// DecodeError describes why a header could not be decoded. Kind is one of
// the package Err* values and ID holds the raw identifier bytes that caused
// the failure, or VoidID.
type DecodeError struct {
	Kind   error
	ID     [4]byte
	Offset int64
	// Err is the underlying read error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	var b strings.Builder

	b.WriteString(e.Kind.Error())

	if e.ID != VoidID {
		fmt.Fprintf(&b, " %q", e.ID[:])
	}

	fmt.Fprintf(&b, " at offset %d", e.Offset)

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// IdentifierOf returns the identifier captured by a DecodeError in err's
// chain, or VoidID.
func IdentifierOf(err error) [4]byte {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.ID
	}

	return VoidID
}

// KindOf returns the Kind of the DecodeError in err's chain, or nil when
// err did not come from the header decoder.
func KindOf(err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind
	}

	return nil
}
