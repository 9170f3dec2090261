package wavels

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestDecodeErrorMessage(t *testing.T) {
	testCases := []struct {
		err  *DecodeError
		want string
	}{
		{
			&DecodeError{Kind: ErrInvalidChunkID, ID: [4]byte{'d', 'a', 't', 'a'}, Offset: 12},
			`invalid chunk id "data" at offset 12`,
		},
		{
			&DecodeError{Kind: ErrInvalidContainerEnvelope, ID: [4]byte{'R', 'I', 'F', 'X'}},
			`invalid container envelope "RIFX" at offset 0`,
		},
		{
			&DecodeError{Kind: ErrShortRead, ID: VoidID, Offset: 20, Err: io.ErrUnexpectedEOF},
			`short read at offset 20: unexpected EOF`,
		},
		{
			&DecodeError{Kind: ErrInvalidChunkID, ID: [4]byte{0, 0xff, 'a', ' '}, Offset: 12},
			`invalid chunk id "\x00\xffa " at offset 12`,
		},
	}

	for _, tc := range testCases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestDecodeErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("kick.wav: %w", &DecodeError{Kind: ErrShortRead, ID: VoidID, Err: io.ErrUnexpectedEOF})

	if !errors.Is(err, ErrShortRead) {
		t.Fatal("expected ErrShortRead in chain")
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatal("expected the read error in chain")
	}

	if KindOf(err) != ErrShortRead {
		t.Fatalf("unexpected kind %v", KindOf(err))
	}

	if IdentifierOf(err) != VoidID {
		t.Fatalf("unexpected id %q", IdentifierOf(err))
	}
}

func TestIdentifierOfForeignError(t *testing.T) {
	if IdentifierOf(errors.New("other")) != VoidID {
		t.Fatal("expected void id for foreign errors")
	}

	if IdentifierOf(nil) != VoidID {
		t.Fatal("expected void id for nil")
	}

	if KindOf(errors.New("other")) != nil {
		t.Fatal("expected no kind for foreign errors")
	}
}

func TestContainerFormatErrors(t *testing.T) {
	for _, err := range []error{ErrInvalidRIFFFormat, ErrInvalidFORMFormat} {
		if !errors.Is(err, ErrInvalidContainerFormat) {
			t.Fatalf("%v should wrap ErrInvalidContainerFormat", err)
		}

		if !strings.HasPrefix(err.Error(), ErrInvalidContainerFormat.Error()) {
			t.Fatalf("unexpected message %q", err)
		}
	}

	if errors.Is(ErrInvalidRIFFFormat, ErrInvalidFORMFormat) {
		t.Fatal("RIFF and FORM format errors should be distinct")
	}
}
