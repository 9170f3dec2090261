package wavels

import (
	"errors"
	"testing"
)

func TestExtendedToHz(t *testing.T) {
	testCases := []struct {
		name string
		in   [10]byte
		out  uint32
		err  error
	}{
		{"zero", [10]byte{}, 0, nil},
		{"negative zero", [10]byte{0x80}, 0, nil},
		{"one", [10]byte{0x3F, 0xFF, 0x80}, 1, nil},
		{"half", [10]byte{0x3F, 0xFE, 0x80}, 0, nil},
		{"denormal", [10]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, 0, nil},
		{"8000", [10]byte{0x40, 0x0B, 0xFA}, 8000, nil},
		{"44100", [10]byte{0x40, 0x0E, 0xAC, 0x44}, 44100, nil},
		{"48000", [10]byte{0x40, 0x0E, 0xBB, 0x80}, 48000, nil},
		{"96000", [10]byte{0x40, 0x0F, 0xBB, 0x80}, 96000, nil},
		{"192000", [10]byte{0x40, 0x10, 0xBB, 0x80}, 192000, nil},
		{"mac 22254.54", [10]byte{0x40, 0x0D, 0xAD, 0xDD, 0x17, 0x45, 0xD1, 0x74, 0x5D, 0x17}, 22254, nil},
		{"unnormalized 44100", [10]byte{0x40, 0x3E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xAC, 0x44}, 44100, nil},
		{"max uint32", [10]byte{0x40, 0x1E, 0xFF, 0xFF, 0xFF, 0xFF}, 4294967295, nil},
		{"2^32", [10]byte{0x40, 0x1F, 0x80}, 0, errExtendedOverflow},
		{"2^64", [10]byte{0x40, 0x3F, 0x80}, 0, errExtendedOverflow},
		{"huge", [10]byte{0x7F, 0xFE, 0x80}, 0, errExtendedOverflow},
		{"negative", [10]byte{0xC0, 0x0E, 0xAC, 0x44}, 0, errExtendedNegative},
		{"infinity", [10]byte{0x7F, 0xFF, 0x80}, 0, errExtendedNotFinite},
		{"nan", [10]byte{0x7F, 0xFF, 0xC0}, 0, errExtendedNotFinite},
		{"negative infinity", [10]byte{0xFF, 0xFF, 0x80}, 0, errExtendedNotFinite},
	}

	for _, tc := range testCases {
		got, err := extendedToHz(tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("%s: expected error %v, got %v", tc.name, tc.err, err)
		}

		if got != tc.out {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.out, got)
		}
	}
}

func TestExtendedToHzRoundTrip(t *testing.T) {
	rates := []uint32{
		1, 2, 3, 1000, 4000, 8000, 11025, 16000, 22050, 24000, 32000, 44056, 44100,
		47952, 48000, 64000, 88200, 96000, 176400, 192000, 352800, 384000, 705600, 768000,
		1 << 20, 1<<31 - 1, 1 << 31, 1<<32 - 1,
	}

	for _, rate := range rates {
		got, err := extendedToHz(hzToExtended(rate))
		if err != nil {
			t.Fatalf("%d: %v", rate, err)
		}

		if got != rate {
			t.Fatalf("expected %d, got %d", rate, got)
		}
	}
}
