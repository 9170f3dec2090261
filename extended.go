package wavels

import (
	"encoding/binary"
	"errors"
	"math"
)

const (
	extendedLen     = 10
	extendedBias    = 16383
	extendedExpMask = 0x7fff
)

var (
	errExtendedNotFinite = errors.New("extended float is infinite or NaN")
	errExtendedNegative  = errors.New("extended float is negative")
	errExtendedOverflow  = errors.New("extended float does not fit in 32 bits")
)

// extendedToHz converts a big-endian 80 bit IEEE 754 extended precision
// value to whole hertz, truncating any fraction.
//
// The layout is a sign bit, a 15 bit exponent biased by 16383 and a 64 bit
// mantissa whose integer bit is explicit, so the value is
// mantissa * 2^(exponent-16383-63). The conversion only shifts the mantissa
// and is exact for every value that fits a uint32. Zero, denormals and
// values below 1 give 0.
func extendedToHz(b [extendedLen]byte) (uint32, error) {
	signExp := binary.BigEndian.Uint16(b[0:2])
	exp := int(signExp & extendedExpMask)
	mant := binary.BigEndian.Uint64(b[2:10])

	if exp == extendedExpMask {
		return 0, errExtendedNotFinite
	}

	if mant == 0 {
		return 0, nil
	}

	if signExp&0x8000 != 0 {
		return 0, errExtendedNegative
	}

	shift := exp - extendedBias - 63

	switch {
	case shift >= 32:
		return 0, errExtendedOverflow
	case shift >= 0:
		if mant > math.MaxUint32>>shift {
			return 0, errExtendedOverflow
		}

		return uint32(mant << shift), nil
	case shift <= -64:
		return 0, nil
	default:
		v := mant >> -shift
		if v > math.MaxUint32 {
			return 0, errExtendedOverflow
		}

		return uint32(v), nil
	}
}
