package convert

import (
	"math"
	"math/big"
	"strings"
)

// Status reports the outcome of a coercion.
type Status uint8

const (
	OK         Status = iota
	OutOfRange        // numeric, but negative, fractional or too wide
	NotNumeric        // not a number at all
)

// CoerceToUint64 handles every Go integer kind plus whole JSON numbers (float64).
// The result must still be checked against the target width by the caller.
func CoerceToUint64(value any) (uint64, Status) {
	switch v := value.(type) {
	case uint64:
		return v, OK
	case uint8:
		return uint64(v), OK
	case uint16:
		return uint64(v), OK
	case uint32:
		return uint64(v), OK
	case uint:
		return uint64(v), OK
	case int8:
		return signed(int64(v))
	case int16:
		return signed(int64(v))
	case int32:
		return signed(int64(v))
	case int:
		return signed(int64(v))
	case int64:
		return signed(v)
	case float64:
		// float64(MaxUint64) rounds up to 2^64, hence the strict bound
		if v < 0 || v >= 1<<64 || v != math.Trunc(v) {
			return 0, OutOfRange
		}
		return uint64(v), OK
	case float32:
		f := float64(v)
		if f < 0 || f >= 1<<64 || f != math.Trunc(f) {
			return 0, OutOfRange
		}
		return uint64(f), OK
	case *big.Int:
		if v == nil {
			return 0, NotNumeric
		}
		if v.Sign() < 0 || !v.IsUint64() {
			return 0, OutOfRange
		}
		return v.Uint64(), OK
	}
	return 0, NotNumeric
}

func signed(v int64) (uint64, Status) {
	if v < 0 {
		return 0, OutOfRange
	}
	return uint64(v), OK
}

// CoerceToBig converts any supported numeric value, including *big.Int,
// big.Int and decimal strings, to a non-negative big integer.
func CoerceToBig(value any) (*big.Int, Status) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, NotNumeric
		}
		if v.Sign() < 0 {
			return nil, OutOfRange
		}
		return new(big.Int).Set(v), OK
	case big.Int:
		return CoerceToBig(&v)
	case string:
		n, ok := new(big.Int).SetString(strings.TrimSpace(v), 10)
		if !ok {
			return nil, NotNumeric
		}
		if n.Sign() < 0 {
			return nil, OutOfRange
		}
		return n, OK
	}
	u, st := CoerceToUint64(value)
	if st != OK {
		return nil, st
	}
	return new(big.Int).SetUint64(u), OK
}

// FitsWidth reports whether v fits in an unsigned integer of width bytes (1, 2 or 8).
func FitsWidth(v uint64, width int) bool {
	switch width {
	case 1:
		return v <= math.MaxUint8
	case 2:
		return v <= math.MaxUint16
	case 8:
		return true
	}
	return false
}
