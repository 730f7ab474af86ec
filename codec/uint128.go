package codec

import (
	"fmt"
	"math/big"
)

// Uint128 is an unsigned 128-bit integer stored as two little-endian halves.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// NewUint128 widens v.
func NewUint128(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Uint128FromBig converts b, reporting false when b is negative or wider than 128 bits.
func Uint128FromBig(b *big.Int) (Uint128, bool) {
	if b == nil || b.Sign() < 0 || b.BitLen() > 128 {
		return Uint128{}, false
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	return Uint128{Lo: lo.Uint64(), Hi: hi.Uint64()}, true
}

// Big returns u as a new big integer.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

// Cmp compares u and o and returns -1, 0 or +1.
func (u Uint128) Cmp(o Uint128) int {
	switch {
	case u.Hi < o.Hi:
		return -1
	case u.Hi > o.Hi:
		return 1
	case u.Lo < o.Lo:
		return -1
	case u.Lo > o.Lo:
		return 1
	}
	return 0
}

// String renders u in decimal.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("%d", u.Lo)
	}
	return u.Big().String()
}

// MarshalText renders u as a decimal string so JSON output keeps full precision.
func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint128) UnmarshalText(text []byte) error {
	b, ok := new(big.Int).SetString(string(text), 10)
	if !ok {
		return fmt.Errorf("uint128: invalid decimal %q", text)
	}
	v, ok := Uint128FromBig(b)
	if !ok {
		return fmt.Errorf("uint128: %s out of range", text)
	}
	*u = v
	return nil
}
