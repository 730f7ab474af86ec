package codec

import (
	"encoding/json"
	"math/big"
	"testing"
)

func TestUint128_BigRoundTrip(t *testing.T) {
	tests := []string{
		"0",
		"1",
		"18446744073709551615",
		"18446744073709551616",
		"340282366920938463463374607431768211455",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			b, _ := new(big.Int).SetString(s, 10)
			u, ok := Uint128FromBig(b)
			if !ok {
				t.Fatalf("Uint128FromBig(%s) rejected", s)
			}
			if u.String() != s {
				t.Errorf("String() = %s, want %s", u.String(), s)
			}
			if u.Big().Cmp(b) != 0 {
				t.Errorf("Big() = %s, want %s", u.Big(), s)
			}
		})
	}
}

func TestUint128_FromBigRejects(t *testing.T) {
	if _, ok := Uint128FromBig(big.NewInt(-1)); ok {
		t.Error("negative value accepted")
	}
	if _, ok := Uint128FromBig(new(big.Int).Lsh(big.NewInt(1), 128)); ok {
		t.Error("2^128 accepted")
	}
	if _, ok := Uint128FromBig(nil); ok {
		t.Error("nil accepted")
	}
}

func TestUint128_Cmp(t *testing.T) {
	a := Uint128{Lo: 5}
	b := Uint128{Lo: 1, Hi: 1}
	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(a) != 0 {
		t.Error("Cmp ordering wrong")
	}
	if !(Uint128{}).IsZero() || a.IsZero() {
		t.Error("IsZero wrong")
	}
	if NewUint128(7) != (Uint128{Lo: 7}) {
		t.Error("NewUint128 wrong")
	}
}

func TestUint128_JSON(t *testing.T) {
	in := struct {
		V Uint128 `json:"v"`
	}{V: Uint128{Lo: 1, Hi: 1}}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"v":"18446744073709551617"}` {
		t.Errorf("Marshal = %s", data)
	}

	var out struct {
		V Uint128 `json:"v"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if out.V != in.V {
		t.Errorf("Unmarshal = %v, want %v", out.V, in.V)
	}

	var bad Uint128
	if err := bad.UnmarshalText([]byte("-3")); err == nil {
		t.Error("negative text accepted")
	}
	if err := bad.UnmarshalText([]byte("abc")); err == nil {
		t.Error("non-decimal text accepted")
	}
}
