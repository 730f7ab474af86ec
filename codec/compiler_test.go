package codec

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/google/go-cmp/cmp"

	cerrors "github.com/raydium-io/raydium-amm/errors"
)

type testOrder struct {
	Price uint64
	Vol   uint64
}

type testPool struct {
	Owner   [4]uint64
	Orders  []testOrder
	Mint    solana.PublicKey `layout:"coinMint"`
	Bits    Uint128
	Padding [3]byte
}

var testPoolLayout = Struct(
	Named("owner", Array(U64, 4)),
	Named("orders", Array(Struct(Named("price", U64), Named("vol", U64)), 2)),
	Named("coinMint", PublicKey),
	Named("bits", U128),
	Named("padding", Bytes(3)),
)

func TestCompiler_Struct(t *testing.T) {
	c := NewCompiler()

	b, err := c.Compile(testPoolLayout, reflect.TypeOf(testPool{}))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if b.Kind != KindStruct {
		t.Errorf("Kind = %v, want struct", b.Kind)
	}
	if len(b.Fields) != 5 {
		t.Fatalf("Fields len = %d, want 5", len(b.Fields))
	}
	if b.Fields[2].GoName != "Mint" {
		t.Errorf("tagged field bound to %q, want Mint", b.Fields[2].GoName)
	}
}

func TestCompiler_Cache(t *testing.T) {
	c := NewCompiler()

	b1, err := c.Compile(testPoolLayout, reflect.TypeOf(testPool{}))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	b2, err := c.Compile(testPoolLayout, reflect.TypeOf(&testPool{}))
	if err != nil {
		t.Fatalf("Compile pointer failed: %v", err)
	}
	if b1 != b2 {
		t.Error("pointer and value types should share one cached binding")
	}
}

func TestCompiler_Mismatch(t *testing.T) {
	tests := []struct {
		goType reflect.Type
		layout *Layout
		name   string
		kind   cerrors.Kind
	}{
		{name: "u8 as uint16", layout: U8, goType: reflect.TypeOf(uint16(0)), kind: cerrors.KindTypeMismatch},
		{name: "u64 as int64", layout: U64, goType: reflect.TypeOf(int64(0)), kind: cerrors.KindTypeMismatch},
		{name: "u128 as uint64", layout: U128, goType: reflect.TypeOf(uint64(0)), kind: cerrors.KindTypeMismatch},
		{name: "key as short array", layout: PublicKey, goType: reflect.TypeOf([31]byte{}), kind: cerrors.KindTypeMismatch},
		{name: "array wrong length", layout: Array(U64, 4), goType: reflect.TypeOf([3]uint64{}), kind: cerrors.KindTypeMismatch},
		{name: "option as value", layout: Option(U64), goType: reflect.TypeOf(uint64(0)), kind: cerrors.KindTypeMismatch},
		{name: "struct as int", layout: Struct(Named("a", U8)), goType: reflect.TypeOf(0), kind: cerrors.KindTypeMismatch},
		{name: "missing field", layout: Struct(Named("absent", U8)), goType: reflect.TypeOf(testOrder{}), kind: cerrors.KindFieldMissing},
		{name: "union", layout: Union(Tagged(0, "a", Struct())), goType: reflect.TypeOf(testOrder{}), kind: cerrors.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompiler().Compile(tt.layout, tt.goType)
			var e *cerrors.Error
			if !errors.As(err, &e) {
				t.Fatalf("got %v, want *errors.Error", err)
			}
			if e.Kind != tt.kind || e.Phase != cerrors.PhaseCompile {
				t.Errorf("got %s/%s, want compile/%s", e.Phase, e.Kind, tt.kind)
			}
		})
	}
}

func TestCompiler_NilInputs(t *testing.T) {
	c := NewCompiler()
	if _, err := c.Compile(U8, nil); err == nil {
		t.Error("nil Go type should fail")
	}
	if _, err := c.Compile(nil, reflect.TypeOf(uint8(0))); err == nil {
		t.Error("nil layout should fail")
	}
}

func TestMarshal_MatchesDynamic(t *testing.T) {
	pool := testPool{
		Owner:   [4]uint64{1, 2, 3, 4},
		Orders:  []testOrder{{Price: 10, Vol: 1}, {Price: 20, Vol: 2}},
		Mint:    testKey,
		Bits:    Uint128{Lo: 5, Hi: 6},
		Padding: [3]byte{7, 8, 9},
	}
	typed, err := Marshal(testPoolLayout, &pool)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if len(typed) != testPoolLayout.Size() {
		t.Errorf("len = %d, want %d", len(typed), testPoolLayout.Size())
	}

	dynamic, err := Encode(testPoolLayout, Object{
		"owner":    []any{1, 2, 3, 4},
		"orders":   []any{Object{"price": 10, "vol": 1}, Object{"price": 20, "vol": 2}},
		"coinMint": testKey,
		"bits":     Uint128{Lo: 5, Hi: 6},
		"padding":  []byte{7, 8, 9},
	})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !bytes.Equal(typed, dynamic) {
		t.Errorf("typed and dynamic encodings differ:\n%x\n%x", typed, dynamic)
	}

	var back testPool
	if err := Unmarshal(testPoolLayout, typed, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if diff := cmp.Diff(pool, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshal_Errors(t *testing.T) {
	if _, err := Marshal(testPoolLayout, (*testPool)(nil)); !errors.Is(err, &cerrors.Error{Kind: cerrors.KindNilPointer}) {
		t.Errorf("nil pointer: got %v, want nil_pointer", err)
	}
	if _, err := Marshal(testPoolLayout, nil); err == nil {
		t.Error("untyped nil should fail")
	}

	short := testPool{Orders: []testOrder{{}}}
	if _, err := Marshal(testPoolLayout, short); !errors.Is(err, cerrors.ErrWrongLength) {
		t.Errorf("short slice: got %v, want wrong_length", err)
	}
}

type testSetParams struct {
	Value     *uint64
	NewPubkey *solana.PublicKey
	Fees      *testOrder
	Param     uint8
}

var testSetParamsLayout = Struct(
	Named("param", U8),
	Named("value", Option(U64)),
	Named("newPubkey", Option(PublicKey)),
	Named("fees", Option(Struct(Named("price", U64), Named("vol", U64)))),
)

func TestMarshal_Options(t *testing.T) {
	key := testKey
	v := testSetParams{Param: 10, NewPubkey: &key}

	data, err := Marshal(testSetParamsLayout, v)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := append(append([]byte{10, 0, 1}, testKey[:]...), 0)
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal = %x, want %x", data, want)
	}

	var back testSetParams
	if err := Unmarshal(testSetParamsLayout, data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if diff := cmp.Diff(v, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshal_NoPartialResult(t *testing.T) {
	orig := testSetParams{Param: 42}
	got := orig

	bad := []byte{1, 1, 5, 0, 0, 0, 0, 0, 0, 0, 7}
	err := Unmarshal(testSetParamsLayout, bad, &got)
	if !errors.Is(err, cerrors.ErrInvalidDiscriminator) {
		t.Fatalf("got %v, want invalid_discriminator", err)
	}
	if diff := cmp.Diff(orig, got); diff != "" {
		t.Errorf("failed Unmarshal modified target (-want +got):\n%s", diff)
	}
}

func TestUnmarshal_LengthRules(t *testing.T) {
	var o testOrder
	l := Struct(Named("price", U64), Named("vol", U64))

	if err := Unmarshal(l, make([]byte, 17), &o); !errors.Is(err, cerrors.ErrWrongLength) {
		t.Errorf("long input: got %v, want wrong_length", err)
	}
	if err := Unmarshal(l, make([]byte, 15), &o); !errors.Is(err, cerrors.ErrWrongLength) {
		t.Errorf("short input: got %v, want wrong_length", err)
	}
	n, err := UnmarshalPrefix(l, make([]byte, 20), &o)
	if err != nil || n != 16 {
		t.Errorf("UnmarshalPrefix = %d, %v; want 16", n, err)
	}
	if _, err := UnmarshalPrefix(l, make([]byte, 4), o); !errors.Is(err, &cerrors.Error{Kind: cerrors.KindNilPointer}) {
		t.Errorf("non-pointer target: got %v, want nil_pointer", err)
	}
}

func TestUnmarshal_ByteSlice(t *testing.T) {
	type raw struct {
		Data []byte
	}
	l := Struct(Named("data", Bytes(4)))

	var r raw
	if err := Unmarshal(l, []byte{1, 2, 3, 4}, &r); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !bytes.Equal(r.Data, []byte{1, 2, 3, 4}) {
		t.Errorf("Data = %x", r.Data)
	}
}
