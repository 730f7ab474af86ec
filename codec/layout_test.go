package codec

import (
	"errors"
	"testing"

	cerrors "github.com/raydium-io/raydium-amm/errors"
)

func TestLayout_PrimitiveSizes(t *testing.T) {
	tests := []struct {
		layout *Layout
		name   string
		size   int
	}{
		{name: "u8", layout: U8, size: 1},
		{name: "u16", layout: U16, size: 2},
		{name: "u64", layout: U64, size: 8},
		{name: "u128", layout: U128, size: 16},
		{name: "publicKey", layout: PublicKey, size: 32},
		{name: "bytes<7>", layout: Bytes(7), size: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}
			if !tt.layout.IsFixed() {
				t.Error("primitive should be fixed size")
			}
			if tt.layout.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.layout.String(), tt.name)
			}
		})
	}
}

func TestLayout_CompositeSizes(t *testing.T) {
	order := Struct(Named("price", U64), Named("vol", U64))
	orders := Array(order, 50)
	if orders.Size() != 800 {
		t.Errorf("orders Size() = %d, want 800", orders.Size())
	}

	nested := Struct(
		Named("owner", Array(U64, 4)),
		Named("orders", orders),
		Named("bits", U128),
	)
	if nested.Size() != 32+800+16 {
		t.Errorf("nested Size() = %d, want %d", nested.Size(), 32+800+16)
	}
	if nested.MinSize() != nested.MaxSize() {
		t.Errorf("fixed layout min %d != max %d", nested.MinSize(), nested.MaxSize())
	}
}

func TestLayout_OptionSizes(t *testing.T) {
	opt := Option(PublicKey)
	if opt.IsFixed() {
		t.Error("option should not be fixed size")
	}
	if opt.Size() != -1 {
		t.Errorf("Size() = %d, want -1", opt.Size())
	}
	if opt.MinSize() != 1 || opt.MaxSize() != 33 {
		t.Errorf("option bounds = [%d, %d], want [1, 33]", opt.MinSize(), opt.MaxSize())
	}

	s := Struct(Named("param", U8), Named("value", Option(U64)), Named("key", Option(PublicKey)))
	if s.IsFixed() {
		t.Error("struct with options should not be fixed size")
	}
	if s.MinSize() != 3 || s.MaxSize() != 1+9+33 {
		t.Errorf("struct bounds = [%d, %d], want [3, 43]", s.MinSize(), s.MaxSize())
	}
}

func TestLayout_UnionSizes(t *testing.T) {
	u := Union(
		Tagged(0, "empty", Struct()),
		Tagged(1, "amount", Struct(Named("amount", U64))),
	)
	if u.IsFixed() {
		t.Error("union with differently sized cases should not be fixed")
	}
	if u.MinSize() != 1 || u.MaxSize() != 9 {
		t.Errorf("union bounds = [%d, %d], want [1, 9]", u.MinSize(), u.MaxSize())
	}

	same := Union(
		Tagged(3, "a", Struct(Named("x", U64))),
		Tagged(4, "b", Struct(Named("y", U64))),
	)
	if same.Size() != 9 {
		t.Errorf("equal-case union Size() = %d, want 9", same.Size())
	}

	c, ok := u.CaseByTag(1)
	if !ok || c.Name != "amount" {
		t.Errorf("CaseByTag(1) = %+v, %v", c, ok)
	}
	c, ok = u.CaseByName("empty")
	if !ok || c.Tag != 0 {
		t.Errorf("CaseByName(empty) = %+v, %v", c, ok)
	}
	if _, ok := u.CaseByTag(99); ok {
		t.Error("CaseByTag(99) should not resolve")
	}
}

func TestLayout_ConstructorPanics(t *testing.T) {
	tests := []struct {
		build func()
		name  string
	}{
		{name: "duplicate field", build: func() { Struct(Named("a", U8), Named("a", U16)) }},
		{name: "nil field", build: func() { Struct(Named("a", nil)) }},
		{name: "negative count", build: func() { Array(U8, -1) }},
		{name: "nil element", build: func() { Array(nil, 2) }},
		{name: "negative bytes", build: func() { Bytes(-3) }},
		{name: "nil option", build: func() { Option(nil) }},
		{name: "empty union", build: func() { Union() }},
		{name: "duplicate tag", build: func() {
			Union(Tagged(1, "a", Struct()), Tagged(1, "b", Struct()))
		}},
		{name: "duplicate case name", build: func() {
			Union(Tagged(1, "a", Struct()), Tagged(2, "a", Struct()))
		}},
		{name: "non-struct case", build: func() { Union(Tagged(1, "a", U64)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.build()
		})
	}
}

func TestLayout_Offset(t *testing.T) {
	fees := Struct(Named("num", U64), Named("den", U64))
	l := Struct(
		Named("status", U64),
		Named("limbs", Array(U64, 4)),
		Named("fees", fees),
		Named("mint", PublicKey),
	)

	tests := []struct {
		name string
		path []string
		want int
	}{
		{name: "root", path: nil, want: 0},
		{name: "first", path: []string{"status"}, want: 0},
		{name: "array", path: []string{"limbs"}, want: 8},
		{name: "array element", path: []string{"limbs", "2"}, want: 24},
		{name: "bracketed element", path: []string{"limbs", "[3]"}, want: 32},
		{name: "nested", path: []string{"fees", "den"}, want: 48},
		{name: "after nested", path: []string{"mint"}, want: 56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Offset(tt.path...)
			if err != nil {
				t.Fatalf("Offset(%v) error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Offset(%v) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

func TestLayout_OffsetErrors(t *testing.T) {
	l := Struct(
		Named("flag", Option(U8)),
		Named("limbs", Array(U64, 2)),
		Named("amount", U64),
	)

	_, err := l.Offset("missing")
	if !errors.Is(err, cerrors.ErrInvalidName) {
		t.Errorf("unknown field: got %v, want invalid_name", err)
	}

	_, err = l.Offset("amount")
	var e *cerrors.Error
	if !errors.As(err, &e) || e.Kind != cerrors.KindUnsupported {
		t.Errorf("field after option: got %v, want unsupported", err)
	}

	if off, err := l.Offset("flag"); err != nil || off != 0 {
		t.Errorf("Offset(flag) = %d, %v; want 0", off, err)
	}

	_, err = l.Offset("flag", "inner")
	if !errors.As(err, &e) || e.Kind != cerrors.KindUnsupported {
		t.Errorf("addressing into option: got %v, want unsupported", err)
	}

	inner := Struct(Named("limbs", Array(U64, 2)))
	if _, err := inner.Offset("limbs", "2"); !errors.Is(err, cerrors.ErrOutOfRange) {
		t.Errorf("index past end: got %v, want out_of_range", err)
	}
}

func TestLayout_FieldsAreCopies(t *testing.T) {
	l := Struct(Named("a", U8), Named("b", U16))
	fields := l.Fields()
	fields[0].Name = "mutated"

	if l.Fields()[0].Name != "a" {
		t.Error("Fields() exposed internal slice")
	}
	if fl, ok := l.Field("b"); !ok || fl != U16 {
		t.Errorf("Field(b) = %v, %v", fl, ok)
	}
	if _, ok := U8.Field("a"); ok {
		t.Error("Field on a primitive should not resolve")
	}
}
