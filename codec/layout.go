package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raydium-io/raydium-amm/codec/internal/convert"
	"github.com/raydium-io/raydium-amm/errors"
)

// Layout describes how one logical value maps to bytes. Layouts are immutable
// once constructed and may be shared by any number of concurrent calls.
//
// Constructors panic on malformed schemas (nil children, duplicate names or
// tags, size overflow): schemas are static data built at process start.
type Layout struct {
	fields  []Field
	cases   []Case
	byName  map[string]int
	byTag   map[uint8]int
	elem    *Layout
	count   int
	size    int // fixed size, or -1 when value-dependent
	minSize int
	maxSize int
	kind    Kind
}

// Field is a named member of a Struct layout.
type Field struct {
	Layout *Layout
	Name   string
}

// Case is one variant of a Union layout.
type Case struct {
	Layout *Layout
	Name   string
	Tag    uint8
}

// Named declares a struct field.
func Named(name string, l *Layout) Field {
	return Field{Name: name, Layout: l}
}

// Tagged declares a union variant. The payload must be a Struct layout.
func Tagged(tag uint8, name string, payload *Layout) Case {
	return Case{Tag: tag, Name: name, Layout: payload}
}

// Primitive layouts. Integers are unsigned and little-endian.
var (
	U8        = primitive(KindU8)
	U16       = primitive(KindU16)
	U64       = primitive(KindU64)
	U128      = primitive(KindU128)
	PublicKey = primitive(KindPublicKey)
)

func primitive(k Kind) *Layout {
	w := k.Width()
	return &Layout{kind: k, size: w, minSize: w, maxSize: w}
}

// Bytes is an opaque run of n bytes copied verbatim.
func Bytes(n int) *Layout {
	if n < 0 {
		panic(fmt.Sprintf("codec: negative bytes length %d", n))
	}
	return &Layout{kind: KindBytes, count: n, size: n, minSize: n, maxSize: n}
}

// Struct lays fields out back to back in declaration order, with no padding.
func Struct(fields ...Field) *Layout {
	l := &Layout{
		kind:   KindStruct,
		fields: append([]Field(nil), fields...),
		byName: make(map[string]int, len(fields)),
	}
	fixed := true
	for i, f := range l.fields {
		if f.Layout == nil {
			panic(fmt.Sprintf("codec: struct field %q has nil layout", f.Name))
		}
		if _, dup := l.byName[f.Name]; dup {
			panic(fmt.Sprintf("codec: duplicate struct field %q", f.Name))
		}
		l.byName[f.Name] = i
		l.minSize = mustAdd(l.minSize, f.Layout.minSize)
		l.maxSize = mustAdd(l.maxSize, f.Layout.maxSize)
		fixed = fixed && f.Layout.IsFixed()
	}
	l.size = -1
	if fixed {
		l.size = l.minSize
	}
	return l
}

// Array repeats elem exactly count times with no length prefix.
func Array(elem *Layout, count int) *Layout {
	if elem == nil {
		panic("codec: array element has nil layout")
	}
	if count < 0 {
		panic(fmt.Sprintf("codec: negative array count %d", count))
	}
	l := &Layout{
		kind:    KindArray,
		elem:    elem,
		count:   count,
		minSize: mustMul(elem.minSize, count),
		maxSize: mustMul(elem.maxSize, count),
		size:    -1,
	}
	if elem.IsFixed() {
		l.size = l.minSize
	}
	return l
}

// Option prefixes inner with a presence byte; the inner bytes follow only when present.
func Option(inner *Layout) *Layout {
	if inner == nil {
		panic("codec: option has nil layout")
	}
	return &Layout{
		kind:    KindOption,
		elem:    inner,
		size:    -1,
		minSize: 1,
		maxSize: mustAdd(1, inner.maxSize),
	}
}

// Union selects one Struct payload by a single leading discriminator byte.
func Union(cases ...Case) *Layout {
	if len(cases) == 0 {
		panic("codec: union without cases")
	}
	l := &Layout{
		kind:   KindUnion,
		cases:  append([]Case(nil), cases...),
		byName: make(map[string]int, len(cases)),
		byTag:  make(map[uint8]int, len(cases)),
	}
	minPayload, maxPayload := -1, 0
	sameSize := true
	for i, c := range l.cases {
		if c.Layout == nil || c.Layout.kind != KindStruct {
			panic(fmt.Sprintf("codec: union case %q must have a struct payload", c.Name))
		}
		if _, dup := l.byName[c.Name]; dup {
			panic(fmt.Sprintf("codec: duplicate union case name %q", c.Name))
		}
		if _, dup := l.byTag[c.Tag]; dup {
			panic(fmt.Sprintf("codec: duplicate union tag %d", c.Tag))
		}
		l.byName[c.Name] = i
		l.byTag[c.Tag] = i
		if minPayload < 0 || c.Layout.minSize < minPayload {
			minPayload = c.Layout.minSize
		}
		if c.Layout.maxSize > maxPayload {
			maxPayload = c.Layout.maxSize
		}
		sameSize = sameSize && c.Layout.IsFixed() && c.Layout.size == l.cases[0].Layout.size
	}
	l.minSize = mustAdd(1, minPayload)
	l.maxSize = mustAdd(1, maxPayload)
	l.size = -1
	if sameSize {
		l.size = l.minSize
	}
	return l
}

func mustAdd(a, b int) int {
	v, ok := convert.SafeAddInt(a, b)
	if !ok {
		panic("codec: layout size overflows int")
	}
	return v
}

func mustMul(a, b int) int {
	v, ok := convert.SafeMulInt(a, b)
	if !ok {
		panic("codec: layout size overflows int")
	}
	return v
}

func (l *Layout) Kind() Kind { return l.kind }

// IsFixed reports whether every value of this layout encodes to Size bytes.
func (l *Layout) IsFixed() bool { return l.size >= 0 }

// Size returns the fixed encoded size, or -1 when the size depends on the value.
func (l *Layout) Size() int { return l.size }

// MinSize returns the smallest possible encoded size.
func (l *Layout) MinSize() int { return l.minSize }

// MaxSize returns the largest possible encoded size.
func (l *Layout) MaxSize() int { return l.maxSize }

// Fields returns the struct fields in declaration order.
func (l *Layout) Fields() []Field {
	return append([]Field(nil), l.fields...)
}

// Field returns the layout of the named struct field.
func (l *Layout) Field(name string) (*Layout, bool) {
	if l.kind != KindStruct {
		return nil, false
	}
	i, ok := l.byName[name]
	if !ok {
		return nil, false
	}
	return l.fields[i].Layout, true
}

// Elem returns the element layout of an array or the inner layout of an option.
func (l *Layout) Elem() *Layout { return l.elem }

// Count returns the array element count or the bytes length.
func (l *Layout) Count() int { return l.count }

// Cases returns the union variants in declaration order.
func (l *Layout) Cases() []Case {
	return append([]Case(nil), l.cases...)
}

// CaseByName looks up a union variant by its logical name.
func (l *Layout) CaseByName(name string) (Case, bool) {
	if l.kind != KindUnion {
		return Case{}, false
	}
	i, ok := l.byName[name]
	if !ok {
		return Case{}, false
	}
	return l.cases[i], true
}

// CaseByTag looks up a union variant by its discriminator.
func (l *Layout) CaseByTag(tag uint8) (Case, bool) {
	if l.kind != KindUnion {
		return Case{}, false
	}
	i, ok := l.byTag[tag]
	if !ok {
		return Case{}, false
	}
	return l.cases[i], true
}

// Offset returns the byte offset of a nested field. Struct members are
// addressed by name and array elements by decimal index. Every byte before
// the target must have a fixed size.
func (l *Layout) Offset(path ...string) (int, error) {
	offset := 0
	cur := l
	for i, step := range path {
		switch cur.kind {
		case KindStruct:
			idx, ok := cur.byName[step]
			if !ok {
				return 0, errors.New(errors.PhaseSchema, errors.KindInvalidName).
					Path(path[:i+1]...).
					Detail("unknown field %q", step).
					Build()
			}
			for _, f := range cur.fields[:idx] {
				if !f.Layout.IsFixed() {
					return 0, errors.New(errors.PhaseSchema, errors.KindUnsupported).
						Path(path[:i+1]...).
						Detail("field %q follows variable-size field %q", step, f.Name).
						Build()
				}
				offset += f.Layout.size
			}
			cur = cur.fields[idx].Layout
		case KindArray:
			n, err := strconv.Atoi(strings.Trim(step, "[]"))
			if err != nil || n < 0 || n >= cur.count {
				return 0, errors.New(errors.PhaseSchema, errors.KindOutOfRange).
					Path(path[:i+1]...).
					Detail("index %q outside array of %d", step, cur.count).
					Build()
			}
			if !cur.elem.IsFixed() {
				return 0, errors.New(errors.PhaseSchema, errors.KindUnsupported).
					Path(path[:i+1]...).
					Detail("array elements have variable size").
					Build()
			}
			offset += n * cur.elem.size
			cur = cur.elem
		default:
			return 0, errors.New(errors.PhaseSchema, errors.KindUnsupported).
				Path(path[:i+1]...).
				Detail("cannot address into %s", cur.kind).
				Build()
		}
	}
	return offset, nil
}

// String returns a compact description such as "array<u64,4>".
func (l *Layout) String() string {
	switch l.kind {
	case KindBytes:
		return "bytes<" + strconv.Itoa(l.count) + ">"
	case KindStruct:
		return "struct{" + strconv.Itoa(len(l.fields)) + " fields}"
	case KindArray:
		return "array<" + l.elem.String() + "," + strconv.Itoa(l.count) + ">"
	case KindOption:
		return "option<" + l.elem.String() + ">"
	case KindUnion:
		return "union{" + strconv.Itoa(len(l.cases)) + " cases}"
	default:
		return l.kind.String()
	}
}
