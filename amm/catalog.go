package amm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/raydium-io/raydium-amm/codec"
	"github.com/raydium-io/raydium-amm/errors"
)

// RecordKind classifies catalog records.
type RecordKind uint8

const (
	// RecordAccount is a fixed-size account snapshot.
	RecordAccount RecordKind = iota
	// RecordInstruction is the full instruction union.
	RecordInstruction
	// RecordVariant is a single instruction variant addressed by name.
	RecordVariant
	// RecordLog is the ray_log event union.
	RecordLog
)

func (k RecordKind) String() string {
	return enumName([]string{"account", "instruction", "variant", "log"}, uint64(k))
}

// Record is one named schema in the catalog.
type Record struct {
	// Layout is the record's own layout. For variant records it is the
	// variant payload without the discriminator byte.
	Layout  *codec.Layout
	Name    string
	Kind    RecordKind
	Account AccountKind
	Tag     uint8
}

// Fixed reports whether every encoding of the record has the same length.
func (r *Record) Fixed() bool { return r.Layout.IsFixed() }

// Size returns the encoded length of a fixed record, including the
// discriminator byte for variants, or -1.
func (r *Record) Size() int {
	if !r.Layout.IsFixed() {
		return -1
	}
	if r.Kind == RecordVariant {
		return 1 + r.Layout.Size()
	}
	return r.Layout.Size()
}

// MinSize returns the smallest valid encoding length.
func (r *Record) MinSize() int {
	if r.Kind == RecordVariant {
		return 1 + r.Layout.MinSize()
	}
	return r.Layout.MinSize()
}

var (
	catalog       []*Record
	catalogByName map[string]*Record
)

func init() {
	for _, k := range AccountKinds() {
		catalog = append(catalog, &Record{Name: k.String(), Kind: RecordAccount, Layout: accountLayouts[k], Account: k})
	}
	catalog = append(catalog, &Record{Name: "instruction", Kind: RecordInstruction, Layout: InstructionLayout})
	for _, c := range InstructionLayout.Cases() {
		catalog = append(catalog, &Record{Name: c.Name, Kind: RecordVariant, Layout: c.Layout, Tag: c.Tag})
	}
	catalog = append(catalog, &Record{Name: "rayLog", Kind: RecordLog, Layout: RayLogLayout})

	catalogByName = make(map[string]*Record, len(catalog))
	for _, r := range catalog {
		if _, dup := catalogByName[r.Name]; dup {
			panic("amm: duplicate catalog record " + r.Name)
		}
		catalogByName[r.Name] = r
	}
}

// Records lists every catalog record: accounts, the instruction union, each
// instruction variant, then the log union.
func Records() []Record {
	out := make([]Record, len(catalog))
	for i, r := range catalog {
		out[i] = *r
	}
	return out
}

// Lookup returns the record registered under name.
func Lookup(name string) (*Record, error) {
	r, ok := catalogByName[name]
	if !ok {
		return nil, errors.InvalidName(errors.PhaseCatalog, "record", name)
	}
	cp := *r
	return &cp, nil
}

// SizeOf returns the encoded length of a fixed-size record.
func SizeOf(name string) (int, error) {
	r, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	if !r.Fixed() {
		return 0, errors.New(errors.PhaseCatalog, errors.KindUnsupported).
			Path(name).
			LayoutType(r.Layout.String()).
			Detail("record %s has no fixed size", name).
			Build()
	}
	return r.Size(), nil
}

// Encode encodes value as the named record. value is either a typed record
// (an Account, Instruction or RayLog) or a dynamic codec.Object or
// codec.Variant. Variant records take the payload fields as an Object.
func Encode(name string, value any) ([]byte, error) {
	r, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errors.NilPointer(errors.PhaseEncode, []string{name}, "nil")
	}

	var data []byte
	switch r.Kind {
	case RecordAccount:
		if a, ok := value.(Account); ok {
			if !isNil(a) && a.AccountKind() != r.Account {
				return nil, mismatch(name, value, r)
			}
			return EncodeAccount(a)
		}
		if _, ok := toObject(value); ok {
			data, err = codec.Encode(r.Layout, value)
		} else {
			data, err = codec.Marshal(r.Layout, value)
		}

	case RecordInstruction:
		if ix, ok := value.(Instruction); ok {
			return EncodeInstruction(ix)
		}
		data, err = codec.Encode(r.Layout, value)

	case RecordVariant:
		if ix, ok := value.(Instruction); ok {
			if !isNil(ix) && uint8(ix.Kind()) != r.Tag {
				return nil, mismatch(name, value, r)
			}
			return EncodeInstruction(ix)
		}
		if v, ok := value.(codec.Variant); ok {
			if v.Name != "" && v.Name != name {
				return nil, mismatch(name, value, r)
			}
			value = v.Fields
		}
		fields, ok := toObject(value)
		if !ok {
			return nil, mismatch(name, value, r)
		}
		data, err = codec.Encode(InstructionLayout, codec.Variant{Name: name, Fields: fields})

	case RecordLog:
		if log, ok := value.(RayLog); ok {
			return PackRayLog(log)
		}
		data, err = codec.Encode(r.Layout, value)
	}
	if err != nil {
		return nil, errors.WithPath(err, name)
	}
	return data, nil
}

// Decode decodes data as the named record and returns its typed value: a
// pointer to the account struct, an Instruction or a RayLog.
//
// Accounts and logs must match their size exactly. Instructions only need
// to be long enough; trailing bytes are ignored.
func Decode(name string, data []byte) (any, error) {
	r, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	var v any
	switch r.Kind {
	case RecordAccount:
		v, err = DecodeAccount(r.Account, data)
	case RecordInstruction:
		v, err = DecodeInstruction(data)
	case RecordVariant:
		if err = checkTag(r, data); err == nil {
			v, err = DecodeInstruction(data)
		}
	case RecordLog:
		v, err = UnpackRayLog(data)
	}
	if err != nil {
		logDecodeFailure(name, data, err)
		return nil, err
	}
	return v, nil
}

// DecodeValue is Decode returning the dynamic value: codec.Object for
// accounts and codec.Variant for unions and variant records.
func DecodeValue(name string, data []byte) (any, error) {
	r, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	var v any
	switch r.Kind {
	case RecordAccount, RecordLog:
		v, err = codec.Decode(r.Layout, data)
	case RecordInstruction:
		v, _, err = codec.DecodePrefix(r.Layout, data)
	case RecordVariant:
		if err = checkTag(r, data); err == nil {
			v, _, err = codec.DecodePrefix(InstructionLayout, data)
		}
	}
	if err != nil {
		err = errors.WithPath(err, name)
		logDecodeFailure(name, data, err)
		return nil, err
	}
	return v, nil
}

func checkTag(r *Record, data []byte) error {
	if len(data) == 0 {
		return errors.BufferTooSmall(errors.PhaseDecode, []string{r.Name}, 1, 0)
	}
	if data[0] != r.Tag {
		got := InstructionKind(data[0])
		return errors.InvalidDiscriminator(errors.PhaseDecode, []string{r.Name}, data[0],
			"payload is "+got.String()+", not "+r.Name)
	}
	return nil
}

func logDecodeFailure(name string, data []byte, err error) {
	Logger().Debug("record decode failed",
		zap.String("record", name),
		zap.Int("len", len(data)),
		zap.Error(err))
}

func mismatch(name string, value any, r *Record) error {
	return errors.New(errors.PhaseCatalog, errors.KindTypeMismatch).
		Path(name).
		GoType(fmt.Sprintf("%T", value)).
		LayoutType(r.Layout.String()).
		Detail("value does not belong to record %s", name).
		Build()
}

func toObject(v any) (codec.Object, bool) {
	switch o := v.(type) {
	case codec.Object:
		return o, true
	case map[string]any:
		return codec.Object(o), true
	case *codec.Object:
		if o != nil {
			return *o, true
		}
	}
	return nil, false
}
