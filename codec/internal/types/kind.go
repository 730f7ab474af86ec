package types

type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindU64
	KindU128
	KindPublicKey
	KindBytes
	KindStruct
	KindArray
	KindOption
	KindUnion
)

var kindNames = [...]string{
	KindU8:        "u8",
	KindU16:       "u16",
	KindU64:       "u64",
	KindU128:      "u128",
	KindPublicKey: "publicKey",
	KindBytes:     "bytes",
	KindStruct:    "struct",
	KindArray:     "array",
	KindOption:    "option",
	KindUnion:     "union",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether the kind is an unsigned integer.
func (k Kind) IsScalar() bool {
	return k <= KindU128
}

// IsPrimitive reports whether the kind has no sub-layouts.
func (k Kind) IsPrimitive() bool {
	return k <= KindBytes
}

// Width returns the byte width of scalar and identifier kinds, 0 otherwise.
func (k Kind) Width() int {
	switch k {
	case KindU8:
		return 1
	case KindU16:
		return 2
	case KindU64:
		return 8
	case KindU128:
		return 16
	case KindPublicKey:
		return 32
	default:
		return 0
	}
}
