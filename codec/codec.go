package codec

var (
	defaultCompiler = NewCompiler()
	defaultEncoder  = NewEncoderWithCompiler(defaultCompiler)
	defaultDecoder  = NewDecoderWithCompiler(defaultCompiler)
)

// DefaultCompiler returns the compiler shared by the package-level functions.
func DefaultCompiler() *Compiler {
	return defaultCompiler
}

// Encode encodes a dynamic value with the shared encoder.
func Encode(l *Layout, v any) ([]byte, error) {
	return defaultEncoder.Encode(l, v)
}

// EncodedSize returns the exact encoded length of a dynamic value.
func EncodedSize(l *Layout, v any) (int, error) {
	return defaultEncoder.EncodedSize(l, v)
}

// Marshal encodes a Go value with the shared encoder.
func Marshal(l *Layout, v any) ([]byte, error) {
	return defaultEncoder.Marshal(l, v)
}

// Decode decodes exactly one dynamic value from data.
func Decode(l *Layout, data []byte) (any, error) {
	return defaultDecoder.Decode(l, data)
}

// DecodePrefix decodes one dynamic value from the start of data.
func DecodePrefix(l *Layout, data []byte) (any, int, error) {
	return defaultDecoder.DecodePrefix(l, data)
}

// Unmarshal decodes exactly one value from data into v.
func Unmarshal(l *Layout, data []byte, v any) error {
	return defaultDecoder.Unmarshal(l, data, v)
}

// UnmarshalPrefix decodes one value from the start of data into v.
func UnmarshalPrefix(l *Layout, data []byte, v any) (int, error) {
	return defaultDecoder.UnmarshalPrefix(l, data, v)
}
