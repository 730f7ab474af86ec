// Package codec provides schema-driven binary layout encoding and decoding.
//
// A Layout describes the byte shape of one value. Layouts are packed and
// little-endian with no alignment or padding:
//
//	Layout          Size            Wire shape
//	─────────────────────────────────────────────────────────────
//	u8              1
//	u16             2               little-endian
//	u64             8               little-endian
//	u128            16              little-endian, low half first
//	publicKey       32              copied verbatim
//	bytes<n>        n               copied verbatim
//	struct          sum             fields in declaration order
//	array<T,n>      n*size(T)       no length prefix
//	option<T>       1 or 1+size(T)  presence byte 0/1, then T if present
//	union           1+size(case)    discriminator byte, then the case struct
//
// Sizes and fixedness are computed when a layout is constructed, never per
// call. Schemas are static data: constructors panic on duplicate names,
// duplicate tags and nil children.
//
// # Key Types
//
//	Layout    - Immutable schema node (U8, U64, Struct, Array, Option, Union, ...)
//	Object    - Dynamic value of a struct layout
//	Variant   - Dynamic value of a union layout
//	Uint128   - Unsigned 128-bit integer
//	Compiler  - Binds layouts to Go types and caches the result
//	Encoder   - Writes values into exactly sized buffers
//	Decoder   - Reads values out of caller buffers
//
// # Dynamic and Typed Paths
//
// Encode and Decode work on dynamic values (Object, Variant, []any and
// scalars). Marshal and Unmarshal work on Go structs through a compiled
// Binding; struct fields are matched by a `layout:"name"` tag first and
// then by case-insensitive name. Options bind to pointers, arrays to Go
// arrays or slices, publicKey to any [32]byte type such as solana.PublicKey.
//
// # Length Rules
//
// Decode and Unmarshal require data to hold exactly one value: fixed
// layouts fail with wrong_length unless len(data) == Size, and variable
// layouts reject trailing bytes. DecodePrefix and UnmarshalPrefix decode
// one value from the front of data and report how many bytes were used.
//
// # Thread Safety
//
// Layouts, Compiler, Encoder and Decoder are safe for concurrent use.
// Decoded values never alias the input buffer.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[decode] buffer_too_small at swapBaseIn.minimumAmountOut: need 8 bytes, 3 remaining
//	[encode] out_of_range at setParams.param: layout u8 - value 300 does not fit u8
package codec
