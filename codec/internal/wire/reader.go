package wire

import (
	"encoding/binary"
	"fmt"
)

// ShortBufferError is returned when fewer bytes remain than an operation needs.
type ShortBufferError struct {
	Need     int
	Have     int
	Position int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("wire: at position %d: need %d bytes, %d remaining", e.Position, e.Need, e.Have)
}

// Reader reads fixed-width little-endian values from a byte slice.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

func (r *Reader) need(n int) error {
	if n < 0 || r.Remaining() < n {
		return &ShortBufferError{Need: n, Have: r.Remaining(), Position: r.pos}
	}
	return nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadU64 reads a little-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadU128 reads a little-endian 128-bit integer as its low and high halves.
func (r *Reader) ReadU128() (lo, hi uint64, err error) {
	if err := r.need(16); err != nil {
		return 0, 0, err
	}
	lo = binary.LittleEndian.Uint64(r.buf[r.pos:])
	hi = binary.LittleEndian.Uint64(r.buf[r.pos+8:])
	r.pos += 16
	return lo, hi, nil
}

// ReadInto copies exactly len(dst) bytes into dst.
func (r *Reader) ReadInto(dst []byte) error {
	if err := r.need(len(dst)); err != nil {
		return err
	}
	copy(dst, r.buf[r.pos:])
	r.pos += len(dst)
	return nil
}

// ReadBytes returns a copy of the next n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:])
	r.pos += n
	return out, nil
}
