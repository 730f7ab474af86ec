package wire

import "encoding/binary"

// Writer writes fixed-width little-endian values into a preallocated slice.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter creates a Writer over buf. The caller sizes buf exactly.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Position returns the number of bytes written so far.
func (w *Writer) Position() int {
	return w.pos
}

// Bytes returns the written prefix of the buffer.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.pos]
}

func (w *Writer) need(n int) error {
	if have := len(w.buf) - w.pos; n < 0 || have < n {
		return &ShortBufferError{Need: n, Have: have, Position: w.pos}
	}
	return nil
}

// WriteU8 writes a single byte.
func (w *Writer) WriteU8(v uint8) error {
	if err := w.need(1); err != nil {
		return err
	}
	w.buf[w.pos] = v
	w.pos++
	return nil
}

// WriteU16 writes a little-endian uint16.
func (w *Writer) WriteU16(v uint16) error {
	if err := w.need(2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(w.buf[w.pos:], v)
	w.pos += 2
	return nil
}

// WriteU64 writes a little-endian uint64.
func (w *Writer) WriteU64(v uint64) error {
	if err := w.need(8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(w.buf[w.pos:], v)
	w.pos += 8
	return nil
}

// WriteU128 writes a little-endian 128-bit integer from its halves.
func (w *Writer) WriteU128(lo, hi uint64) error {
	if err := w.need(16); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(w.buf[w.pos:], lo)
	binary.LittleEndian.PutUint64(w.buf[w.pos+8:], hi)
	w.pos += 16
	return nil
}

// WriteBytes copies data verbatim.
func (w *Writer) WriteBytes(data []byte) error {
	if err := w.need(len(data)); err != nil {
		return err
	}
	copy(w.buf[w.pos:], data)
	w.pos += len(data)
	return nil
}
