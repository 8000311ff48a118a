package wire

import (
	"bytes"
	"encoding/binary"
	"io"
)

// BufReader provides sequential reads of fixed-width integers from a byte
// slice in a settable byte order.  The protocol runs little-endian, so that
// is the initial order; codecs that need network byte order for a single
// field (see ReadNetAddress) save the current order, force big-endian and
// restore afterwards.
type BufReader struct {
	buf   []byte
	pos   int
	order binary.ByteOrder
}

// NewBufReader returns a reader over buf with the byte order set to
// little-endian.
func NewBufReader(buf []byte) *BufReader {
	return &BufReader{buf: buf, order: binary.LittleEndian}
}

// Remaining returns the number of bytes left to read.
func (r *BufReader) Remaining() int {
	return len(r.buf) - r.pos
}

// ByteOrder returns the current byte order used for fixed-width reads.
func (r *BufReader) ByteOrder() binary.ByteOrder {
	return r.order
}

// SetByteOrder sets the byte order used for subsequent fixed-width reads.
func (r *BufReader) SetByteOrder(order binary.ByteOrder) {
	r.order = order
}

// ReadBytes reads the next n raw bytes.  It returns io.ErrUnexpectedEOF when
// fewer than n bytes remain.
func (r *BufReader) ReadBytes(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, io.ErrUnexpectedEOF
	}
	data := r.buf[r.pos : r.pos+n]
	r.pos += n
	return data, nil
}

// ReadUint8 reads a single byte.
func (r *BufReader) ReadUint8() (uint8, error) {
	d, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return d[0], nil
}

// ReadUint16 reads a 16-bit unsigned integer in the current byte order.
func (r *BufReader) ReadUint16() (uint16, error) {
	d, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(d), nil
}

// ReadUint32 reads a 32-bit unsigned integer in the current byte order.
func (r *BufReader) ReadUint32() (uint32, error) {
	d, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(d), nil
}

// ReadUint64 reads a 64-bit unsigned integer in the current byte order.
func (r *BufReader) ReadUint64() (uint64, error) {
	d, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(d), nil
}

// ReadInt32 reads a 32-bit signed integer in the current byte order.
func (r *BufReader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads a 64-bit signed integer in the current byte order.
func (r *BufReader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// BufWriter accumulates sequential writes of raw bytes and fixed-width
// integers in a settable byte order.  Like BufReader, it starts out
// little-endian.
type BufWriter struct {
	buf   bytes.Buffer
	order binary.ByteOrder
}

// NewBufWriter returns an empty writer with the byte order set to
// little-endian.
func NewBufWriter() *BufWriter {
	return &BufWriter{order: binary.LittleEndian}
}

// Bytes returns the accumulated output.
func (w *BufWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *BufWriter) Len() int {
	return w.buf.Len()
}

// ByteOrder returns the current byte order used for fixed-width writes.
func (w *BufWriter) ByteOrder() binary.ByteOrder {
	return w.order
}

// SetByteOrder sets the byte order used for subsequent fixed-width writes.
func (w *BufWriter) SetByteOrder(order binary.ByteOrder) {
	w.order = order
}

// WriteBytes appends raw bytes verbatim.
func (w *BufWriter) WriteBytes(p []byte) error {
	_, err := w.buf.Write(p)
	return err
}

// WriteUint8 appends a single byte.
func (w *BufWriter) WriteUint8(v uint8) error {
	return w.buf.WriteByte(v)
}

// WriteUint16 appends a 16-bit unsigned integer in the current byte order.
func (w *BufWriter) WriteUint16(v uint16) error {
	var b [2]byte
	w.order.PutUint16(b[:], v)
	return w.WriteBytes(b[:])
}

// WriteUint32 appends a 32-bit unsigned integer in the current byte order.
func (w *BufWriter) WriteUint32(v uint32) error {
	var b [4]byte
	w.order.PutUint32(b[:], v)
	return w.WriteBytes(b[:])
}

// WriteUint64 appends a 64-bit unsigned integer in the current byte order.
func (w *BufWriter) WriteUint64(v uint64) error {
	var b [8]byte
	w.order.PutUint64(b[:], v)
	return w.WriteBytes(b[:])
}

// WriteInt32 appends a 32-bit signed integer in the current byte order.
func (w *BufWriter) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

// WriteInt64 appends a 64-bit signed integer in the current byte order.
func (w *BufWriter) WriteInt64(v int64) error {
	return w.WriteUint64(uint64(v))
}
