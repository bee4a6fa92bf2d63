package savegame

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer appends big-endian fields to a growing buffer.
type Writer struct {
	buf []byte
}

func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

func (w *Writer) U8(v uint8)   { w.buf = append(w.buf, v) }
func (w *Writer) U16(v uint16) { w.buf = binary.BigEndian.AppendUint16(w.buf, v) }
func (w *Writer) U32(v uint32) { w.buf = binary.BigEndian.AppendUint32(w.buf, v) }
func (w *Writer) U64(v uint64) { w.buf = binary.BigEndian.AppendUint64(w.buf, v) }
func (w *Writer) I16(v int)    { w.U16(uint16(int16(v))) }
func (w *Writer) I32(v int)    { w.U32(uint32(int32(v))) }
func (w *Writer) I64(v int64)  { w.U64(uint64(v)) }
func (w *Writer) F64(v float64) {
	w.U64(math.Float64bits(v))
}

func (w *Writer) Bool(v bool) {
	if v {
		w.U8(1)
		return
	}
	w.U8(0)
}

// Text writes a length-prefixed string, truncated to 255 bytes.
func (w *Writer) Text(s string) {
	if len(s) > 0xff {
		s = s[:0xff]
	}
	w.U8(uint8(len(s)))
	w.buf = append(w.buf, s...)
}

// Blob writes a uint32 length prefix followed by data.
func (w *Writer) Blob(data []byte) {
	w.U32(uint32(len(data)))
	w.buf = append(w.buf, data...)
}

func (w *Writer) Raw(data []byte) { w.buf = append(w.buf, data...) }

func (w *Writer) Bytes() []byte { return w.buf }

// Reader reads big-endian fields and remembers the first error, after
// which every read returns zero values.
type Reader struct {
	r   io.Reader
	err error
	buf [8]byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) Err() error { return r.err }

func (r *Reader) read(n int) []byte {
	b := r.buf[:n]
	clear(b)
	if r.err != nil {
		return b
	}
	if _, err := io.ReadFull(r.r, b); err != nil {
		r.err = err
	}
	return b
}

func (r *Reader) U8() uint8   { return r.read(1)[0] }
func (r *Reader) U16() uint16 { return binary.BigEndian.Uint16(r.read(2)) }
func (r *Reader) U32() uint32 { return binary.BigEndian.Uint32(r.read(4)) }
func (r *Reader) U64() uint64 { return binary.BigEndian.Uint64(r.read(8)) }
func (r *Reader) I16() int    { return int(int16(r.U16())) }
func (r *Reader) I32() int    { return int(int32(r.U32())) }
func (r *Reader) I64() int64  { return int64(r.U64()) }
func (r *Reader) F64() float64 {
	return math.Float64frombits(r.U64())
}
func (r *Reader) Bool() bool { return r.U8() != 0 }

// Text reads a string written by Writer.Text.
func (r *Reader) Text() string {
	return string(r.Raw(int(r.U8())))
}

// Blob reads a uint32-prefixed block, refusing blocks larger than limit.
func (r *Reader) Blob(limit int) []byte {
	n := r.U32()
	if r.err == nil && int64(n) > int64(limit) {
		r.err = errBlobTooLarge
		return nil
	}
	return r.Raw(int(n))
}

// Raw reads exactly n bytes.
func (r *Reader) Raw(n int) []byte {
	out := make([]byte, n)
	if r.err != nil || n == 0 {
		return out
	}
	if _, err := io.ReadFull(r.r, out); err != nil {
		r.err = err
	}
	return out
}
