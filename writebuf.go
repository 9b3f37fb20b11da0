package writebuf

import (
	"errors"
	"io"
)

var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
	_ io.ByteWriter   = (*Buffer)(nil)
)

var (
	// ErrOverflow is returned by a write whose fragment does not fit in the
	// buffer's remaining capacity. The write is rejected as a whole and the
	// buffer is left unchanged.
	ErrOverflow = errors.New("writebuf: buffer overflow")

	// ErrInvalidUTF8 is returned by Text when the buffer contents are not
	// well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("writebuf: invalid UTF-8")
)

// Buffer is a byte buffer whose capacity is fixed at construction. Writes are
// all-or-nothing: a fragment either fits in the remaining space or the write
// fails with ErrOverflow. The backing storage is never reallocated.
type Buffer struct {
	buf []byte
}

// New creates an empty buffer with the given capacity. A negative capacity is
// treated as zero.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// From creates a buffer holding the first min(len(src), capacity) bytes of
// src. Bytes beyond the capacity are dropped silently; unlike the write
// methods, construction never signals truncation.
func From(capacity int, src []byte) *Buffer {
	b := New(capacity)
	b.buf = append(b.buf, src[:min(len(src), cap(b.buf))]...)
	return b
}

// FromString is From for string sources.
func FromString(capacity int, src string) *Buffer {
	b := New(capacity)
	b.buf = append(b.buf, src[:min(len(src), cap(b.buf))]...)
	return b
}

// Write implements io.Writer. If p fits in the remaining capacity it is
// appended in full and Write returns (len(p), nil); otherwise nothing is
// written and Write returns (0, ErrOverflow). Each call is checked
// independently, so a failed write leaves earlier writes intact.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) > b.Available() {
		return 0, ErrOverflow
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString implements io.StringWriter with the same all-or-nothing
// contract as Write. It is the canonical way to append a UTF-8 text
// fragment; formatting facilities adapt through the io.Writer side, e.g.
// fmt.Fprintf(b, ...).
func (b *Buffer) WriteString(s string) (int, error) {
	if len(s) > b.Available() {
		return 0, ErrOverflow
	}
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// WriteByte implements io.ByteWriter. It returns ErrOverflow if the buffer
// is full.
func (b *Buffer) WriteByte(c byte) error {
	if b.Full() {
		return ErrOverflow
	}
	b.buf = append(b.buf, c)
	return nil
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Available returns the remaining space in bytes.
func (b *Buffer) Available() int { return cap(b.buf) - len(b.buf) }

// Full reports whether the buffer holds exactly Cap bytes.
func (b *Buffer) Full() bool { return len(b.buf) == cap(b.buf) }

// Bytes returns the current contents. The slice shares storage with the
// buffer and is valid only until the next length-changing operation; callers
// may modify bytes in place, but the length and capacity are managed solely
// by the buffer.
func (b *Buffer) Bytes() []byte { return b.buf }

// Resize sets the length to n, zero-filling any grown span. It returns
// ErrOverflow if n is negative or exceeds the capacity.
func (b *Buffer) Resize(n int) error {
	if n < 0 || n > cap(b.buf) {
		return ErrOverflow
	}
	if n > len(b.buf) {
		clear(b.buf[len(b.buf):n])
	}
	b.buf = b.buf[:n]
	return nil
}

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Clone returns an independent copy with its own backing storage and the
// same capacity.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{buf: make([]byte, len(b.buf), cap(b.buf))}
	copy(c.buf, b.buf)
	return c
}
