package binary

import (
	"bytes"
	"encoding/binary"

	"github.com/wasmtools/wabin/wasm"
)

// reader is a bounds-checked cursor over an already-buffered module binary.
//
// Reads return views of the underlying buffer, not copies, and advance the
// cursor by exactly the bytes they consume. A read past the end of the buffer
// fails with wasm.ErrUnexpectedEnd.
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

// len returns the count of unread bytes.
func (r *reader) len() int {
	return len(r.buf) - r.pos
}

// Read implements io.Reader so that the leb128 and ieee754 packages can
// consume the cursor directly.
func (r *reader) Read(p []byte) (int, error) {
	if r.pos == len(r.buf) {
		return 0, wasm.ErrUnexpectedEnd
	}
	n := copy(p, r.buf[r.pos:])
	r.pos += n
	return n, nil
}

// readByte consumes exactly one byte.
func (r *reader) readByte() (byte, error) {
	if r.pos == len(r.buf) {
		return 0, wasm.ErrUnexpectedEnd
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// readBytes consumes exactly n bytes, returning them as a view.
func (r *reader) readBytes(n uint32) ([]byte, error) {
	if uint64(n) > uint64(r.len()) {
		return nil, wasm.ErrUnexpectedEnd
	}
	b := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return b, nil
}

// readUint32 consumes a 4-byte little-endian integer.
func (r *reader) readUint32() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// readUntil consumes bytes up to and including the first occurrence of delim,
// returning the bytes before it. The delimiter is not retained.
func (r *reader) readUntil(delim byte) ([]byte, error) {
	i := bytes.IndexByte(r.buf[r.pos:], delim)
	if i == -1 {
		return nil, wasm.ErrUnexpectedEnd
	}
	b := r.buf[r.pos : r.pos+i]
	r.pos += i + 1
	return b, nil
}

// sub consumes the next n bytes and returns a child cursor bounded to them, so
// that a length-prefixed region cannot read past its declared end.
func (r *reader) sub(n uint32) (*reader, error) {
	b, err := r.readBytes(n)
	if err != nil {
		return nil, err
	}
	return newReader(b), nil
}

// rest consumes and returns all unread bytes.
func (r *reader) rest() []byte {
	b := r.buf[r.pos:]
	r.pos = len(r.buf)
	return b
}
