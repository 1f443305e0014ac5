// Package cursor provides a bounded, random-access big-endian reader over an
// in-memory ICC profile.
package cursor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/encoding/unicode"
)

// ErrOutOfRange is matched (via errors.Is) by every RangeError.
var ErrOutOfRange = errors.New("read out of range")

// RangeError reports a read or seek that falls outside the buffer.
type RangeError struct {
	Pos  int64 // position of the attempted access
	Want int64 // bytes requested
	Len  int64 // length of the buffer
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cursor: %d bytes at %d exceeds buffer of %d bytes", e.Want, e.Pos, e.Len)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Encoding selects how String decodes a byte range.
type Encoding uint8

const (
	ASCII Encoding = iota
	UTF8
	UTF16BE
)

// Cursor reads fixed-width big-endian values from a byte slice.
//
// The position may be moved freely with Seek; every read is bounds checked.
type Cursor struct {
	data []byte
	pos  int64
}

// New creates a cursor positioned at the start of data.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current read position.
func (c *Cursor) Pos() int64 {
	return c.pos
}

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int64 {
	return int64(len(c.data))
}

// Remaining returns the number of bytes between the position and the end of the buffer.
func (c *Cursor) Remaining() int64 {
	return int64(len(c.data)) - c.pos
}

// SeekTo moves to an absolute position. Seeking to Len() is allowed.
func (c *Cursor) SeekTo(pos int64) error {
	if pos < 0 || pos > int64(len(c.data)) {
		return &RangeError{Pos: pos, Len: int64(len(c.data))}
	}
	c.pos = pos
	return nil
}

// Skip advances the position by n bytes.
func (c *Cursor) Skip(n int64) error {
	if n < 0 || n > c.Remaining() {
		return &RangeError{Pos: c.pos, Want: n, Len: int64(len(c.data))}
	}
	c.pos += n
	return nil
}

func (c *Cursor) take(n int64) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, &RangeError{Pos: c.pos, Want: n, Len: int64(len(c.data))}
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Peek returns n bytes at the position without advancing.
// The returned slice aliases the buffer and must not be modified.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 || int64(n) > c.Remaining() {
		return nil, &RangeError{Pos: c.pos, Want: int64(n), Len: int64(len(c.data))}
	}
	return c.data[c.pos : c.pos+int64(n)], nil
}

// PeekUint32 returns the big-endian uint32 at the position without advancing.
func (c *Cursor) PeekUint32() (uint32, error) {
	b, err := c.Peek(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Bytes reads n bytes into a freshly allocated slice.
func (c *Cursor) Bytes(n int64) ([]byte, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b), nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadUint64 reads an unsigned 64-bit integer.
func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadFloat32 reads an IEEE 754 binary32 value.
func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE 754 binary64 value.
func (c *Cursor) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()
	return math.Float64frombits(v), err
}

// String reads n bytes and decodes them with the given encoding.
//
// ASCII and UTF8 strings end at the first NUL byte; UTF16BE strings are taken
// verbatim and n must be even.
func (c *Cursor) String(n int64, enc Encoding) (string, error) {
	if enc == UTF16BE && n%2 != 0 {
		return "", fmt.Errorf("cursor: odd length %d for UTF-16BE string at %d", n, c.pos)
	}
	pos := c.pos
	b, err := c.take(n)
	if err != nil {
		return "", err
	}
	switch enc {
	case UTF16BE:
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("cursor: invalid UTF-16BE string at %d: %w", pos, err)
		}
		return string(decoded), nil
	default:
		if i := bytes.IndexByte(b, 0); i >= 0 {
			b = b[:i]
		}
		return string(b), nil
	}
}
