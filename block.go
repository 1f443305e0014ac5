package iccmax

import (
	"github.com/go-andiamo/iccmax/internal/cursor"
)

// block is the byte range of one structure being decoded.
//
// Reads are bounded by the declared size and the first failure is sticky:
// later reads return zero values and b.err holds the corruption.
type block struct {
	d     *decoder
	c     *cursor.Cursor
	start int64
	size  uint32
	err   error
}

func (b *block) end() int64 {
	return b.start + int64(b.size)
}

// rel returns the cursor position relative to the start of the block.
func (b *block) rel() uint32 {
	return uint32(b.c.Pos() - b.start)
}

func (b *block) left() int64 {
	return b.end() - b.c.Pos()
}

func (b *block) fail(format string, args ...any) {
	b.failAt(b.c.Pos(), format, args...)
}

func (b *block) failAt(pos int64, format string, args ...any) {
	if b.err == nil {
		b.err = corrupt(b.d.structure(), pos, format, args...)
	}
}

// setErr records err; corruption from nested decodes is kept as is.
func (b *block) setErr(err error) {
	if err == nil || b.err != nil {
		return
	}
	if ce, ok := err.(*CorruptionError); ok {
		b.err = ce
		return
	}
	b.err = corruptCause(b.d.structure(), b.c.Pos(), err, "read failed")
}

func (b *block) need(n int64) bool {
	if b.err != nil {
		return false
	}
	if n < 0 || n > b.left() {
		b.fail("truncated: %d bytes needed, %d left of %d declared", n, b.left(), b.size)
		return false
	}
	return true
}

// count validates that n elements of width bytes fit in what is left of the block.
func (b *block) count(n uint64, width int64, what string) int {
	if b.err != nil {
		return 0
	}
	if width > 0 && n > uint64(b.left())/uint64(width) {
		b.fail("%d %s of %d bytes exceed the %d bytes left", n, what, width, b.left())
		return 0
	}
	return int(n)
}

func readValue[T any](b *block, n int64, fn func(*cursor.Cursor) (T, error)) T {
	var zero T
	if !b.need(n) {
		return zero
	}
	v, err := fn(b.c)
	if err != nil {
		b.setErr(err)
		return zero
	}
	return v
}

func (b *block) u8() uint8 { return readValue(b, 1, (*cursor.Cursor).ReadUint8) }
func (b *block) u16() uint16 { return readValue(b, 2, (*cursor.Cursor).ReadUint16) }
func (b *block) u32() uint32 { return readValue(b, 4, (*cursor.Cursor).ReadUint32) }
func (b *block) u64() uint64 { return readValue(b, 8, (*cursor.Cursor).ReadUint64) }
func (b *block) f32() float32 { return readValue(b, 4, (*cursor.Cursor).ReadFloat32) }
func (b *block) f64() float64 { return readValue(b, 8, (*cursor.Cursor).ReadFloat64) }
func (b *block) f16() float32 { return readValue(b, 2, readFloat16) }
func (b *block) s15f16() float64 { return readValue(b, 4, readS15Fixed16) }
func (b *block) u16f16() float64 { return readValue(b, 4, readU16Fixed16) }
func (b *block) u8f8() float64 { return readValue(b, 2, readU8Fixed8) }
func (b *block) u1f15() float64 { return readValue(b, 2, readU1Fixed15) }
func (b *block) xyz() XYZNumber { return readValue(b, 12, readXYZNumber) }
func (b *block) sig() Signature { return Signature(b.u32()) }
func (b *block) position() PositionNumber {
	return readValue(b, 8, readPositionNumber)
}
func (b *block) dateTime() DateTimeNumber {
	return readValue(b, 12, readDateTimeNumber)
}
func (b *block) spectralRange() SpectralRange {
	return readValue(b, 6, readSpectralRange)
}

func (b *block) xyzFloat32() [3]float32 {
	return [3]float32{b.f32(), b.f32(), b.f32()}
}

// raw returns a copy of the next n bytes.
func (b *block) raw(n int64) []byte {
	if !b.need(n) {
		return nil
	}
	v, err := b.c.Bytes(n)
	b.setErr(err)
	return v
}

func (b *block) text(n int64, enc cursor.Encoding) string {
	if !b.need(n) {
		return ""
	}
	v, err := b.c.String(n, enc)
	if err != nil {
		b.setErr(err)
	}
	return v
}

func (b *block) skip(n int64) {
	if b.need(n) {
		b.setErr(b.c.Skip(n))
	}
}

// peekCursor returns a cursor over the next n bytes without advancing.
func (b *block) peekCursor(n int64) *cursor.Cursor {
	if b.err != nil {
		return nil
	}
	data, err := b.c.Peek(int(n))
	if err != nil {
		b.setErr(err)
		return nil
	}
	return cursor.New(data)
}

// rest returns a copy of everything up to the end of the block.
func (b *block) rest() []byte {
	return b.raw(b.left())
}

// alignIfRoom skips to the next 4 byte boundary relative to the start of the block.
// A block ending before the boundary is left where it is.
func (b *block) alignIfRoom() {
	if r := int64(b.rel() % 4); r != 0 && b.left() >= 4-r {
		b.skip(4 - r)
	}
}

// padding consumes trailing alignment padding: fewer than 4 bytes left before the end.
func (b *block) padding() {
	if l := b.left(); l > 0 && l < 4 && b.err == nil {
		b.skip(l)
	}
}

// seekEnd leaves the cursor at the end of the block, skipping any unread bytes.
func (b *block) seekEnd() {
	if b.err == nil {
		b.setErr(b.c.SeekTo(b.end()))
	}
}

func (b *block) seekRel(offset uint32) {
	if b.err == nil {
		b.setErr(b.c.SeekTo(b.start + int64(offset)))
	}
}

// result returns v, or the recorded corruption.
func (b *block) result(v TagData) (TagData, error) {
	if b.err != nil {
		return nil, b.err
	}
	return v, nil
}
