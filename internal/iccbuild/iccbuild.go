// Package iccbuild assembles synthetic ICC profiles and tag payloads for tests.
package iccbuild

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf16"
)

// Sig converts a four character code (space padded) to its uint32 value.
func Sig(s string) uint32 {
	b := []byte("    ")
	copy(b, s)
	return binary.BigEndian.Uint32(b)
}

// S15 encodes f as s15Fixed16Number.
func S15(f float64) int32 {
	return int32(math.Round(f * 65536))
}

// U16 encodes f as u16Fixed16Number.
func U16(f float64) uint32 {
	return uint32(math.Round(f * 65536))
}

// UTF16 encodes s as UTF-16BE without terminator.
func UTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(out[2*i:], u)
	}
	return out
}

// Fixed returns s as exactly n bytes, NUL padded.
func Fixed(s string, n int) []byte {
	out := make([]byte, n)
	copy(out, s)
	return out
}

// Pad4 appends zero bytes up to a multiple of 4.
func Pad4(b []byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

// Write encodes values big-endian: fixed size numbers and slices of them,
// []byte and string are written raw, [][]byte is concatenated and int is
// written as uint32.
func Write(values ...any) []byte {
	var buf bytes.Buffer
	for _, v := range values {
		switch v := v.(type) {
		case []byte:
			buf.Write(v)
		case string:
			buf.WriteString(v)
		case [][]byte:
			for _, p := range v {
				buf.Write(p)
			}
		case int:
			_ = binary.Write(&buf, binary.BigEndian, uint32(v))
		default:
			if err := binary.Write(&buf, binary.BigEndian, v); err != nil {
				panic(err)
			}
		}
	}
	return buf.Bytes()
}

// Type builds a tag payload: type signature, 4 reserved zero bytes, body.
func Type(sig string, body ...any) []byte {
	return Write(Sig(sig), uint32(0), Write(body...))
}

// Position is an (offset, size) pair.
type Position struct {
	Offset uint32
	Size   uint32
}

// Layout places parts after a fixed region of start bytes, each at a 4 byte aligned
// offset, and returns their positions and the bytes following the fixed region.
// Identical parts are not shared; use Positions for that.
func Layout(start int, parts ...[]byte) ([]Position, []byte) {
	var body []byte
	positions := make([]Position, len(parts))
	for i, p := range parts {
		body = Pad4(body)
		positions[i] = Position{Offset: uint32(start + len(body)), Size: uint32(len(p))}
		body = append(body, p...)
	}
	return positions, body
}

// Positions encodes positions as consecutive offset/size pairs.
func Positions(ps ...Position) []byte {
	var out []byte
	for _, p := range ps {
		out = binary.BigEndian.AppendUint32(out, p.Offset)
		out = binary.BigEndian.AppendUint32(out, p.Size)
	}
	return out
}

type entry struct {
	sig     uint32
	payload []byte
	shares  string
}

// Profile builds a complete profile.
type Profile struct {
	Version    uint32
	Class      string
	ColorSpace string
	PCS        string
	entries    []entry
}

// New returns a v4.4 RGB display profile builder with no tags.
func New() *Profile {
	return &Profile{Version: 0x04400000, Class: "mntr", ColorSpace: "RGB ", PCS: "XYZ "}
}

// Tag adds a tag with its own payload.
func (p *Profile) Tag(sig string, payload []byte) *Profile {
	p.entries = append(p.entries, entry{sig: Sig(sig), payload: payload})
	return p
}

// Shared adds a tag whose table entry points at the payload of an earlier tag.
func (p *Profile) Shared(sig, target string) *Profile {
	p.entries = append(p.entries, entry{sig: Sig(sig), shares: target})
	return p
}

// Bytes lays out the header, tag table and payloads.
func (p *Profile) Bytes() []byte {
	tableEnd := 128 + 4 + 12*len(p.entries)
	var payloads []byte
	type span struct{ offset, size uint32 }
	spans := make(map[uint32]span)
	table := binary.BigEndian.AppendUint32(nil, uint32(len(p.entries)))
	for _, e := range p.entries {
		s, ok := spans[Sig(e.shares)]
		if e.shares == "" || !ok {
			payloads = Pad4(payloads)
			s = span{offset: uint32(tableEnd + len(payloads)), size: uint32(len(e.payload))}
			payloads = append(payloads, e.payload...)
		}
		spans[e.sig] = s
		table = binary.BigEndian.AppendUint32(table, e.sig)
		table = binary.BigEndian.AppendUint32(table, s.offset)
		table = binary.BigEndian.AppendUint32(table, s.size)
	}
	payloads = Pad4(payloads)
	out := p.Header(uint32(tableEnd + len(payloads)))
	out = append(out, table...)
	return append(out, payloads...)
}

// Header builds the 128 byte header with the given declared size.
func (p *Profile) Header(size uint32) []byte {
	h := make([]byte, 128)
	binary.BigEndian.PutUint32(h[0:], size)
	binary.BigEndian.PutUint32(h[4:], Sig("test"))
	binary.BigEndian.PutUint32(h[8:], p.Version)
	binary.BigEndian.PutUint32(h[12:], Sig(p.Class))
	binary.BigEndian.PutUint32(h[16:], Sig(p.ColorSpace))
	binary.BigEndian.PutUint32(h[20:], Sig(p.PCS))
	for i, v := range []uint16{2024, 5, 17, 10, 30, 15} {
		binary.BigEndian.PutUint16(h[24+2*i:], v)
	}
	copy(h[36:], "acsp")
	binary.BigEndian.PutUint32(h[68:], uint32(S15(0.9642)))
	binary.BigEndian.PutUint32(h[72:], uint32(S15(1.0)))
	binary.BigEndian.PutUint32(h[76:], uint32(S15(0.8249)))
	binary.BigEndian.PutUint32(h[80:], Sig("test"))
	return h
}
