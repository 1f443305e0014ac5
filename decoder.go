package iccmax

import (
	"slices"
	"strings"

	"github.com/apex/log"
	"github.com/go-andiamo/iccmax/internal/cursor"
)

// tagDecoder decodes one type layout. The cursor is positioned just after the
// 8 byte type header; b.start is the start of the type signature.
type tagDecoder func(b *block) (TagData, error)

// CustomDecoder decodes a complete tag payload (including its 8 byte type header).
//
// The returned value is exposed to callers as *CustomData.
type CustomDecoder func(raw []byte, header *HeaderContext) (any, error)

// decoder holds the state of one profile decode. It is not shared between decodes.
type decoder struct {
	header   *HeaderContext
	decoders map[Signature]tagDecoder
	custom   map[Signature]CustomDecoder
	maxDepth int
	strict   bool
	log      log.Interface
	path     []string
}

// slot is the known type context of a payload about to be decoded: what the
// payload is called and which type signatures are permitted there.
type slot struct {
	name   string
	expect []Signature
}

func tagSlot(sig Signature, expect ...Signature) slot {
	return slot{name: sig.String(), expect: expect}
}

func namedSlot(name string, expect ...Signature) slot {
	return slot{name: name, expect: expect}
}

func newDecoder(header *HeaderContext, options *ParseOptions) *decoder {
	d := &decoder{
		header:   header,
		decoders: defaultDecoders,
		maxDepth: DefaultMaxDepth,
		log:      log.Log,
	}
	if options != nil {
		d.custom = options.TagDecoders
		d.strict = options.ErrorOnUnknownTypes
		if options.MaxDepth > 0 {
			d.maxDepth = options.MaxDepth
		}
		if options.Logger != nil {
			d.log = options.Logger
		}
	}
	return d
}

func (d *decoder) structure() string {
	return strings.Join(d.path, "/")
}

// decode dispatches on the type signature at the cursor and decodes exactly size bytes.
//
// On success the cursor is left at start+size.
func (d *decoder) decode(c *cursor.Cursor, size uint32, s slot) (TagData, error) {
	start := c.Pos()
	d.path = append(d.path, s.name)
	defer func() {
		d.path = d.path[:len(d.path)-1]
	}()
	if len(d.path) > d.maxDepth {
		return nil, corruptCause(d.structure(), start, ErrDepthExceeded, "nesting depth %d exceeds limit %d", len(d.path), d.maxDepth)
	}
	if size < 8 {
		return nil, corrupt(d.structure(), start, "%d bytes is too short for a type header", size)
	}
	if int64(size) > c.Remaining() {
		return nil, corrupt(d.structure(), start, "declared size %d exceeds the %d bytes available", size, c.Remaining())
	}
	raw, _ := c.PeekUint32()
	typeSig := Signature(raw)
	d.path[len(d.path)-1] = s.name + "[" + typeSig.String() + "]"
	if len(s.expect) > 0 && !slices.Contains(s.expect, typeSig) {
		return nil, corrupt(d.structure(), start, "unexpected type %q", typeSig)
	}
	if fn, ok := d.custom[typeSig]; ok && fn != nil {
		return d.decodeCustom(c, size, typeSig, fn)
	}
	fn, ok := d.decoders[typeSig]
	if !ok {
		return d.decodeUnknown(c, size, typeSig)
	}
	_ = c.Skip(4)
	if reserved, _ := c.ReadUint32(); reserved != 0 {
		return nil, corrupt(d.structure(), start+4, "reserved bytes are 0x%08X, not zero", reserved)
	}
	b := &block{d: d, c: c, start: start, size: size}
	data, err := fn(b)
	if err != nil {
		return nil, err
	}
	if consumed := c.Pos() - start; consumed != int64(size) {
		return nil, corrupt(d.structure(), c.Pos(), "consumed %d bytes of %d declared", consumed, size)
	}
	d.log.WithFields(log.Fields{
		"structure": d.structure(),
		"offset":    start,
		"size":      size,
	}).Debug("decoded tag data")
	return data, nil
}

func (d *decoder) decodeUnknown(c *cursor.Cursor, size uint32, typeSig Signature) (TagData, error) {
	start := c.Pos()
	if d.strict {
		return nil, corruptCause(d.structure(), start, ErrUnknownType, "type %q", typeSig)
	}
	_ = c.Skip(4)
	reserved, _ := c.ReadUint32()
	payload, err := c.Bytes(int64(size) - 8)
	if err != nil {
		return nil, corruptCause(d.structure(), start, err, "truncated")
	}
	d.log.WithFields(log.Fields{
		"structure": d.structure(),
		"type":      typeSig.String(),
		"offset":    start,
		"size":      size,
	}).Debug("unrecognised type kept as raw bytes")
	return &UnknownData{TypeSig: typeSig, Reserved: reserved, Payload: payload}, nil
}

func (d *decoder) decodeCustom(c *cursor.Cursor, size uint32, typeSig Signature, fn CustomDecoder) (TagData, error) {
	start := c.Pos()
	raw, err := c.Bytes(int64(size))
	if err != nil {
		return nil, corruptCause(d.structure(), start, err, "truncated")
	}
	value, err := fn(raw, d.header)
	if err != nil {
		return nil, corruptCause(d.structure(), start, err, "custom decoder failed")
	}
	return &CustomData{TypeSig: typeSig, Value: value}, nil
}
