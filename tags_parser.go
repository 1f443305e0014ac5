package iccmax

import (
	"encoding/binary"
	"sync"

	"github.com/go-andiamo/iccmax/internal/cursor"
)

// Tag is one tag of a profile: what it means (Signature), how it is encoded
// (TypeSig) and, once decoded, its data.
type Tag struct {
	Entry     TagTableEntry
	Signature Signature // e.g. 'desc', 'A2B0'
	TypeSig   Signature // e.g. 'mluc', 'mAB '
	// SharedWith lists the other tags whose table entries reference the same bytes
	SharedWith []Signature
	once       sync.Once
	data       TagData
	err        error
	decode     func() (TagData, error)
}

// Value returns the decoded tag data, decoding it on first use when the
// profile was parsed with ParseOptions.LazyTagDecode.
func (t *Tag) Value() (TagData, error) {
	t.once.Do(func() {
		t.data, t.err = t.decode()
		t.decode = nil
	})
	return t.data, t.err
}

// parseTags builds a Tag per table entry. Entries sharing bytes are decoded
// independently of each other.
func parseTags(data []byte, header *HeaderContext, table []TagTableEntry, options *ParseOptions) ([]*Tag, error) {
	type span struct{ offset, size uint32 }
	shared := make(map[span][]Signature, len(table))
	for _, e := range table {
		k := span{e.Offset, e.Size}
		shared[k] = append(shared[k], e.Signature)
	}
	result := make([]*Tag, 0, len(table))
	for _, e := range table {
		tag := &Tag{
			Entry:     e,
			Signature: e.Signature,
			TypeSig:   Signature(binary.BigEndian.Uint32(data[e.Offset:])),
		}
		for _, sig := range shared[span{e.Offset, e.Size}] {
			if sig != e.Signature {
				tag.SharedWith = append(tag.SharedWith, sig)
			}
		}
		tag.decode = func() (TagData, error) {
			return decodeTag(data, header, e, options)
		}
		if !options.LazyTagDecode {
			if _, err := tag.Value(); err != nil {
				return nil, err
			}
		}
		result = append(result, tag)
	}
	return result, nil
}

// decodeTag decodes the payload of one tag table entry. Each call has its own
// decoder state, so lazily decoded tags may be decoded concurrently.
func decodeTag(data []byte, header *HeaderContext, e TagTableEntry, options *ParseOptions) (TagData, error) {
	c := cursor.New(data)
	d := newDecoder(header, options)
	if err := c.SeekTo(int64(e.Offset)); err != nil {
		return nil, corruptCause(e.Signature.String(), int64(e.Offset), err, "tag offset")
	}
	return d.decode(c, e.Size, tagSlot(e.Signature))
}
