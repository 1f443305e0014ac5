package iccmax

import "github.com/go-andiamo/iccmax/internal/cursor"

// TagTableEntry is one entry of the profile's tag table.
type TagTableEntry struct {
	Signature Signature // e.g. 'desc', 'rXYZ', 'A2B0'
	Offset    uint32    // from the beginning of the profile
	Size      uint32
}

const (
	maxTagCount   = 1024
	tagEntrySize  = 12
	tagTableStart = headerSize
)

// parseTagTable reads and validates the tag table following the header.
// size is the declared profile size.
func (d *decoder) parseTagTable(c *cursor.Cursor, size uint32) ([]TagTableEntry, error) {
	d.path = append(d.path, "tag table")
	defer func() {
		d.path = d.path[:len(d.path)-1]
	}()
	b := &block{d: d, c: c, start: tagTableStart, size: size - tagTableStart}
	b.seekRel(0)
	count := b.u32()
	if b.err == nil && count > maxTagCount {
		b.fail("tag count %d exceeds max allowed (%d)", count, maxTagCount)
	}
	n := b.count(uint64(count), tagEntrySize, "tag table entries")
	tableEnd := uint64(tagTableStart) + 4 + uint64(n)*tagEntrySize
	entries := make([]TagTableEntry, n)
	seen := make(map[Signature]bool, n)
	for i := range entries {
		pos := b.c.Pos()
		e := TagTableEntry{Signature: b.sig(), Offset: b.u32(), Size: b.u32()}
		if b.err != nil {
			break
		}
		switch {
		case e.Offset%4 != 0:
			b.failAt(pos, "tag %q offset %d is not 4-byte aligned", e.Signature, e.Offset)
		case uint64(e.Offset) < tableEnd:
			b.failAt(pos, "tag %q offset %d lies inside the header or tag table", e.Signature, e.Offset)
		case uint64(e.Offset)+uint64(e.Size) > uint64(size):
			b.failAt(pos, "tag %q range %d+%d exceeds profile size %d", e.Signature, e.Offset, e.Size, size)
		case e.Size < 8:
			b.failAt(pos, "tag %q size %d is too small for a type header", e.Signature, e.Size)
		case seen[e.Signature]:
			b.failAt(pos, "duplicate tag %q", e.Signature)
		}
		seen[e.Signature] = true
		entries[i] = e
	}
	if b.err != nil {
		return nil, b.err
	}
	return entries, nil
}
