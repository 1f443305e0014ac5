package iccmax

// resolve validates a position number against the block it is relative to.
//
// minOffset is the first offset past the fixed header / position table region;
// align requires the referenced range to start on a 4 byte boundary.
func (b *block) resolve(p PositionNumber, minOffset uint32, align bool, what string) bool {
	if b.err != nil {
		return false
	}
	switch {
	case p.Offset < minOffset:
		b.fail("%s offset %d lies inside the %d byte header", what, p.Offset, minOffset)
	case uint64(p.Offset)+uint64(p.Size) > uint64(b.size):
		b.fail("%s range %d+%d exceeds declared size %d", what, p.Offset, p.Size, b.size)
	case align && p.Offset%4 != 0:
		b.fail("%s offset %d is not 4-byte aligned", what, p.Offset)
	}
	return b.err == nil
}

// follow runs fn with the cursor at the referenced offset and restores
// the cursor afterwards, so siblings can be read in sequence.
func (b *block) follow(p PositionNumber, fn func()) {
	if b.err != nil {
		return
	}
	saved := b.c.Pos()
	b.seekRel(p.Offset)
	if b.err == nil {
		fn()
	}
	if b.err == nil {
		b.setErr(b.c.SeekTo(saved))
	}
}

// nested resolves p and decodes the referenced range as tag data.
func (b *block) nested(p PositionNumber, minOffset uint32, align bool, s slot) (result TagData) {
	if !b.resolve(p, minOffset, align, s.name) {
		return nil
	}
	b.follow(p, func() {
		data, err := b.d.decode(b.c, p.Size, s)
		b.setErr(err)
		result = data
	})
	return result
}

// sub returns a block for a range that is not itself tagged data, for
// decoding structures that have no type header of their own.
func (b *block) sub(offset uint32, size uint32) *block {
	return &block{d: b.d, c: b.c, start: b.start + int64(offset), size: size}
}

// adopt takes over the error of a sub block.
func (b *block) adopt(s *block) {
	if s.err != nil {
		b.setErr(s.err)
	}
}
