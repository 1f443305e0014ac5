package iccmax

import "github.com/go-andiamo/iccmax/internal/cursor"

// Dictionary is a dictType ('dict') payload.
type Dictionary struct {
	Entries []DictEntry
}

func (*Dictionary) TypeSignature() Signature { return TypeDictionary }
func (*Dictionary) isTagData()               {}

// Get returns the value of the first entry named name.
func (d *Dictionary) Get(name string) (string, bool) {
	for _, e := range d.Entries {
		if e.Name == name {
			return e.Value, e.HasValue
		}
	}
	return "", false
}

type DictEntry struct {
	Name     string
	Value    string
	HasValue bool // false when the value offset is zero
	// DisplayName and DisplayValue are nil when absent or not in the record
	DisplayName  *MultiLocalizedUnicode
	DisplayValue *MultiLocalizedUnicode
}

func dictionaryDecoder(b *block) (TagData, error) {
	n := b.u32()
	recordLen := b.u32()
	if b.err == nil && recordLen != 16 && recordLen != 24 && recordLen != 32 {
		b.fail("dict record length %d, want 16, 24 or 32", recordLen)
	}
	count := b.count(uint64(n), int64(recordLen), "dict records")
	minOffset := uint32(16) + uint32(count)*recordLen
	result := &Dictionary{Entries: make([]DictEntry, 0, count)}
	for i := 0; i < count && b.err == nil; i++ {
		var positions [4]PositionNumber
		for j := 0; j < int(recordLen/8); j++ {
			positions[j] = b.position()
		}
		entry := DictEntry{}
		if positions[0].Offset == 0 || positions[0].Size == 0 {
			b.fail("dict record %d has no name", i)
			break
		}
		entry.Name = b.dictString(positions[0], minOffset, "dict name")
		if positions[1].Offset != 0 {
			entry.Value = b.dictString(positions[1], minOffset, "dict value")
			entry.HasValue = true
		}
		entry.DisplayName = b.dictDisplay(positions[2], minOffset, "display name")
		entry.DisplayValue = b.dictDisplay(positions[3], minOffset, "display value")
		result.Entries = append(result.Entries, entry)
	}
	b.seekEnd()
	return b.result(result)
}

func (b *block) dictString(p PositionNumber, minOffset uint32, what string) (value string) {
	if !b.resolve(p, minOffset, false, what) {
		return ""
	}
	if p.Size%2 != 0 {
		b.fail("%s has odd UTF-16 length %d", what, p.Size)
		return ""
	}
	b.follow(p, func() {
		value = b.text(int64(p.Size), cursor.UTF16BE)
	})
	return value
}

func (b *block) dictDisplay(p PositionNumber, minOffset uint32, what string) *MultiLocalizedUnicode {
	if p.Offset == 0 {
		return nil
	}
	data := b.nested(p, minOffset, true, namedSlot(what, TypeMultiLocalizedUnicode))
	if m, ok := data.(*MultiLocalizedUnicode); ok {
		return m
	}
	return nil
}
