package iccmax

import (
	"strconv"

	"github.com/elliotchance/orderedmap/v3"
)

// TagStruct is a tagStructType ('tstr') payload: a struct of member tag data
// keyed by member signature, in declaration order.
type TagStruct struct {
	StructType Signature
	Members    *orderedmap.OrderedMap[Signature, TagData]
}

func (*TagStruct) TypeSignature() Signature { return TypeTagStruct }
func (*TagStruct) isTagData()               {}

// Member returns the decoded member with signature sig.
func (s *TagStruct) Member(sig Signature) (TagData, bool) {
	return s.Members.Get(sig)
}

// TagArray is a tagArrayType ('tary') payload. All elements share one type signature.
type TagArray struct {
	ArrayType Signature
	Elements  []TagData
}

func (*TagArray) TypeSignature() Signature { return TypeTagArray }
func (*TagArray) isTagData()               {}

func tagStructDecoder(b *block) (TagData, error) {
	structType := b.sig()
	n := b.count(uint64(b.u32()), 12, "struct members")
	minOffset := uint32(16 + 12*n)
	type member struct {
		sig Signature
		pos PositionNumber
	}
	entries := make([]member, n)
	for i := range entries {
		entries[i] = member{sig: b.sig(), pos: b.position()}
	}
	members := orderedmap.NewOrderedMap[Signature, TagData]()
	for _, m := range entries {
		if b.err != nil {
			break
		}
		if members.Has(m.sig) {
			b.fail("duplicate struct member %q", m.sig)
			break
		}
		if data := b.nested(m.pos, minOffset, true, tagSlot(m.sig)); data != nil {
			members.Set(m.sig, data)
		}
	}
	b.seekEnd()
	return b.result(&TagStruct{StructType: structType, Members: members})
}

func tagArrayDecoder(b *block) (TagData, error) {
	arrayType := b.sig()
	n := b.count(uint64(b.u32()), 8, "array elements")
	minOffset := uint32(16 + 8*n)
	positions := make([]PositionNumber, n)
	for i := range positions {
		positions[i] = b.position()
	}
	elements := make([]TagData, 0, n)
	var expect []Signature
	for i, p := range positions {
		if b.err != nil {
			break
		}
		data := b.nested(p, minOffset, true, namedSlot(strconv.Itoa(i), expect...))
		if data == nil {
			break
		}
		if expect == nil {
			expect = []Signature{data.TypeSignature()}
		}
		elements = append(elements, data)
	}
	b.seekEnd()
	return b.result(&TagArray{ArrayType: arrayType, Elements: elements})
}
