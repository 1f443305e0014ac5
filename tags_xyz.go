package iccmax

// XYZ is an XYZType ('XYZ ') payload.
type XYZ struct {
	Values []XYZNumber
}

func (*XYZ) TypeSignature() Signature { return TypeXYZ }
func (*XYZ) isTagData()               {}

func xyzDecoder(b *block) (TagData, error) {
	if b.left() == 0 {
		b.fail("XYZ has no values")
	}
	return b.result(&XYZ{Values: arrayValues(b, 12, (*block).xyz)})
}
