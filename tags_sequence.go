package iccmax

// ProfileSequenceDesc is a profileSequenceDescType ('pseq') payload.
type ProfileSequenceDesc struct {
	Profiles []ProfileDescription
}

func (*ProfileSequenceDesc) TypeSignature() Signature { return TypeProfileSequenceDesc }
func (*ProfileSequenceDesc) isTagData()               {}

// ProfileDescription describes one profile of a sequence.
//
// Manufacturer and Model are *TextDescription or *MultiLocalizedUnicode.
type ProfileDescription struct {
	DeviceManufacturer Signature
	DeviceModel        Signature
	Attributes         uint64
	Technology         Signature
	Manufacturer       TagData
	Model              TagData
}

// ProfileSequenceID is a profileSequenceIdentifierType ('psid') payload.
type ProfileSequenceID struct {
	Profiles []ProfileIdentifier
}

func (*ProfileSequenceID) TypeSignature() Signature { return TypeProfileSequenceID }
func (*ProfileSequenceID) isTagData()               {}

type ProfileIdentifier struct {
	ProfileID   [16]byte
	Description *MultiLocalizedUnicode
}

func profileSequenceDescDecoder(b *block) (TagData, error) {
	// each description is at least 20 fixed bytes and two 8 byte type headers
	n := b.count(uint64(b.u32()), 36, "profile descriptions")
	result := &ProfileSequenceDesc{Profiles: make([]ProfileDescription, 0, n)}
	for i := 0; i < n && b.err == nil; i++ {
		p := ProfileDescription{
			DeviceManufacturer: b.sig(),
			DeviceModel:        b.sig(),
			Attributes:         b.u64(),
			Technology:         b.sig(),
		}
		p.Manufacturer = embeddedText(b, b.left(), "manufacturer")
		p.Model = embeddedText(b, b.left(), "model")
		result.Profiles = append(result.Profiles, p)
	}
	b.seekEnd()
	return b.result(result)
}

func profileSequenceIDDecoder(b *block) (TagData, error) {
	n := b.count(uint64(b.u32()), 8, "profile identifiers")
	minOffset := uint32(12 + 8*n)
	positions := make([]PositionNumber, n)
	for i := range positions {
		positions[i] = b.position()
	}
	result := &ProfileSequenceID{Profiles: make([]ProfileIdentifier, 0, n)}
	for i, p := range positions {
		if !b.resolve(p, minOffset, true, "profile identifier") {
			break
		}
		if p.Size < 16+8 {
			b.fail("profile identifier %d of %d bytes is too short", i, p.Size)
			break
		}
		b.follow(p, func() {
			id := ProfileIdentifier{}
			copy(id.ProfileID[:], b.raw(16))
			if b.err != nil {
				return
			}
			data, err := b.d.decode(b.c, p.Size-16, namedSlot("description", TypeMultiLocalizedUnicode))
			b.setErr(err)
			id.Description, _ = data.(*MultiLocalizedUnicode)
			result.Profiles = append(result.Profiles, id)
		})
	}
	b.seekEnd()
	return b.result(result)
}
