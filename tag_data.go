package iccmax

// TagData is a decoded tag payload.
//
// The set of implementations is closed: it is one of the pointer types in this
// package (*Curve, *LutAToB, *TagStruct, *UnknownData, ...). Use a type switch
// to narrow it.
type TagData interface {
	// TypeSignature returns the type signature the payload was encoded with
	TypeSignature() Signature
	isTagData()
}

// UnknownData holds a payload whose type signature is not recognised.
type UnknownData struct {
	TypeSig  Signature
	Reserved uint32
	// Payload is everything after the 8 byte type header, unchanged
	Payload []byte
}

func (u *UnknownData) TypeSignature() Signature { return u.TypeSig }
func (*UnknownData) isTagData()                 {}

// CustomData holds the value produced by a ParseOptions.TagDecoders decoder.
type CustomData struct {
	TypeSig Signature
	Value   any
}

func (c *CustomData) TypeSignature() Signature { return c.TypeSig }
func (*CustomData) isTagData()                 {}
