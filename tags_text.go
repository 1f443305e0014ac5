package iccmax

import (
	"bytes"
	"io"
	"strings"

	"github.com/go-andiamo/iccmax/internal/cursor"
	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/language"
)

// Text is a textType ('text') payload.
type Text struct {
	Value string
}

func (*Text) TypeSignature() Signature { return TypeText }
func (*Text) isTagData()               {}

// UTF8Text is a utf8TextType ('utf8') payload.
type UTF8Text struct {
	Value string
}

func (*UTF8Text) TypeSignature() Signature { return TypeUTF8Text }
func (*UTF8Text) isTagData()               {}

// UTF16Text is a utf16TextType ('ut16') payload.
type UTF16Text struct {
	Value string
}

func (*UTF16Text) TypeSignature() Signature { return TypeUTF16Text }
func (*UTF16Text) isTagData()               {}

// TextDescription is a v2 textDescriptionType ('desc') payload.
type TextDescription struct {
	ASCII           string
	UnicodeLanguage uint32
	Unicode         string
	ScriptCode      uint16
	Script          []byte
}

func (*TextDescription) TypeSignature() Signature { return TypeTextDescription }
func (*TextDescription) isTagData()               {}

// MultiLocalizedUnicode is a multiLocalizedUnicodeType ('mluc') payload.
type MultiLocalizedUnicode struct {
	Strings []LocalizedString
}

func (*MultiLocalizedUnicode) TypeSignature() Signature { return TypeMultiLocalizedUnicode }
func (*MultiLocalizedUnicode) isTagData()               {}

// Best returns the string for the given language (e.g. "en"), falling back to the first string.
func (m *MultiLocalizedUnicode) Best(lang string) string {
	for _, s := range m.Strings {
		if strings.EqualFold(s.Language, lang) {
			return s.Value
		}
	}
	if len(m.Strings) > 0 {
		return m.Strings[0].Value
	}
	return ""
}

type LocalizedString struct {
	Language string // e.g. "en"
	Country  string // e.g. "US"
	Value    string
}

// Tag returns the BCP 47 tag of the record, language.Und when the codes do not parse.
func (s LocalizedString) Tag() language.Tag {
	code := strings.TrimRight(s.Language, "\x00 ")
	if country := strings.TrimRight(s.Country, "\x00 "); country != "" {
		code += "-" + country
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und
	}
	return tag
}

// SignatureData is a signatureType ('sig ') payload.
type SignatureData struct {
	Value Signature
}

func (*SignatureData) TypeSignature() Signature { return TypeSignature }
func (*SignatureData) isTagData()               {}

// Data is a dataType ('data') payload.
type Data struct {
	Binary bool
	Bytes  []byte
}

func (*Data) TypeSignature() Signature { return TypeData }
func (*Data) isTagData()               {}

// String returns ASCII data up to its terminating NUL.
func (d *Data) String() string {
	if i := bytes.IndexByte(d.Bytes, 0); i >= 0 {
		return string(d.Bytes[:i])
	}
	return string(d.Bytes)
}

// ZipUTF8Text is a zipUtf8TextType ('zut8') payload, kept compressed.
type ZipUTF8Text struct {
	Compressed []byte
}

func (*ZipUTF8Text) TypeSignature() Signature { return TypeUTF8Zip }
func (*ZipUTF8Text) isTagData()               {}

// Inflate decompresses the text.
func (z *ZipUTF8Text) Inflate() (string, error) {
	data, err := inflate(z.Compressed)
	return string(data), err
}

// ZipXML is a zipXmlType ('zxml') payload, kept compressed.
type ZipXML struct {
	Compressed []byte
}

func (*ZipXML) TypeSignature() Signature { return TypeZipXML }
func (*ZipXML) isTagData()               {}

// Inflate decompresses the XML document.
func (z *ZipXML) Inflate() ([]byte, error) {
	return inflate(z.Compressed)
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Close()
	}()
	return io.ReadAll(r)
}

func textDecoder(b *block) (TagData, error) {
	return b.result(&Text{Value: b.text(b.left(), cursor.ASCII)})
}

func utf8TextDecoder(b *block) (TagData, error) {
	return b.result(&UTF8Text{Value: b.text(b.left(), cursor.UTF8)})
}

func utf16TextDecoder(b *block) (TagData, error) {
	if b.left()%2 != 0 {
		b.fail("odd UTF-16 length %d", b.left())
	}
	return b.result(&UTF16Text{Value: b.text(b.left(), cursor.UTF16BE)})
}

func signatureDecoder(b *block) (TagData, error) {
	return b.result(&SignatureData{Value: b.sig()})
}

func dataDecoder(b *block) (TagData, error) {
	flag := b.u32()
	if b.err == nil && flag > 1 {
		b.fail("data flag %d, want 0 or 1", flag)
	}
	return b.result(&Data{Binary: flag == 1, Bytes: b.rest()})
}

func zipUTF8TextDecoder(b *block) (TagData, error) {
	return b.result(&ZipUTF8Text{Compressed: b.rest()})
}

func zipXMLDecoder(b *block) (TagData, error) {
	return b.result(&ZipXML{Compressed: b.rest()})
}

const descScriptSize = 67

func textDescriptionDecoder(b *block) (TagData, error) {
	result := &TextDescription{}
	asciiCount := b.count(uint64(b.u32()), 1, "ASCII description bytes")
	result.ASCII = b.text(int64(asciiCount), cursor.ASCII)
	// some writers stop after the ASCII part
	if b.err == nil && b.left() >= 8 {
		result.UnicodeLanguage = b.u32()
		unicodeCount := b.count(uint64(b.u32()), 2, "Unicode description characters")
		result.Unicode = strings.TrimRight(b.text(int64(unicodeCount)*2, cursor.UTF16BE), "\x00")
	}
	if b.err == nil && b.left() >= 3 {
		result.ScriptCode = b.u16()
		scriptCount := b.u8()
		if b.err == nil && scriptCount > descScriptSize {
			b.fail("ScriptCode count %d exceeds %d", scriptCount, descScriptSize)
		}
		script := b.raw(min(descScriptSize, b.left()))
		if len(script) >= int(scriptCount) {
			result.Script = script[:scriptCount]
		}
	}
	b.seekEnd()
	return b.result(result)
}

// descSize computes the size of a desc embedded without a declared size,
// e.g. in a profile sequence description.
func descSize(b *block, limit int64) uint32 {
	sc := b.peekCursor(limit)
	if sc == nil {
		return 0
	}
	fail := func() uint32 {
		b.fail("embedded desc exceeds the %d bytes available", limit)
		return 0
	}
	if sc.Skip(8) != nil {
		return fail()
	}
	asciiCount, err := sc.ReadUint32()
	if err != nil || sc.Skip(int64(asciiCount)) != nil {
		return fail()
	}
	_, err = sc.ReadUint32()
	unicodeCount, err2 := sc.ReadUint32()
	if err != nil || err2 != nil || sc.Skip(int64(unicodeCount)*2) != nil || sc.Skip(3+descScriptSize) != nil {
		return fail()
	}
	return uint32(sc.Pos())
}

func multiLocalizedUnicodeDecoder(b *block) (TagData, error) {
	n := b.count(uint64(b.u32()), 12, "mluc records")
	if recordSize := b.u32(); b.err == nil && recordSize != 12 {
		b.fail("mluc record size %d, want 12", recordSize)
	}
	minOffset := uint32(16 + 12*n)
	result := &MultiLocalizedUnicode{Strings: make([]LocalizedString, 0, n)}
	for i := 0; i < n && b.err == nil; i++ {
		lang := b.text(2, cursor.ASCII)
		country := b.text(2, cursor.ASCII)
		length, offset := b.u32(), b.u32()
		p := PositionNumber{Offset: offset, Size: length}
		if length == 0 {
			result.Strings = append(result.Strings, LocalizedString{Language: lang, Country: country})
			continue
		}
		if !b.resolve(p, minOffset, false, "mluc string") {
			break
		}
		if length%2 != 0 {
			b.fail("mluc record %d has odd UTF-16 length %d", i, length)
			break
		}
		b.follow(p, func() {
			value := b.text(int64(length), cursor.UTF16BE)
			result.Strings = append(result.Strings, LocalizedString{Language: lang, Country: country, Value: value})
		})
	}
	b.seekEnd()
	return b.result(result)
}

// mlucSize computes the size of an mluc embedded without a declared size:
// the end of the furthest string.
func mlucSize(b *block, limit int64) uint32 {
	sc := b.peekCursor(limit)
	if sc == nil {
		return 0
	}
	_ = sc.Skip(8)
	n, err := sc.ReadUint32()
	if err != nil || uint64(n)*12+16 > uint64(limit) {
		b.fail("embedded mluc of %d records exceeds the %d bytes available", n, limit)
		return 0
	}
	_ = sc.Skip(4)
	size := uint64(16 + 12*n)
	for i := uint32(0); i < n; i++ {
		_ = sc.Skip(4)
		length, _ := sc.ReadUint32()
		offset, _ := sc.ReadUint32()
		if length > 0 {
			size = max(size, uint64(offset)+uint64(length))
		}
	}
	if size > uint64(limit) {
		b.fail("embedded mluc of %d bytes exceeds the %d bytes available", size, limit)
		return 0
	}
	return uint32(size)
}

// embeddedText decodes a desc or mluc whose size is not declared.
func embeddedText(b *block, limit int64, name string) TagData {
	if b.err != nil {
		return nil
	}
	typeSig, err := b.c.PeekUint32()
	if err != nil || limit < 8 {
		b.fail("%s: embedded text needs a type header", name)
		return nil
	}
	var size uint32
	switch Signature(typeSig) {
	case TypeTextDescription:
		size = descSize(b, limit)
	case TypeMultiLocalizedUnicode:
		size = mlucSize(b, limit)
	default:
		b.fail("%s: embedded text is not desc or mluc", name)
	}
	if b.err != nil {
		return nil
	}
	data, err := b.d.decode(b.c, size, namedSlot(name, TypeTextDescription, TypeMultiLocalizedUnicode))
	b.setErr(err)
	return data
}
