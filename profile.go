package iccmax

import (
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/go-andiamo/iccmax/internal/cursor"
	"github.com/hashicorp/go-multierror"
)

type ParseMode uint8

const (
	ParseFull ParseMode = iota
	ParseHeaderAndTagTable
	ParseHeaderOnly
)

// ParseOptions represents the parsing options passed to Decode and ParseProfile
type ParseOptions struct {
	// Mode determines how much of the profile to parse
	//
	// the default is ParseFull - parses everything
	//
	// the minimal is ParseHeaderOnly - useful for just listing profile header metadata
	//
	// ParseHeaderAndTagTable allows parsing the profile header and tag table
	// without actually decoding the tags
	Mode ParseMode
	// LazyTagDecode determines whether tag data is decoded at profile parse time
	//
	// defaults to false - tags are decoded at profile parse time and the first
	// corrupt tag fails the parse
	//
	// setting LazyTagDecode to true means that tag decoding is deferred until
	// Tag.Value is called (Profile.Validate decodes all of them)
	LazyTagDecode bool
	// ErrorOnUnknownTypes determines whether type signatures without a decoder
	// are an error rather than decoding to *UnknownData
	ErrorOnUnknownTypes bool
	// TagDecoders allows you to provide custom type decoders (or override default
	// ones), keyed by type signature. Values decode to *CustomData
	TagDecoders map[Signature]CustomDecoder
	// MaxDepth limits the nesting of tag data within tag data
	//
	// zero means DefaultMaxDepth
	MaxDepth int
	// Logger receives debug tracing of the decode
	//
	// defaults to the apex/log package logger
	Logger log.Interface
}

// Profile represents the contents of an ICC Profile file
type Profile struct {
	// Header represents the ICC profile header (metadata)
	Header Header
	// TagTable is the tag table entries, in file order
	TagTable []TagTableEntry
	tags     []*Tag
	bySig    map[Signature]*Tag
}

// Tag retrieves the Tag with the given tag signature
func (p *Profile) Tag(sig Signature) (result *Tag, ok bool) {
	result, ok = p.bySig[sig]
	return result, ok
}

// Tags returns all tags in tag table order
func (p *Profile) Tags() []*Tag {
	return p.tags
}

// TagsByType retrieves all the tags encoded with the given type signature
func (p *Profile) TagsByType(typeSig Signature) []*Tag {
	var result []*Tag
	for _, tag := range p.tags {
		if tag.TypeSig == typeSig {
			result = append(result, tag)
		}
	}
	return result
}

// TagData retrieves the decoded data of a tag by tag signature
//
// Even if the ParseOptions.LazyTagDecode was set to true, the tag data
// will be decoded (once) on calling this
func (p *Profile) TagData(sig Signature) (TagData, error) {
	if tag, ok := p.bySig[sig]; ok {
		return tag.Value()
	}
	return nil, fmt.Errorf("tag %q not found", sig)
}

// Validate decodes every tag and returns all failures combined.
func (p *Profile) Validate() error {
	var result *multierror.Error
	for _, tag := range p.tags {
		if _, err := tag.Value(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Decode decodes an ICC colour profile held in data
//
// if the ParseOptions supplied is nil, default (full) options are used
//
// Decoded values never alias data, but with LazyTagDecode the profile keeps
// data for later decoding; it must not be modified meanwhile.
func Decode(data []byte, options *ParseOptions) (*Profile, error) {
	if options == nil {
		options = &ParseOptions{Mode: ParseFull}
	}
	c := cursor.New(data)
	d := newDecoder(nil, options)
	header, err := d.parseHeader(c)
	if err != nil {
		return nil, err
	}
	result := &Profile{Header: header}
	if options.Mode >= ParseHeaderOnly {
		return result, nil
	}
	// everything past the declared size is ignored
	data = data[:header.ProfileSize]
	if result.TagTable, err = d.parseTagTable(cursor.New(data), header.ProfileSize); err != nil {
		return nil, err
	}
	if options.Mode >= ParseHeaderAndTagTable {
		return result, nil
	}
	if result.tags, err = parseTags(data, header.Context(), result.TagTable, options); err != nil {
		return nil, err
	}
	result.bySig = make(map[Signature]*Tag, len(result.tags))
	for _, tag := range result.tags {
		result.bySig[tag.Signature] = tag
	}
	d.log.WithFields(log.Fields{
		"version": header.Version.String(),
		"class":   header.DeviceClass.String(),
		"tags":    len(result.tags),
		"lazy":    options.LazyTagDecode,
	}).Debug("decoded profile")
	return result, nil
}

// ParseProfile parses an ICC colour profile from the supplied reader with the supplied ParseOptions
//
// the reader is read to the end; if the ParseOptions supplied is nil, default (full) options are used
func ParseProfile(r io.Reader, options *ParseOptions) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Decode(data, options)
}
