package iccmax

import (
	"fmt"
	"time"

	"github.com/go-andiamo/iccmax/internal/cursor"
)

const (
	headerSize = 128
	// MagicNumber is the 'acsp' profile file signature at header offset 36
	MagicNumber Signature = 0x61637370
)

// Header represents the parsed ICC profile header (128 bytes)
type Header struct {
	ProfileSize     uint32
	CMMType         Signature
	VersionRaw      uint32
	Version         Version
	DeviceClass     Signature
	ColorSpace      Signature
	PCS             Signature
	Created         time.Time
	Magic           Signature
	Platform        Signature
	Flags           uint32
	Manufacturer    Signature
	Model           Signature
	Attributes      uint64
	RenderingIntent uint32
	Illuminant      XYZNumber
	Creator         Signature
	ProfileID       [16]byte
	// ICC.2 fields, zero in ICC.1 profiles
	SpectralPCS     Signature
	SpectralRange   SpectralRange
	BiSpectralRange SpectralRange
	MCS             Signature
	DeviceSubClass  Signature
}

// HeaderContext is the part of the header that type decoders depend on.
type HeaderContext struct {
	DeviceClass Signature
	ColorSpace  Signature
	PCS         Signature
	SpectralPCS Signature
	Version     Version
}

// Context derives the HeaderContext handed to type decoders.
func (h *Header) Context() *HeaderContext {
	return &HeaderContext{
		DeviceClass: h.DeviceClass,
		ColorSpace:  h.ColorSpace,
		PCS:         h.PCS,
		SpectralPCS: h.SpectralPCS,
		Version:     h.Version,
	}
}

type Version struct {
	Major    int
	Minor    int
	Revision int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// IsICC2 reports whether the version denotes an iccMAX (ICC.2) profile.
func (v Version) IsICC2() bool {
	return v.Major >= 5
}

func versionFromRaw(v uint32) Version {
	return Version{
		Major:    int((v >> 24) & 0xFF),
		Minor:    int((v >> 20) & 0x0F),
		Revision: int((v >> 16) & 0x0F),
	}
}

// parseHeader reads the 128 byte header at the start of c.
func (d *decoder) parseHeader(c *cursor.Cursor) (h Header, err error) {
	d.path = append(d.path, "header")
	defer func() {
		d.path = d.path[:len(d.path)-1]
	}()
	if c.Len() < headerSize {
		return Header{}, corrupt(d.structure(), 0, "%d bytes is shorter than the %d byte header", c.Len(), headerSize)
	}
	b := &block{d: d, c: c, start: 0, size: headerSize}
	h.ProfileSize = b.u32()
	h.CMMType = b.sig()
	h.VersionRaw = b.u32()
	h.Version = versionFromRaw(h.VersionRaw)
	h.DeviceClass = b.sig()
	h.ColorSpace = b.sig()
	h.PCS = b.sig()
	h.Created = b.dateTime().Time()
	h.Magic = b.sig()
	if h.Magic != MagicNumber && b.err == nil {
		b.failAt(36, "profile file signature is %q, want 'acsp'", h.Magic)
	}
	h.Platform = b.sig()
	h.Flags = b.u32()
	h.Manufacturer = b.sig()
	h.Model = b.sig()
	h.Attributes = b.u64()
	h.RenderingIntent = b.u32()
	h.Illuminant = b.xyz()
	h.Creator = b.sig()
	copy(h.ProfileID[:], b.raw(16))
	h.SpectralPCS = b.sig()
	h.SpectralRange = b.spectralRange()
	h.BiSpectralRange = b.spectralRange()
	h.MCS = b.sig()
	h.DeviceSubClass = b.sig()
	b.skip(4)
	if b.err == nil {
		switch {
		case h.ProfileSize < headerSize+4:
			b.failAt(0, "declared profile size %d is too small for a header and tag count", h.ProfileSize)
		case int64(h.ProfileSize) > c.Len():
			b.failAt(0, "declared profile size %d exceeds the %d bytes supplied", h.ProfileSize, c.Len())
		}
	}
	if b.err != nil {
		return Header{}, b.err
	}
	return h, nil
}
