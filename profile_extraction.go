package iccmax

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrNoProfile is returned by the Extract functions when an image carries no ICC profile.
var ErrNoProfile = errors.New("no ICC profile found")

var (
	jpegSOI      = []byte{0xFF, 0xD8}
	pngSignature = []byte{137, 80, 78, 71, 13, 10, 26, 10}
)

// ExtractFromJPEG extracts and decodes the ICC profile of a .jpeg image
func ExtractFromJPEG(r io.Reader, options *ParseOptions) (*Profile, error) {
	return decodeExtracted(r, jpegICC, options)
}

// ExtractFromTIFF extracts and decodes the ICC profile of a .tif image
func ExtractFromTIFF(r io.Reader, options *ParseOptions) (*Profile, error) {
	return decodeExtracted(r, tiffICC, options)
}

// ExtractFromPNG extracts and decodes the ICC profile of a .png image
func ExtractFromPNG(r io.Reader, options *ParseOptions) (*Profile, error) {
	return decodeExtracted(r, pngICC, options)
}

// ExtractFromWebP extracts and decodes the ICC profile of a .webp image
func ExtractFromWebP(r io.Reader, options *ParseOptions) (*Profile, error) {
	return decodeExtracted(r, webpICC, options)
}

// ExtractICC returns the raw ICC profile embedded in a JPEG, TIFF, PNG or WebP image,
// the format being detected from its leading bytes.
func ExtractICC(image []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(image, jpegSOI):
		return jpegICC(image)
	case bytes.HasPrefix(image, pngSignature):
		return pngICC(image)
	case bytes.HasPrefix(image, []byte("II*\x00")), bytes.HasPrefix(image, []byte("MM\x00*")):
		return tiffICC(image)
	case len(image) >= 12 && string(image[:4]) == "RIFF" && string(image[8:12]) == "WEBP":
		return webpICC(image)
	}
	return nil, errors.New("unrecognised image format")
}

func decodeExtracted(r io.Reader, extract func([]byte) ([]byte, error), options *ParseOptions) (*Profile, error) {
	image, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	icc, err := extract(image)
	if err != nil {
		return nil, err
	}
	return Decode(icc, options)
}

// jpegICC joins the ICC_PROFILE APP2 segments in sequence order.
func jpegICC(image []byte) ([]byte, error) {
	const signature = "ICC_PROFILE\x00"
	if !bytes.HasPrefix(image, jpegSOI) {
		return nil, errors.New("not a JPEG file")
	}
	chunks := make(map[int][]byte)
	total := 0
	pos := 2
	for pos+4 <= len(image) {
		if image[pos] != 0xFF {
			return nil, fmt.Errorf("invalid JPEG marker at byte %d", pos)
		}
		marker := image[pos+1]
		if marker == 0xD9 || marker == 0xDA { // EOI, or start of scan: no more metadata
			break
		}
		length := int(binary.BigEndian.Uint16(image[pos+2:]))
		if length < 2 || pos+2+length > len(image) {
			return nil, fmt.Errorf("truncated JPEG segment at byte %d", pos)
		}
		data := image[pos+4 : pos+2+length]
		if marker == 0xE2 && bytes.HasPrefix(data, []byte(signature)) {
			if len(data) < len(signature)+2 {
				return nil, errors.New("invalid profile length")
			}
			seqNo := int(data[len(signature)])
			chunks[seqNo] = data[len(signature)+2:]
			total += len(chunks[seqNo])
		}
		pos += 2 + length
	}
	if len(chunks) == 0 {
		return nil, ErrNoProfile
	}
	combined := make([]byte, 0, total)
	for i := 1; i <= len(chunks); i++ {
		chunk, ok := chunks[i]
		if !ok {
			return nil, fmt.Errorf("missing ICC chunk #%d", i)
		}
		combined = append(combined, chunk...)
	}
	return combined, nil
}

// tiffICC returns the value of tag 34675 in the first IFD.
func tiffICC(image []byte) ([]byte, error) {
	const tagICCProfile = 34675
	if len(image) < 8 {
		return nil, errors.New("failed to read TIFF header")
	}
	var bo binary.ByteOrder
	switch string(image[:2]) {
	case "II":
		bo = binary.LittleEndian
	case "MM":
		bo = binary.BigEndian
	default:
		return nil, errors.New("invalid TIFF byte order")
	}
	if bo.Uint16(image[2:4]) != 42 {
		return nil, errors.New("not a valid TIFF file (missing 42)")
	}
	ifd := uint64(bo.Uint32(image[4:8]))
	if ifd+2 > uint64(len(image)) {
		return nil, errors.New("TIFF IFD offset out of range")
	}
	count := uint64(bo.Uint16(image[ifd:]))
	if ifd+2+12*count > uint64(len(image)) {
		return nil, errors.New("TIFF IFD truncated")
	}
	for i := uint64(0); i < count; i++ {
		entry := image[ifd+2+12*i:]
		if bo.Uint16(entry) != tagICCProfile {
			continue
		}
		length, offset := uint64(bo.Uint32(entry[4:8])), uint64(bo.Uint32(entry[8:12]))
		if length == 0 || offset+length > uint64(len(image)) {
			return nil, fmt.Errorf("ICC profile range %d+%d outside the file", offset, length)
		}
		return bytes.Clone(image[offset : offset+length]), nil
	}
	return nil, ErrNoProfile
}

// pngICC inflates the iCCP chunk.
func pngICC(image []byte) ([]byte, error) {
	if !bytes.HasPrefix(image, pngSignature) {
		return nil, errors.New("not a valid PNG file")
	}
	pos := uint64(len(pngSignature))
	for pos+8 <= uint64(len(image)) {
		length := uint64(binary.BigEndian.Uint32(image[pos:]))
		chunkType := string(image[pos+4 : pos+8])
		end := pos + 8 + length
		if end+4 > uint64(len(image)) {
			return nil, fmt.Errorf("truncated PNG chunk %q", chunkType)
		}
		switch chunkType {
		case "iCCP":
			// profile name, NUL, compression method, zlib stream
			parts := bytes.SplitN(image[pos+8:end], []byte{0}, 2)
			if len(parts) != 2 || len(parts[1]) < 1 {
				return nil, errors.New("invalid iCCP chunk format")
			}
			icc, err := inflate(parts[1][1:])
			if err != nil {
				return nil, fmt.Errorf("failed to decompress ICC profile: %w", err)
			}
			return icc, nil
		case "IEND":
			return nil, ErrNoProfile
		}
		pos = end + 4 // CRC
	}
	return nil, ErrNoProfile
}

// webpICC returns the ICCP chunk of a RIFF WebP container.
func webpICC(image []byte) ([]byte, error) {
	if len(image) < 12 || string(image[:4]) != "RIFF" || string(image[8:12]) != "WEBP" {
		return nil, errors.New("not a valid WebP (missing RIFF/WEBP headers)")
	}
	pos := uint64(12)
	for pos+8 <= uint64(len(image)) {
		chunkType := string(image[pos : pos+4])
		size := uint64(binary.LittleEndian.Uint32(image[pos+4:]))
		if pos+8+size > uint64(len(image)) {
			return nil, fmt.Errorf("truncated WebP chunk %q", chunkType)
		}
		if chunkType == "ICCP" {
			return bytes.Clone(image[pos+8 : pos+8+size]), nil
		}
		pos += 8 + size + size%2
	}
	return nil, ErrNoProfile
}
