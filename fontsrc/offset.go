package fontsrc

import "encoding/binary"

// sfnt version tags accepted as a single font.
const (
	tagTrueType  = 0x00010000
	tagOpenType  = 0x4f54544f // "OTTO"
	tagAppleTrue = 0x74727565 // "true"
	tagType1     = 0x74797031 // "typ1"
	tagTTC       = 0x74746366 // "ttcf"
)

func isSingleFont(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	switch binary.BigEndian.Uint32(data) {
	case tagTrueType, tagOpenType, tagAppleTrue, tagType1:
		return true
	}
	return false
}

// collectionOffsets returns the TTC table directory offsets, or nil if data
// is not a version 1 or 2 collection.
func collectionOffsets(data []byte) []uint32 {
	if len(data) < 12 || binary.BigEndian.Uint32(data) != tagTTC {
		return nil
	}
	switch binary.BigEndian.Uint32(data[4:]) {
	case 0x00010000, 0x00020000:
	default:
		return nil
	}
	n := int(binary.BigEndian.Uint32(data[8:]))
	if n <= 0 || len(data) < 12+4*n {
		return nil
	}
	offsets := make([]uint32, n)
	for i := range offsets {
		offsets[i] = binary.BigEndian.Uint32(data[12+4*i:])
	}
	return offsets
}

// NumberOfFonts returns how many fonts data holds: 1 for a single font,
// the header count for a collection, 0 if data is not recognized.
func NumberOfFonts(data []byte) int {
	if isSingleFont(data) {
		return 1
	}
	return len(collectionOffsets(data))
}

// FontOffsetForIndex returns the byte offset of font index in data, or -1
// if there is no such font. A single-font file only has index 0, at
// offset 0.
func FontOffsetForIndex(data []byte, index int) int {
	if index < 0 {
		return -1
	}
	if isSingleFont(data) {
		if index == 0 {
			return 0
		}
		return -1
	}
	offsets := collectionOffsets(data)
	if index >= len(offsets) {
		return -1
	}
	return int(offsets[index])
}

// IndexForOffset is the inverse of FontOffsetForIndex. It returns -1 when
// offset does not start a font in data.
func IndexForOffset(data []byte, offset int) int {
	for i, n := 0, NumberOfFonts(data); i < n; i++ {
		if FontOffsetForIndex(data, i) == offset {
			return i
		}
	}
	return -1
}
