package ot

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// --- Tag -------------------------------------------------------------------

// Tag is defined by OpenType as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate.
// Short tags are padded with spaces, thus T("cvt") == T("cvt ").
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

// Tags converts a list of strings to tags, using T.
func Tags(tt ...string) []Tag {
	tags := make([]Tag, len(tt))
	for i, t := range tt {
		tags[i] = T(t)
	}
	return tags
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// IsPrintable returns true if every byte of the tag is in the printable
// ASCII range 0x20…0x7e, as required for valid OpenType tags.
func (t Tag) IsPrintable() bool {
	for shift := 0; shift < 32; shift += 8 {
		c := byte(t >> shift & 0xff)
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// DFLT is a common tag, representing the default script or default language.
const DFLT = Tag(0x44464c54)
