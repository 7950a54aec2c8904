package subset

import (
	"github.com/npillmayer/otsubset/ot"
)

// Tables dropped by default.
var defaultDropTables = ot.Tags(
	// Layout disabled by default
	"morx", "mort", "kerx", "kern",
	// Copied from fontTools
	"BASE", "JSTF", "DSIG", "EBDT", "EBLC", "EBSC", "SVG ", "PCLT", "LTSH",
	// Graphite tables
	"Feat", "Glat", "Gloc", "Silf", "Sill",
)

// Tables copied verbatim by default.
var defaultNoSubsetTables = ot.Tags(
	"avar", "fvar", "gasp", "cvt ", "fpgm", "prep", "VDMX", "DSIG", "MVAR", "cvar", "STAT",
)

// Layout features retained by default, grouped by shaper as in fontTools'
// _layout_features_groups. Some tags occur in more than one group.
var defaultLayoutFeatures = ot.Tags(
	// common
	"rvrn", "ccmp", "liga", "locl", "mark", "mkmk", "rlig",
	// fractions
	"frac", "numr", "dnom",
	// horizontal
	"calt", "clig", "curs", "kern", "rclt",
	// vertical
	"valt", "vert", "vkrn", "vpal", "vrt2",
	// ltr
	"ltra", "ltrm",
	// rtl
	"rtla", "rtlm",
	// arabic
	"init", "medi", "fina", "isol", "med2", "fin2", "fin3", "cswh", "mset", "stch",
	// hangul
	"ljmo", "vjmo", "tjmo",
	// tibetan
	"abvs", "blws", "abvm", "blwm",
	// indic
	"nukt", "akhn", "rphf", "rkrf", "pref", "blwf", "half", "abvf", "pstf", "cfar",
	"vatu", "cjct", "init", "pres", "abvs", "blws", "psts", "haln", "dist", "abvm",
	"blwm",
)

// Default name IDs 0…6: copyright, family, subfamily, unique ID, full name,
// version and PostScript name.
const (
	defaultNameIDFirst = 0
	defaultNameIDLast  = 6
)

// LangIDEnglishUS is the Windows language ID for US English, the default
// language of name records to retain.
const LangIDEnglishUS = 0x0409

// DefaultDropTables returns the tags of tables a fresh Input drops.
func DefaultDropTables() []ot.Tag {
	return cloneTags(defaultDropTables)
}

// DefaultNoSubsetTables returns the tags of tables a fresh Input copies
// without subsetting.
func DefaultNoSubsetTables() []ot.Tag {
	return cloneTags(defaultNoSubsetTables)
}

// DefaultLayoutFeatures returns the feature tags a fresh Input retains.
// The list may contain duplicates.
func DefaultLayoutFeatures() []ot.Tag {
	return cloneTags(defaultLayoutFeatures)
}

func cloneTags(tags []ot.Tag) []ot.Tag {
	c := make([]ot.Tag, len(tags))
	copy(c, tags)
	return c
}

func tagValues(tags []ot.Tag) []uint32 {
	values := make([]uint32, len(tags))
	for i, t := range tags {
		values[i] = uint32(t)
	}
	return values
}
