package subset

import (
	"fmt"
	"strings"

	"github.com/npillmayer/otsubset/intset"
	"github.com/npillmayer/otsubset/ot"
)

const subsetModulus = 26 * 26 * 26 * 26 * 26 * 26

// SubsetTag constructs a 6-letter tag (range AAAAAA to ZZZZZZ) describing the
// glyphs retained by in. PDF uses such tags as a prefix of the /BaseFont name
// of embedded font subsets, e.g. "EOODIA+Poetica".
//
// Only explicitly requested glyphs take part; glyphs reachable from code-points
// are known only to a subsetting engine. numGlyphs is the number of glyphs of
// the original font.
func (in *Input) SubsetTag(numGlyphs int) string {
	// mix all the information into a single number
	X := uint64(numGlyphs)
	for g := range in.glyphs.All() {
		// 11 is the largest integer smaller than `1<<32 / subsetModulus` which
		// is relatively prime to 26.
		X = (X*11 + uint64(g)) % subsetModulus
	}
	var buf [6]byte
	for i := range buf {
		buf[i] = 'A' + byte(X%26)
		X /= 26
	}
	return string(buf[:])
}

// String summarizes the sets and flags of in.
func (in *Input) String() string {
	if !in.IsAlive() {
		return "subset.Input(destroyed)"
	}
	var sb strings.Builder
	sb.WriteString("subset.Input{")
	for i, name := range SetNames() {
		if i > 0 {
			sb.WriteString(", ")
		}
		s, _ := in.SetByName(name)
		sb.WriteString(fmt.Sprintf("%s:%d", name, s.Len()))
	}
	for _, flag := range AllFlags() {
		if in.GetFlag(flag) {
			sb.WriteString(", +" + flag.String())
		}
	}
	if in.retainAllFeatures {
		sb.WriteString(", +retain-all-features")
	}
	sb.WriteByte('}')
	return sb.String()
}

// TagStrings formats the members of a tag set, e.g. DropTablesSet, as
// 4-letter tags in ascending order.
func TagStrings(s *intset.Set) []string {
	tags := make([]string, 0, s.Len())
	for v := range s.All() {
		tags = append(tags, ot.Tag(v).String())
	}
	return tags
}
