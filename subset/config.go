package subset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/otsubset/intset"
	"github.com/npillmayer/otsubset/ot"
)

// Names of the sets of an input, as used for configuration keys and by
// command line tools.
const (
	SetUnicodes       = "unicodes"
	SetGlyphs         = "glyphs"
	SetNameIDs        = "name-ids"
	SetNameLanguages  = "name-languages"
	SetLayoutFeatures = "layout-features"
	SetDropTables     = "drop-tables"
	SetNoSubsetTables = "no-subset-tables"
)

// SetNames lists the names of all sets of an input.
func SetNames() []string {
	return []string{SetUnicodes, SetGlyphs, SetNameIDs, SetNameLanguages,
		SetLayoutFeatures, SetDropTables, SetNoSubsetTables}
}

// SetByName returns the set of in with the given name, e.g. "drop-tables".
func (in *Input) SetByName(name string) (*intset.Set, bool) {
	switch name {
	case SetUnicodes:
		return in.unicodes, true
	case SetGlyphs:
		return in.glyphs, true
	case SetNameIDs:
		return in.nameIDs, true
	case SetNameLanguages:
		return in.nameLanguages, true
	case SetLayoutFeatures:
		return in.layoutFeatures, true
	case SetDropTables:
		return in.dropTables, true
	case SetNoSubsetTables:
		return in.noSubsetTables, true
	}
	return nil, false
}

// Largest values of the numeric sets.
const (
	MaxCodePoint = 0x10FFFF
	MaxUint16    = 0xFFFF
)

// SetLimit returns the largest value a set called name may hold. Numeric
// lists are checked against it before they are added, as a single range may
// otherwise expand to billions of members. Tag sets are not limited.
func SetLimit(name string) uint32 {
	switch name {
	case SetUnicodes:
		return MaxCodePoint
	case SetGlyphs, SetNameIDs, SetNameLanguages:
		return MaxUint16
	}
	return math.MaxUint32
}

// IsTagSet returns true for the names of sets holding OpenType tags.
func IsTagSet(name string) bool {
	return name == SetLayoutFeatures || name == SetDropTables || name == SetNoSubsetTables
}

// Configuration is the part of a schuko.Configuration which Configure
// reads from.
type Configuration interface {
	GetString(key string) string
}

// ConfigPrefix is the prefix of configuration keys read by Configure.
const ConfigPrefix = "subset."

// Configure applies configuration values to in. Keys are prefixed by
// "subset.":
//
//	subset.<flag>               "true" or "false", e.g. subset.retain-gids
//	subset.retain-all-features  "true" or "false"
//	subset.<set>                a list of values, e.g. subset.unicodes = "U+41-U+5A,0x20"
//
// Lists for tag sets replace the defaults, unless they start with '+'.
// Lists for numeric sets always add to the set. Keys which are not set (i.e.
// have an empty value) are skipped.
//
// Every key is validated before it is applied, thus a malformed value leaves
// the corresponding part of in untouched. Configure continues with the
// remaining keys and reports the first error.
func Configure(in *Input, conf Configuration) error {
	if in == nil || conf == nil {
		return nil
	}
	var firstErr error
	report := func(key string, err error) {
		tracer().Errorf("configuration key %s: %v", key, err)
		if firstErr == nil {
			firstErr = fmt.Errorf("configuration key %s: %w", key, err)
		}
	}
	for _, flag := range AllFlags() {
		key := ConfigPrefix + flag.String()
		if v := conf.GetString(key); v != "" {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				report(key, err)
				continue
			}
			in.SetFlag(flag, b)
		}
	}
	if v := conf.GetString(ConfigPrefix + "retain-all-features"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			report(ConfigPrefix+"retain-all-features", err)
		} else {
			in.SetRetainAllFeatures(b)
		}
	}
	for _, name := range SetNames() {
		key := ConfigPrefix + name
		v := strings.TrimSpace(conf.GetString(key))
		if v == "" {
			continue
		}
		s, _ := in.SetByName(name)
		if IsTagSet(name) {
			add := strings.HasPrefix(v, "+")
			tags, err := ParseTagList(strings.TrimPrefix(v, "+"))
			if err != nil {
				report(key, err)
				continue
			}
			if !add {
				s.Clear()
			}
			for _, t := range tags {
				s.Add(uint32(t))
			}
		} else {
			values, err := ParseNumberList(v, SetLimit(name))
			if err != nil {
				report(key, err)
				continue
			}
			for n := range values.All() {
				s.Add(n)
			}
		}
		tracer().Debugf("configured %s = %s", name, s)
	}
	return firstErr
}

// ParseNumberList parses a comma- or space-separated list of numbers and
// inclusive ranges. Numbers are decimal, hex with prefix "0x", or code-points
// with prefix "U+":
//
//	"65,66,0x43"     "U+0041-U+005A"     "0-6 9"
//
// Numbers larger than limit are rejected. The whole list is checked before any
// range is expanded.
func ParseNumberList(list string, limit uint32) (*intset.Set, error) {
	type span struct{ from, to uint32 }
	var spans []span
	for _, item := range splitList(list) {
		lo, hi, isRange := strings.Cut(item, "-")
		from, err := parseNumber(lo)
		if err != nil {
			return nil, err
		}
		to := from
		if isRange {
			if to, err = parseNumber(hi); err != nil {
				return nil, err
			}
			if to < from {
				return nil, fmt.Errorf("invalid range %q", item)
			}
		}
		if to > limit {
			return nil, fmt.Errorf("%q out of range, maximum is 0x%X", item, limit)
		}
		spans = append(spans, span{from, to})
	}
	values := intset.New()
	for _, sp := range spans {
		values.AddRange(sp.from, sp.to)
	}
	return values, nil
}

// ParseTagList parses a comma- or space-separated list of OpenType tags.
// Tags shorter than 4 characters are padded with spaces, thus "cvt" is the
// tag of the control value table. Use commas to separate tags which contain
// spaces.
func ParseTagList(list string) ([]ot.Tag, error) {
	var items []string
	if strings.Contains(list, ",") {
		for _, item := range strings.Split(list, ",") {
			if item = strings.TrimLeft(item, " \t"); item != "" {
				items = append(items, item)
			}
		}
	} else {
		items = splitList(list)
	}
	tags := make([]ot.Tag, 0, len(items))
	for _, item := range items {
		item = strings.TrimRight(item, " \t")
		if len(item) == 0 || len(item) > 4 {
			return nil, fmt.Errorf("invalid tag %q", item)
		}
		tag := ot.T(item)
		if !tag.IsPrintable() {
			return nil, fmt.Errorf("invalid tag %q", item)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func splitList(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func parseNumber(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	base := 10
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	n, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return uint32(n), nil
}
