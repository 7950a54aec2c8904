package subset

import "strings"

// Flag identifies a boolean option of a subset input.
//
// Flags not known to this package are tolerated: GetFlag reports them as
// false and SetFlag ignores them. This allows tools to pass flags intended
// for newer versions of a subsetter without breaking older ones.
type Flag uint32

const (
	Hinting                 Flag = iota // keep hinting instructions (default true)
	RetainGIDs                          // keep glyph IDs instead of compacting them
	Desubroutinize                      // inline subroutine calls of CFF charstrings
	NameLegacy                          // keep non-Unicode name records
	SetOverlapsFlag                     // set OVERLAP_SIMPLE on retained glyph outlines
	PassthroughUnrecognized             // copy unknown tables instead of dropping them
	NotdefOutline                       // keep the outline of .notdef
	NoPruneUnicodeRanges                // do not adjust OS/2 unicode range bits
	flagCount
)

var flagNames = [...]string{
	Hinting:                 "hinting",
	RetainGIDs:              "retain-gids",
	Desubroutinize:          "desubroutinize",
	NameLegacy:              "name-legacy",
	SetOverlapsFlag:         "set-overlaps-flag",
	PassthroughUnrecognized: "passthrough-unrecognized",
	NotdefOutline:           "notdef-outline",
	NoPruneUnicodeRanges:    "no-prune-unicode-ranges",
}

func (f Flag) String() string {
	if f < flagCount {
		return flagNames[f]
	}
	return "unknown-flag"
}

// AllFlags returns every flag known to this package.
func AllFlags() []Flag {
	flags := make([]Flag, flagCount)
	for i := range flags {
		flags[i] = Flag(i)
	}
	return flags
}

// ParseFlag finds a flag by name. Names are matched case-insensitively, and
// underscores are treated like hyphens.
func ParseFlag(name string) (Flag, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range flagNames {
		if n == name {
			return Flag(i), true
		}
	}
	return flagCount, false
}

// GetFlag returns the value of flag. For unknown flags GetFlag returns false.
//
// Hinting reports whether hinting is retained; a fresh input returns true.
func (in *Input) GetFlag(flag Flag) bool {
	switch flag {
	case Hinting:
		return !in.dropHints
	case RetainGIDs:
		return in.retainGIDs
	case Desubroutinize:
		return in.desubroutinize
	case NameLegacy:
		return in.nameLegacy
	case SetOverlapsFlag:
		return in.overlapsFlag
	case PassthroughUnrecognized:
		return in.passthroughUnrecognized
	case NotdefOutline:
		return in.notdefOutline
	case NoPruneUnicodeRanges:
		return in.noPruneUnicodeRanges
	}
	return false
}

// SetFlag sets flag to value. Unknown flags are silently ignored.
//
// SetFlag(Hinting, false) tells a subsetter to strip hinting instructions.
func (in *Input) SetFlag(flag Flag, value bool) {
	switch flag {
	case Hinting:
		in.dropHints = !value
	case RetainGIDs:
		in.retainGIDs = value
	case Desubroutinize:
		in.desubroutinize = value
	case NameLegacy:
		in.nameLegacy = value
	case SetOverlapsFlag:
		in.overlapsFlag = value
	case PassthroughUnrecognized:
		in.passthroughUnrecognized = value
	case NotdefOutline:
		in.notdefOutline = value
	case NoPruneUnicodeRanges:
		in.noPruneUnicodeRanges = value
	default:
		tracer().Debugf("ignoring unknown subset flag %d", uint32(flag))
	}
}

// DropsHints returns true if a subsetter should strip hinting instructions.
// It is the negation of GetFlag(Hinting).
func (in *Input) DropsHints() bool {
	return in.dropHints
}
