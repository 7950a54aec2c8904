package otsubset

import (
	"github.com/npillmayer/otsubset/ot"
	"github.com/npillmayer/otsubset/subset"
)

// Disposition tells what happens to a table during subsetting.
type Disposition int

const (
	Drop        Disposition = iota // table is omitted from the subset
	Passthrough                    // table is copied unchanged
	Subset                         // table is rewritten for the retained glyphs
)

func (d Disposition) String() string {
	switch d {
	case Drop:
		return "drop"
	case Passthrough:
		return "passthrough"
	case Subset:
		return "subset"
	}
	return "unknown"
}

// TableDisposition is the preview for a single table of a font.
type TableDisposition struct {
	Tag         ot.Tag
	Length      uint32
	Disposition Disposition
	Reason      string
}

// Tables a subsetter knows how to rewrite.
var subsettableTables = map[ot.Tag]bool{}

// Tables carrying TrueType hinting; dropped together with hints.
var hintingTables = map[ot.Tag]bool{}

func init() {
	for _, t := range ot.Tags("glyf", "loca", "cmap", "head", "hhea", "hmtx", "vhea", "vmtx",
		"maxp", "name", "post", "OS/2", "hdmx", "GDEF", "GSUB", "GPOS", "CFF ", "CFF2",
		"VORG", "COLR", "CPAL", "CBLC", "CBDT", "sbix", "gvar", "HVAR", "VVAR", "kern") {
		subsettableTables[t] = true
	}
	for _, t := range ot.Tags("cvt ", "fpgm", "prep", "hdmx", "VDMX") {
		hintingTables[t] = true
	}
}

// PreviewTables decides for every table of dir what a subsetter will do with
// it, guided by in:
//
//   - tables in in's drop-tables set are dropped
//   - hinting tables are dropped if hinting is not retained
//   - tables in in's no-subset-tables set are copied unchanged
//   - tables a subsetter knows are subsetted
//   - other tables are copied if PassthroughUnrecognized is set, else dropped
//
// The preview is informational. A subsetting engine is free to deviate.
func PreviewTables(dir *ot.TableDirectory, in *subset.Input) []TableDisposition {
	if dir == nil || !in.IsAlive() {
		return nil
	}
	preview := make([]TableDisposition, 0, len(dir.Records))
	for _, rec := range dir.Records {
		d := TableDisposition{Tag: rec.Tag, Length: rec.Length}
		tag := uint32(rec.Tag)
		switch {
		case in.DropTablesSet().Has(tag):
			d.Disposition, d.Reason = Drop, "drop-tables"
		case hintingTables[rec.Tag] && !in.GetFlag(subset.Hinting):
			d.Disposition, d.Reason = Drop, "hinting"
		case in.NoSubsetTablesSet().Has(tag):
			d.Disposition, d.Reason = Passthrough, "no-subset-tables"
		case subsettableTables[rec.Tag]:
			d.Disposition, d.Reason = Subset, ""
		case in.GetFlag(subset.PassthroughUnrecognized):
			d.Disposition, d.Reason = Passthrough, "unrecognized"
		default:
			d.Disposition, d.Reason = Drop, "unrecognized"
		}
		preview = append(preview, d)
	}
	return preview
}
