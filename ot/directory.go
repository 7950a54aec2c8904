package ot

import (
	"fmt"
	"sort"
)

// SFNT versions accepted in the offset table.
const (
	SFNTVersionTrueType = 0x00010000
	SFNTVersionCFF      = 0x4f54544f // OTTO
	SFNTVersionApple    = 0x74727565 // true
)

// MaxTableCount limits the number of table records we are willing to read.
// Real fonts carry less than 50 tables.
const MaxTableCount = 1024

// TableRecord is an entry of a font's table directory.
type TableRecord struct {
	Tag      Tag
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// TableDirectory is the directory of the top-level tables in a font.
//
// OpenType fonts that contain TrueType outlines should use the value of 0x00010000
// for the version. OpenType fonts containing CFF data (version 1 or 2) should
// use 0x4F54544F ('OTTO', when re-interpreted as a Tag).
type TableDirectory struct {
	Version  uint32
	Records  []TableRecord // sorted by tag
	warnings []FontWarning
}

// ParseTableDirectory reads the offset table and the table records of an
// SFNT font. Table contents are not inspected, but every record is checked
// to lie within data.
func ParseTableDirectory(data []byte) (*TableDirectory, error) {
	src := binarySegm(data)
	version, err := src.u32(0)
	if err != nil {
		return nil, directoryError("Header", "font data too short for offset table", 0)
	}
	tracer().Debugf("sfnt version = %x|%s", version, Tag(version).String())
	if version != SFNTVersionTrueType && version != SFNTVersionCFF && version != SFNTVersionApple {
		return nil, directoryError("Header", fmt.Sprintf("font type not supported: %x", version), 0)
	}
	count, err := src.u16(4)
	if err != nil {
		return nil, directoryError("Header", "cannot read table count", 4)
	}
	if count > MaxTableCount {
		return nil, directoryError("Header", fmt.Sprintf("table count too large: %d", count), 4)
	}
	dir := &TableDirectory{Version: version, Records: make([]TableRecord, 0, count)}
	if count == 0 {
		return dir, nil
	}
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	buf, err := src.view(12, 16*int(count))
	if err != nil {
		return nil, directoryError("TableRecords", "table record entries exceed font data", 12)
	}
	var prev Tag
	for i := 0; len(buf) > 0; buf, i = buf[16:], i+1 {
		rec := TableRecord{
			Tag:      MakeTag(buf[:4]),
			Checksum: u32(buf[4:8]),
			Offset:   u32(buf[8:12]),
			Length:   u32(buf[12:16]),
		}
		at := uint32(12 + 16*i)
		if i > 0 && rec.Tag <= prev {
			return nil, directoryError("TableRecords", "table order", at)
		}
		prev = rec.Tag
		if rec.Offset&3 != 0 { // "all tables must begin on four byte boundries"
			return nil, FontError{Table: rec.Tag, Section: "Offset", Issue: "invalid table offset",
				Severity: SeverityCritical, Offset: rec.Offset}
		}
		if uint64(rec.Offset)+uint64(rec.Length) > uint64(len(data)) {
			return nil, FontError{Table: rec.Tag, Section: "Bounds",
				Issue: fmt.Sprintf("bounds [%d:%d] exceed font size %d", rec.Offset,
					uint64(rec.Offset)+uint64(rec.Length), len(data)),
				Severity: SeverityCritical, Offset: rec.Offset}
		}
		if !rec.Tag.IsPrintable() {
			dir.warnings = append(dir.warnings, FontWarning{Table: rec.Tag,
				Issue: "tag contains non-printable characters", Offset: at})
		}
		if rec.Length == 0 {
			dir.warnings = append(dir.warnings, FontWarning{Table: rec.Tag,
				Issue: "empty table", Offset: rec.Offset})
		}
		dir.Records = append(dir.Records, rec)
	}
	return dir, nil
}

func directoryError(section, issue string, offset uint32) FontError {
	return FontError{
		Table:    T(""),
		Section:  section,
		Issue:    issue,
		Severity: SeverityCritical,
		Offset:   offset,
	}
}

// Has returns true if the font contains a table for tag.
func (dir *TableDirectory) Has(tag Tag) bool {
	_, ok := dir.Lookup(tag)
	return ok
}

// Lookup returns the table record for tag.
func (dir *TableDirectory) Lookup(tag Tag) (TableRecord, bool) {
	if dir == nil {
		return TableRecord{}, false
	}
	i := sort.Search(len(dir.Records), func(i int) bool {
		return dir.Records[i].Tag >= tag
	})
	if i < len(dir.Records) && dir.Records[i].Tag == tag {
		return dir.Records[i], true
	}
	return TableRecord{}, false
}

// Tags returns the tags of all tables, in ascending order.
func (dir *TableDirectory) Tags() []Tag {
	if dir == nil {
		return nil
	}
	tags := make([]Tag, len(dir.Records))
	for i, rec := range dir.Records {
		tags[i] = rec.Tag
	}
	return tags
}

// IsCFF returns true if the font carries CFF outlines.
func (dir *TableDirectory) IsCFF() bool {
	return dir != nil && dir.Version == SFNTVersionCFF
}

// Warnings returns the issues found while reading the directory which
// did not prevent reading it.
func (dir *TableDirectory) Warnings() []FontWarning {
	if dir == nil || dir.warnings == nil {
		return []FontWarning{}
	}
	return dir.warnings
}
