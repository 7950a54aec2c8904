/*
Package otsubset prepares OpenType fonts for subsetting.

The heart of this module is package `subset`, which holds the input to a
subsetting run: code-points, glyphs, name records, layout features and tables
to retain or drop, plus a set of flags. Package `otsubset` connects a subset
input to a concrete font: it loads a font, maps the input's code-points to
glyphs and previews what a subsetter will do with each of the font's tables.

There is a certain confusion with the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "font" is a variant of a typeface with a certain weight, slant, etc.
An example is "Helvetica regular".

▪︎ A "subset" of a font is a font carrying only a selection of the glyphs,
tables and features of the original font, usually for embedding it into a
document.

# Status

Font collections (*.ttc) are not supported.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

HarfBuzz subsetter:
https://harfbuzz.github.io/harfbuzz-hb-subset.html

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otsubset

import (
	"fmt"
	"os"

	"github.com/npillmayer/otsubset/intset"
	"github.com/npillmayer/otsubset/ot"
	"github.com/npillmayer/otsubset/subset"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'otsubset'
func tracer() tracing.Trace {
	return tracing.Select("otsubset")
}

// Font is an OpenType font (TTF or OTF) loaded for subsetting.
type Font struct {
	Fontname  string
	Filepath  string             // file path, if loaded from a file
	Binary    []byte             // raw data
	SFNT      *sfnt.Font         // the font's container
	Directory *ot.TableDirectory // the font's tables
}

// LoadFont loads an OpenType font (TTF or OTF) from a file.
func LoadFont(fontfile string) (*Font, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseFont loads an OpenType font (TTF or OTF) from memory.
// fbytes must not change while the font is in use.
func ParseFont(fbytes []byte) (f *Font, err error) {
	f = &Font{Binary: fbytes}
	if f.Directory, err = ot.ParseTableDirectory(fbytes); err != nil {
		return nil, err
	}
	if f.SFNT, err = sfnt.Parse(f.Binary); err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	for _, w := range f.Directory.Warnings() {
		tracer().Infof("font %s: %s", f.Fontname, w)
	}
	return f, nil
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.SFNT.NumGlyphs()
}

// GlyphsFor maps the code-points of in to glyph IDs using the font's cmap.
// Code-points the font does not cover are reported in missing.
//
// The result is a plain lookup; glyphs reachable only through layout
// substitutions or composite glyphs are not included.
func (f *Font) GlyphsFor(in *subset.Input) (glyphs *intset.Set, missing []rune, err error) {
	glyphs = intset.New()
	var buf sfnt.Buffer
	for cp := range in.UnicodeSet().All() {
		gid, err := f.SFNT.GlyphIndex(&buf, rune(cp))
		if err != nil {
			return nil, nil, fmt.Errorf("cmap lookup for U+%04X: %w", cp, err)
		}
		if gid == 0 {
			missing = append(missing, rune(cp))
			continue
		}
		glyphs.Add(uint32(gid))
	}
	tracer().Debugf("mapped %d code-points to %d glyphs, %d missing",
		in.UnicodeSet().Len(), glyphs.Len(), len(missing))
	return glyphs, missing, nil
}

// Preview returns what a subsetter would do with each of the tables of f,
// given in. See PreviewTables.
func (f *Font) Preview(in *subset.Input) []TableDisposition {
	return PreviewTables(f.Directory, in)
}
