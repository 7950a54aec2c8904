package otsubset

import (
	"testing"

	"github.com/npillmayer/otsubset/internal/fonttest"
	"github.com/npillmayer/otsubset/ot"
	"github.com/npillmayer/otsubset/subset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsubset")
	defer teardown()
	//
	f, err := ParseFont(goregular.TTF)
	require.NoError(t, err)
	assert.Contains(t, f.Fontname, "Go")
	for _, tag := range []string{"cmap", "glyf", "head", "hhea", "hmtx", "loca", "maxp", "name", "post"} {
		assert.True(t, f.Directory.Has(ot.T(tag)), "expected table %s in Go Regular", tag)
	}
	assert.Greater(t, f.NumGlyphs(), 100)
}

func TestParseFontRejectsGarbage(t *testing.T) {
	_, err := ParseFont([]byte("this is not a font"))
	assert.Error(t, err)
	_, err = LoadFont("does/not/exist.ttf")
	assert.Error(t, err)
}

func TestGlyphsFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsubset")
	defer teardown()
	//
	f, err := ParseFont(goregular.TTF)
	require.NoError(t, err)
	in := subset.New()
	require.NotNil(t, in)
	defer in.Destroy()
	in.AddText("ABC")
	in.UnicodeSet().Add(0x10FFFD) // private use, not covered by Go Regular
	glyphs, missing, err := f.GlyphsFor(in)
	require.NoError(t, err)
	assert.Equal(t, 3, glyphs.Len())
	assert.False(t, glyphs.Has(0), ".notdef must not be reported as a mapped glyph")
	assert.Equal(t, []rune{0x10FFFD}, missing)
}

func TestPreviewTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsubset")
	defer teardown()
	//
	dir, err := ot.ParseTableDirectory(fonttest.WithTags(
		"cmap", "glyf", "kern", "fpgm", "gasp", "DSIG", "Zapf", "GSUB"))
	require.NoError(t, err)
	in := subset.New()
	require.NotNil(t, in)
	defer in.Destroy()

	got := dispositions(PreviewTables(dir, in))
	assert.Equal(t, map[string]Disposition{
		"cmap": Subset,
		"glyf": Subset,
		"GSUB": Subset,
		"kern": Drop,        // default drop table
		"DSIG": Drop,        // drop wins over no-subset
		"fpgm": Passthrough, // hinting retained
		"gasp": Passthrough,
		"Zapf": Drop,
	}, got)

	in.SetFlag(subset.Hinting, false)
	in.SetFlag(subset.PassthroughUnrecognized, true)
	in.DropTablesSet().Remove(uint32(ot.T("kern")))
	got = dispositions(PreviewTables(dir, in))
	assert.Equal(t, Drop, got["fpgm"])
	assert.Equal(t, Passthrough, got["Zapf"])
	assert.Equal(t, Subset, got["kern"])
}

func TestPreviewOnDestroyedInput(t *testing.T) {
	dir, err := ot.ParseTableDirectory(fonttest.WithTags("cmap"))
	require.NoError(t, err)
	in := subset.New()
	in.Destroy()
	assert.Nil(t, PreviewTables(dir, in))
	assert.Equal(t, "passthrough", Passthrough.String())
}

func dispositions(preview []TableDisposition) map[string]Disposition {
	m := make(map[string]Disposition, len(preview))
	for _, d := range preview {
		m[d.Tag.String()] = d.Disposition
	}
	return m
}
