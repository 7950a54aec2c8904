package subset

import (
	"math"
	"testing"

	"github.com/npillmayer/otsubset/intset"
	"github.com/npillmayer/otsubset/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapConf map[string]string

func (c mapConf) GetString(key string) string {
	return c[key]
}

func TestConfigureFlagsAndSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsubset.subset")
	defer teardown()
	//
	in := New()
	require.NotNil(t, in)
	defer in.Destroy()
	conf := mapConf{
		"subset.hinting":             "false",
		"subset.retain-gids":         "true",
		"subset.retain-all-features": "1",
		"subset.unicodes":            "U+0041-U+0043, 0x20",
		"subset.glyphs":              "1 2 10-12",
		"subset.name-languages":      "0x0407",
		"subset.drop-tables":         "+GSUB",
		"subset.no-subset-tables":    "cvt ,fpgm",
	}
	require.NoError(t, Configure(in, conf))
	assert.False(t, in.GetFlag(Hinting))
	assert.True(t, in.GetFlag(RetainGIDs))
	assert.True(t, in.GetRetainAllFeatures())
	assert.True(t, in.UnicodeSet().Equal(intset.New(0x20, 0x41, 0x42, 0x43)), "unicodes = %s", in.UnicodeSet())
	assert.True(t, in.GlyphSet().Equal(intset.New(1, 2, 10, 11, 12)), "glyphs = %s", in.GlyphSet())
	assert.True(t, in.NameLangIDSet().Equal(intset.New(0x0407, 0x0409)))
	assert.Equal(t, 19, in.DropTablesSet().Len(), "'+' must add to defaults")
	assert.True(t, in.DropTablesSet().Has(uint32(ot.T("GSUB"))))
	assert.Equal(t, []string{"cvt ", "fpgm"}, TagStrings(in.NoSubsetTablesSet()))
	assert.Equal(t, 57, in.LayoutFeaturesSet().Len(), "unconfigured sets keep defaults")
}

func TestConfigureErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsubset.subset")
	defer teardown()
	//
	in := New()
	defer in.Destroy()
	conf := mapConf{
		"subset.retain-gids":      "maybe",
		"subset.layout-features":  "liga,toolong",
		"subset.glyphs":           "5-3",
		"subset.desubroutinize":   "true",
		"subset.no-subset-tables": "STAT",
	}
	err := Configure(in, conf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subset.retain-gids")
	assert.False(t, in.GetFlag(RetainGIDs))
	assert.True(t, in.GetFlag(Desubroutinize), "valid keys are applied")
	assert.Equal(t, 57, in.LayoutFeaturesSet().Len(), "malformed list must not touch the set")
	assert.True(t, in.GlyphSet().IsEmpty())
	assert.Equal(t, []string{"STAT"}, TagStrings(in.NoSubsetTablesSet()))
}

func TestConfigureNil(t *testing.T) {
	assert.NoError(t, Configure(nil, mapConf{}))
	in := New()
	defer in.Destroy()
	assert.NoError(t, Configure(in, nil))
}

func TestParseNumberList(t *testing.T) {
	s, err := ParseNumberList("0-6,9 u+41", math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, "{0-6, 9, 65}", s.String())
	for _, bad := range []string{"x", "1-", "0x", "4294967296", "7-2"} {
		_, err := ParseNumberList(bad, math.MaxUint32)
		assert.Error(t, err, "expected error for %q", bad)
	}
	_, err = ParseNumberList("1 2 0-0x10000", MaxUint16)
	assert.Error(t, err, "range beyond maximum must be rejected")
	s, err = ParseNumberList("0xFFFE-0xFFFF", MaxUint16)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestConfigureRejectsOutOfRangeValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsubset.subset")
	defer teardown()
	//
	in := New()
	require.NotNil(t, in)
	defer in.Destroy()
	for key, value := range map[string]string{
		"subset.unicodes":       "0-0xFFFFFFFF",
		"subset.glyphs":         "0x10000",
		"subset.name-ids":       "0-70000",
		"subset.name-languages": "0x0407, 0x1FFFF",
	} {
		err := Configure(in, mapConf{key: value})
		require.Error(t, err, key)
		assert.Contains(t, err.Error(), key)
	}
	assert.True(t, in.UnicodeSet().IsEmpty())
	assert.True(t, in.GlyphSet().IsEmpty())
	assert.Equal(t, 7, in.NameIDSet().Len())
	assert.True(t, in.NameLangIDSet().Equal(intset.New(LangIDEnglishUS)))
	require.NoError(t, Configure(in, mapConf{"subset.unicodes": "U+10FFFF"}))
	assert.True(t, in.UnicodeSet().Has(MaxCodePoint))
}

func TestParseTagList(t *testing.T) {
	tags, err := ParseTagList("liga kern")
	require.NoError(t, err)
	assert.Equal(t, ot.Tags("liga", "kern"), tags)
	tags, err = ParseTagList("SVG , cvt,OS/2")
	require.NoError(t, err)
	assert.Equal(t, ot.Tags("SVG ", "cvt ", "OS/2"), tags)
	_, err = ParseTagList("abcde")
	assert.Error(t, err)
}

func TestSetByName(t *testing.T) {
	in := New()
	defer in.Destroy()
	for _, name := range SetNames() {
		s, ok := in.SetByName(name)
		assert.True(t, ok, name)
		assert.NotNil(t, s, name)
	}
	s, _ := in.SetByName(SetGlyphs)
	assert.Same(t, in.GlyphSet(), s)
	_, ok := in.SetByName("nothing")
	assert.False(t, ok)
	assert.True(t, IsTagSet(SetDropTables))
	assert.False(t, IsTagSet(SetUnicodes))
}
