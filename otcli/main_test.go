package main

import (
	"flag"
	"testing"

	"github.com/npillmayer/otsubset/intset"
	"github.com/npillmayer/otsubset/ot"
	"github.com/npillmayer/otsubset/subset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsubset.cli")
	defer teardown()
	//
	op, err := parseCommand("add unicodes U+41-U+43 0x61")
	require.NoError(t, err)
	assert.Equal(t, &Op{code: ADD, arg: "unicodes", values: "U+41-U+43 0x61"}, op)
	op, err = parseCommand("SHOW")
	require.NoError(t, err)
	assert.Equal(t, SHOW, op.code)
	op, err = parseCommand("frobnicate now")
	require.NoError(t, err)
	assert.Equal(t, HELP, op.code)
	_, err = parseCommand("   ")
	assert.ErrorIs(t, err, errEmptyCommand)
}

func TestSettingsFlag(t *testing.T) {
	settings := make(settingsFlag)
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(settings, "set", "")
	require.NoError(t, fs.Parse([]string{"-set", "retain-gids=true", "-set", "drop-tables=+GSUB"}))
	assert.Equal(t, "true", settings.GetString("subset.retain-gids"))
	assert.Equal(t, "+GSUB", settings.GetString("subset.drop-tables"))
	assert.Error(t, settings.Set("no-equals-sign"))
	//
	intp, err := newIntp(settings)
	require.NoError(t, err)
	defer intp.input.Destroy()
	assert.True(t, intp.input.GetFlag(subset.RetainGIDs))
	assert.True(t, intp.input.DropTablesSet().Has(uint32(ot.T("GSUB"))))
}

func TestSetCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsubset.cli")
	defer teardown()
	//
	intp, err := newIntp(settingsFlag{})
	require.NoError(t, err)
	defer intp.input.Destroy()
	run := func(line string) error {
		op, err := parseCommand(line)
		require.NoError(t, err)
		err, quit := intp.execute(op)
		assert.False(t, quit)
		return err
	}
	require.NoError(t, run(`add unicodes "Hi"`))
	assert.Equal(t, []uint32{'H', 'i'}, intp.input.UnicodeSet().Values())
	require.NoError(t, run("add glyphs 3-5"))
	require.NoError(t, run("remove glyphs 4"))
	assert.Equal(t, []uint32{3, 5}, intp.input.GlyphSet().Values())
	require.NoError(t, run("remove layout-features liga,kern"))
	assert.False(t, intp.input.LayoutFeaturesSet().Has(uint32(ot.T("liga"))))
	require.NoError(t, run("clear drop-tables"))
	assert.True(t, intp.input.DropTablesSet().IsEmpty())
	require.NoError(t, run("flag desubroutinize on"))
	assert.True(t, intp.input.GetFlag(subset.Desubroutinize))
	require.NoError(t, run("features all"))
	assert.True(t, intp.input.GetRetainAllFeatures())
	require.NoError(t, run("show glyphs"))
	require.NoError(t, run("tag"))
	//
	assert.Error(t, run("add bogus 1"))
	assert.Error(t, run("add glyphs"))
	assert.Error(t, run("flag no-such-flag on"))
	assert.Error(t, run("flag hinting maybe"))
	assert.ErrorIs(t, run("preview"), errNoFont)
	assert.Error(t, run("add glyphs 0-0xFFFFFFFF"), "glyph IDs are 16 bit")
	assert.Error(t, run("add unicodes U+110000"))
	assert.Error(t, run("remove name-ids 0-0x10000"))
	assert.Equal(t, []uint32{3, 5}, intp.input.GlyphSet().Values())
}

func TestStartSessionReleasesInputOnFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otsubset.cli")
	defer teardown()
	//
	var sets []*intset.Set
	alloc := func() (*intset.Set, error) {
		s := intset.New()
		sets = append(sets, s)
		return s, nil
	}
	args := cliArgs{
		tlevel:   "Info",
		fontname: "does/not/exist.ttf",
		text:     "abc",
		settings: settingsFlag{},
		opts:     []subset.Option{subset.WithSetAllocator(alloc)},
	}
	intp, code := startSession(args)
	assert.Nil(t, intp)
	assert.Equal(t, 4, code)
	require.Len(t, sets, 7)
	for i, s := range sets {
		assert.True(t, s.IsDestroyed(), "set #%d not released", i)
	}
	//
	args.tlevel = "Verbose"
	_, code = startSession(args)
	assert.Equal(t, 5, code)
	//
	args.tlevel, args.fontname = "Error", ""
	intp, code = startSession(args)
	require.Equal(t, 0, code)
	defer intp.input.Destroy()
	assert.Equal(t, 3, intp.input.UnicodeSet().Len())
}
