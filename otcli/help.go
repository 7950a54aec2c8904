package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "set", "sets", "add", "remove", "clear", "show":
		pterm.Info.Println("Sets")
		pterm.Println(`
	A subset input holds seven sets:
	+------------------+-----------------------------------------+
	| unicodes         | code-points, e.g. U+41-U+5A or "Hello"  |
	| glyphs           | glyph IDs, e.g. 0-10,42                 |
	| name-ids         | name table record IDs                   |
	| name-languages   | name table language IDs, e.g. 0x0407    |
	| layout-features  | feature tags, e.g. liga,kern            |
	| drop-tables      | tags of tables to omit                  |
	| no-subset-tables | tags of tables to copy unchanged        |
	+------------------+-----------------------------------------+
	add <set> <values>      add values to a set
	remove <set> <values>   remove values from a set
	clear <set>             remove all values
	show [set]              print a set, or a summary of all sets
	`)
	case "flag", "flags", "features":
		pterm.Info.Println("Flags")
		pterm.Println(`
	flag                    print all flags
	flag <name> [on|off]    print or set a flag
	features [all|selected] retain all layout features or the selected ones only

	Flag names: hinting, retain-gids, desubroutinize, name-legacy,
	set-overlaps-flag, passthrough-unrecognized, notdef-outline,
	no-prune-unicode-ranges
	`)
	case "font", "preview", "glyphs", "tag":
		pterm.Info.Println("Font")
		pterm.Println(`
	preview                 show what happens to each table of the font
	glyphs [add]            map code-points to glyphs (and add them to the glyph set)
	tag                     print the PDF subset tag for the glyph set
	`)
	default:
		pterm.Info.Println("Commands: add remove clear show flag features preview glyphs tag quit")
		pterm.Println("Use 'help <topic>' with topic sets, flags or font.")
	}
}
