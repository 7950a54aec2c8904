package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/otsubset/intset"
	"github.com/npillmayer/otsubset/subset"
	"github.com/pterm/pterm"
)

func (intp *Intp) namedSet(name string) (*intset.Set, error) {
	if name == "" {
		return nil, fmt.Errorf("missing set name, one of %v", subset.SetNames())
	}
	s, ok := intp.input.SetByName(strings.ToLower(name))
	if !ok {
		return nil, fmt.Errorf("unknown set %q, use one of %v", name, subset.SetNames())
	}
	return s, nil
}

// parseValues parses values for the set called name. Values for unicodes
// may be given as text in double quotes, e.g. `"Hello"`.
func parseValues(name, values string) ([]uint32, error) {
	if values == "" {
		return nil, errors.New("no values given")
	}
	if subset.IsTagSet(name) {
		tags, err := subset.ParseTagList(values)
		if err != nil {
			return nil, err
		}
		vs := make([]uint32, len(tags))
		for i, t := range tags {
			vs[i] = uint32(t)
		}
		return vs, nil
	}
	if name == subset.SetUnicodes && len(values) >= 2 &&
		strings.HasPrefix(values, `"`) && strings.HasSuffix(values, `"`) {
		var vs []uint32
		for _, r := range values[1 : len(values)-1] {
			vs = append(vs, uint32(r))
		}
		return vs, nil
	}
	s, err := subset.ParseNumberList(values, subset.SetLimit(name))
	if err != nil {
		return nil, err
	}
	return s.Values(), nil
}

func addOp(intp *Intp, op *Op) (error, bool) {
	s, err := intp.namedSet(op.arg)
	if err != nil {
		return err, false
	}
	vs, err := parseValues(strings.ToLower(op.arg), op.values)
	if err != nil {
		return err, false
	}
	s.AddSlice(vs)
	tracer().Infof("%s has %d entries", op.arg, s.Len())
	return nil, false
}

func removeOp(intp *Intp, op *Op) (error, bool) {
	s, err := intp.namedSet(op.arg)
	if err != nil {
		return err, false
	}
	vs, err := parseValues(strings.ToLower(op.arg), op.values)
	if err != nil {
		return err, false
	}
	for _, v := range vs {
		s.Remove(v)
	}
	tracer().Infof("%s has %d entries", op.arg, s.Len())
	return nil, false
}

func clearOp(intp *Intp, op *Op) (error, bool) {
	s, err := intp.namedSet(op.arg)
	if err != nil {
		return err, false
	}
	s.Clear()
	return nil, false
}

func flagOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		printFlags(intp.input)
		return nil, false
	}
	flag, ok := subset.ParseFlag(op.arg)
	if !ok {
		return fmt.Errorf("unknown flag %q", op.arg), false
	}
	switch strings.ToLower(op.values) {
	case "":
	case "on", "true", "1":
		intp.input.SetFlag(flag, true)
	case "off", "false", "0":
		intp.input.SetFlag(flag, false)
	default:
		return fmt.Errorf("flag value must be on or off: %q", op.values), false
	}
	pterm.Printf("%s = %v\n", flag, intp.input.GetFlag(flag))
	return nil, false
}

func featuresOp(intp *Intp, op *Op) (error, bool) {
	switch strings.ToLower(op.arg) {
	case "":
	case "all":
		intp.input.SetRetainAllFeatures(true)
	case "selected":
		intp.input.SetRetainAllFeatures(false)
	default:
		return fmt.Errorf("usage: features [all|selected]"), false
	}
	if intp.input.GetRetainAllFeatures() {
		pterm.Println("retaining all layout features")
	} else {
		pterm.Printf("retaining %d selected layout features\n", intp.input.LayoutFeaturesSet().Len())
	}
	return nil, false
}

func showOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		printSummary(intp.input)
		return nil, false
	}
	s, err := intp.namedSet(op.arg)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s = %s\n", op.arg, formatSet(strings.ToLower(op.arg), s))
	return nil, false
}

func previewOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	printPreview(intp.font.Preview(intp.input))
	return nil, false
}

// glyphsOp maps the retained code-points to glyphs of the font and, with
// argument "add", adds them to the glyph set.
func glyphsOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	glyphs, missing, err := intp.font.GlyphsFor(intp.input)
	if err != nil {
		return err, false
	}
	pterm.Printf("code-points map to glyphs %s\n", glyphs)
	if len(missing) > 0 {
		pterm.Warning.Printf("%d code-points not covered by font: %s\n", len(missing), formatRunes(missing))
	}
	if strings.ToLower(op.arg) == "add" {
		for g := range glyphs.All() {
			intp.input.GlyphSet().Add(g)
		}
	}
	return nil, false
}

func tagOp(intp *Intp, op *Op) (error, bool) {
	numGlyphs := 0
	if intp.font != nil {
		numGlyphs = intp.font.NumGlyphs()
	}
	pterm.Printf("subset tag = %s\n", intp.input.SubsetTag(numGlyphs))
	return nil, false
}
