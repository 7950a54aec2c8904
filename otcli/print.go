package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/otsubset"
	"github.com/npillmayer/otsubset/intset"
	"github.com/npillmayer/otsubset/subset"
	"github.com/pterm/pterm"
)

func printSummary(in *subset.Input) {
	data := [][]string{
		{"Set", "Entries", "Content"},
	}
	for _, name := range subset.SetNames() {
		s, _ := in.SetByName(name)
		data = append(data, []string{name, fmt.Sprintf("%d", s.Len()), abbreviate(formatSet(name, s), 60)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	printFlags(in)
}

func printFlags(in *subset.Input) {
	data := [][]string{
		{"Flag", "Value"},
	}
	for _, f := range subset.AllFlags() {
		data = append(data, []string{f.String(), fmt.Sprintf("%v", in.GetFlag(f))})
	}
	data = append(data, []string{"retain-all-features", fmt.Sprintf("%v", in.GetRetainAllFeatures())})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printPreview(preview []otsubset.TableDisposition) {
	data := [][]string{
		{"Table", "Bytes", "Action", "Reason"},
	}
	for _, d := range preview {
		data = append(data, []string{
			fmt.Sprintf("%q", d.Tag.String()),
			fmt.Sprintf("%d", d.Length),
			d.Disposition.String(),
			d.Reason,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func formatSet(name string, s *intset.Set) string {
	if subset.IsTagSet(name) {
		return strings.Join(subset.TagStrings(s), " ")
	}
	if name == subset.SetNameLanguages {
		ids := make([]string, 0, s.Len())
		for v := range s.All() {
			ids = append(ids, fmt.Sprintf("0x%04X", v))
		}
		return strings.Join(ids, " ")
	}
	return s.String()
}

func formatRunes(runes []rune) string {
	s := make([]string, len(runes))
	for i, r := range runes {
		s[i] = fmt.Sprintf("U+%04X", r)
	}
	return abbreviate(strings.Join(s, " "), 60)
}

func abbreviate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
