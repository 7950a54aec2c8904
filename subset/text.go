package subset

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/rangetable"
)

// AddText adds every code-point of text to the set of code-points to retain.
// Invalid UTF-8 bytes are skipped; an encoded U+FFFD is kept.
func (in *Input) AddText(text string) {
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		if r == utf8.RuneError && size == 1 {
			continue
		}
		in.unicodes.Add(uint32(r))
	}
}

// AddRangeTable adds all code-points of a Unicode range table, e.g.
// unicode.Greek, to the set of code-points to retain.
func (in *Input) AddRangeTable(rt *unicode.RangeTable) {
	if rt == nil {
		return
	}
	rangetable.Visit(rt, func(r rune) {
		in.unicodes.Add(uint32(r))
	})
}

// Windows language IDs (platform 3) for the languages we expect to meet in
// name tables most often.
var windowsLangIDs = map[string]uint16{
	"en-US": 0x0409, "en-GB": 0x0809, "en-AU": 0x0C09, "en-CA": 0x1009,
	"de-DE": 0x0407, "de-AT": 0x0C07, "de-CH": 0x0807,
	"fr-FR": 0x040C, "fr-CA": 0x0C0C, "it-IT": 0x0410,
	"es-ES": 0x0C0A, "es-MX": 0x080A, "pt-BR": 0x0416, "pt-PT": 0x0816,
	"nl-NL": 0x0413, "sv-SE": 0x041D, "da-DK": 0x0406, "nb-NO": 0x0414,
	"fi-FI": 0x040B, "pl-PL": 0x0415, "cs-CZ": 0x0405, "hu-HU": 0x040E,
	"ru-RU": 0x0419, "uk-UA": 0x0422, "el-GR": 0x0408, "tr-TR": 0x041F,
	"he-IL": 0x040D, "ar-SA": 0x0401, "hi-IN": 0x0439, "th-TH": 0x041E,
	"vi-VN": 0x042A, "ja-JP": 0x0411, "ko-KR": 0x0412,
	"zh-CN": 0x0804, "zh-TW": 0x0404, "zh-HK": 0x0C04,
}

// NameLanguageID maps a BCP 47 language tag to a Windows language ID as used
// in name records of platform 3. Missing regions are filled in with the most
// likely one, thus "de" maps to 0x0407 (de-DE).
func NameLanguageID(tag language.Tag) (uint16, bool) {
	base, _ := tag.Base()
	region, _ := tag.Region()
	id, ok := windowsLangIDs[base.String()+"-"+region.String()]
	return id, ok
}

// AddNameLanguage adds the Windows language ID for tag to the name languages
// to retain. It returns false if the language is not known.
func (in *Input) AddNameLanguage(tag language.Tag) bool {
	id, ok := NameLanguageID(tag)
	if !ok {
		tracer().Infof("no Windows language ID known for %s", tag)
		return false
	}
	in.nameLanguages.Add(uint32(id))
	return true
}
