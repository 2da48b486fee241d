package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// smallWords stay lowercase in titles unless they open or close the
// string (NYT style, the convention of the original title-casing filter).
var smallWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "but": {}, "by": {},
	"en": {}, "for": {}, "if": {}, "in": {}, "of": {}, "on": {}, "or": {},
	"the": {}, "to": {}, "v": {}, "v.": {}, "via": {}, "vs": {}, "vs.": {},
}

// titleCase capitalizes words per English title-case conventions. Words
// that already carry an uppercase letter are kept as-is (acronyms, channel
// names); small words stay lower except in first or last position.
// Apostrophes do not split a word ("don’t" becomes "Don’t") and each
// hyphenated part capitalizes ("twenty-one" becomes "Twenty-One").
func titleCase(s string) string {
	caser := cases.Title(language.English)
	words := strings.Split(s, " ")
	last := len(words) - 1
	for i, word := range words {
		if word == "" {
			continue
		}
		if strings.IndexFunc(word, unicode.IsUpper) >= 0 {
			continue
		}
		if i != 0 && i != last {
			if _, small := smallWords[word]; small {
				continue
			}
		}
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}
