package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// nowFn supplies the clock for the current-year catalog entry.
var nowFn = time.Now

// Rule is one literal substring replacement. Rules run in catalog order;
// matches are exact and case-sensitive against the already-lowered name.
type Rule struct {
	Pattern     string
	Replacement string
}

// defaultRules is the built-in noise catalog: stray separator characters
// first, then promotional phrases, the current-year parenthetical,
// ft./feat. normalization, label suffixes, and apostrophe normalization.
// Order is part of the contract.
func defaultRules() []Rule {
	return []Rule{
		{"｜", "_"},
		{"|", "_"},
		{"/", ""},
		{"\"", ""},
		{"＂", ""},
		{"  ", " "},
		{"⧸", "/"},
		{" (lyric video)", ""},
		{" (lyrics)", ""},
		{" (official animated video)", ""},
		{" (official lyric video)", ""},
		{" (official lyrics video)", ""},
		{" (official music video)", ""},
		{" (official video)", ""},
		{" [official video]", ""},
		{" – official video clip", ""},
		{" (official)", ""},
		{" (audio)", ""},
		{" // official music video", ""},
		{" // official lyric video", ""},
		{" // afm records", ""},
		{" (offizielles video)", ""},
		{" (official audio)", ""},
		{" (hq)", ""},
		{" (official visualizer)", ""},
		{" (music video)", ""},
		{" official video", ""},
		{fmt.Sprintf(" (%d)", nowFn().Year()), ""},
		{" ft. ", " feat. "},
		{" ft.", " feat."},
		{"(ft.", "(feat."},
		{"_ afm records", ""},
		{"_ official audio video", ""},
		{"_ official lyric video", ""},
		{"_ official music video", ""},
		{"_ napalm records", ""},
		{"'", "’"},
	}
}

// normalizeFilename lower-cases the file's base name, applies the rule
// catalog in order, strips the extension and surrounding whitespace, and
// title-cases the remainder. Chained rules (the pipe-to-underscore rewrite
// feeding a label-suffix removal) can leave a trailing space behind; the
// trim keeps that out of the tags.
func normalizeFilename(path string, rules []Rule) string {
	name := strings.ToLower(filepath.Base(path))
	for _, rule := range rules {
		name = strings.ReplaceAll(name, rule.Pattern, rule.Replacement)
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return titleCase(strings.TrimSpace(name))
}

// splitArtistTitle splits a normalized stem on the first " - " into artist
// and title, dropping a secondary leading "- " marker from the title. When
// no title can be derived (no separator, or nothing after it) the stem's
// one segment becomes the title and the sidecar uploader, surrounding
// quotes stripped and title-cased, stands in as the artist. Channels that
// publish under their own name upload exactly this shape.
func splitArtistTitle(stem, uploader string) (string, string) {
	artist, title, found := strings.Cut(stem, " - ")
	if found {
		title = strings.TrimPrefix(title, "- ")
		if strings.TrimSpace(title) != "" {
			return artist, title
		}
		title = artist
	} else {
		title = stem
	}
	artist = titleCase(strings.Trim(uploader, "\""))
	return artist, title
}
