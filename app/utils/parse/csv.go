// Package parse holds the heuristic primitives behind the CSV import
// pipeline: a quote-aware field splitter, the code/name decomposition rule
// and the keyword tag vocabulary. Nothing here touches the store or the
// network.
package parse

import (
	"regexp"
	"strings"
)

// minPopulatedFields is the cutoff below which a row is skipped.
const minPopulatedFields = 3

// Row is a successfully tokenized line.
type Row struct {
	Number int
	Fields []string
}

// SkippedRow records a dropped line and why, so imports can report what was
// left out instead of dropping it silently.
type SkippedRow struct {
	Number int
	Line   string
	Reason string
}

// SplitFields tokenizes one comma-delimited line. A double quote toggles the
// in-quotes flag; commas inside quotes do not split; doubled quotes escape a
// literal quote. Fields are trimmed.
func SplitFields(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				b.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteByte(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))
	return fields
}

// Content splits raw file content into rows, tokenizes each one, and tags
// rows with fewer than three populated fields as skipped. Blank lines are
// ignored entirely. A malformed file never produces an error, only skips.
func Content(content string) ([]Row, []SkippedRow) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	var rows []Row
	var skipped []SkippedRow
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := SplitFields(line)
		populated := 0
		for _, f := range fields {
			if f != "" {
				populated++
			}
		}
		if populated < minPopulatedFields {
			skipped = append(skipped, SkippedRow{
				Number: i + 1,
				Line:   line,
				Reason: "fewer than 3 populated columns",
			})
			continue
		}
		rows = append(rows, Row{Number: i + 1, Fields: fields})
	}
	return rows, skipped
}

// codeNameRe matches "<CODE><sep><Name>" where CODE is uppercase
// letters/digits/hyphens and sep is one of "-", "_", ":" optionally
// surrounded by whitespace.
var codeNameRe = regexp.MustCompile(`^([A-Z0-9-]+)[ \t]*[-_:][ \t]*(.+)$`)

// DecomposeName splits an encoded ID prefix from a display name.
// "OL002 - Olla" yields ("OL002", "Olla"); a name without the pattern yields
// ("", name) unchanged.
func DecomposeName(raw string) (code, name string) {
	raw = strings.TrimSpace(raw)
	m := codeNameRe.FindStringSubmatch(raw)
	if m == nil {
		return "", raw
	}
	return m[1], strings.TrimSpace(m[2])
}

// tagVocabulary maps lowercased status keywords to the tag they imply.
var tagVocabulary = []struct {
	keyword string
	tag     string
}{
	{"descontinuado", "Descontinuado"},
	{"oferta", "Oferta"},
	{"nuevo", "Nuevo"},
	{"agotado", "Agotado"},
}

// InferTags matches the status cell against the fixed keyword vocabulary,
// case-insensitively and by substring. Unmatched text produces no tags.
func InferTags(status string) []string {
	lowered := strings.ToLower(status)
	var tags []string
	for _, entry := range tagVocabulary {
		if strings.Contains(lowered, entry.keyword) {
			tags = append(tags, entry.tag)
		}
	}
	return tags
}
