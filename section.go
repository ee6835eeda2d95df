package wikiread

import (
	"strings"
)

// Section is one titled block of an article body. Sections appear in
// document order. A section with an empty title and level 0 is either the
// introduction or a headingless fallback block; content may be empty only
// when the title is non-empty.
type Section struct {
	Title   string `json:"title"`
	Level   int    `json:"level"`
	Content string `json:"content"`
}

// IsIntro reports whether the section is an introduction or headingless
// fallback block.
func (s Section) IsIntro() bool {
	return s.Title == "" && s.Level == 0
}

// SectionParser extracts the ordered section list from raw parse HTML.
// Structural failures are reported in-band as a single sentinel section
// titled "Error"; the parser never fails the surrounding fetch.
type SectionParser interface {
	ParseSections(html string) []Section
}

// FormatSections renders sections as readable plain text for display or LLM
// context. Content strings are decoded first, so table markers come out as
// tab-separated rows rather than raw marker syntax.
func FormatSections(sections []Section) string {
	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if s.Title != "" {
			sb.WriteString(s.Title)
			sb.WriteString("\n\n")
		}
		for j, frag := range DecodeContent(s.Content) {
			if j > 0 {
				sb.WriteString("\n\n")
			}
			if frag.Table != nil {
				rows := make([]string, 0, len(frag.Table.Rows))
				for _, row := range frag.Table.Rows {
					rows = append(rows, strings.Join(row, "\t"))
				}
				sb.WriteString(strings.Join(rows, "\n"))
				continue
			}
			sb.WriteString(frag.Text)
		}
	}
	return sb.String()
}
