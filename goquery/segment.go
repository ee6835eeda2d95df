package goquery

import (
	"strings"

	"github.com/mwierzba/wikiread"
	"golang.org/x/net/html"
)

// segState tracks where the segmenter is in the document.
type segState int

const (
	collectingIntro segState = iota
	inSection
)

// segmenter is the state machine that partitions a content root's direct
// children into an introduction and a sequence of titled sections. It is a
// plain value holding explicit state and buffers, driven by a linear scan,
// so transitions and finalize logic are testable on their own.
type segmenter struct {
	state    segState
	title    string
	level    int
	buf      strings.Builder
	sections []wikiread.Section
}

// feed advances the machine by one child node. A heading child finalizes
// the current buffer and opens a new section; any other child is formatted
// and appended unless it is boilerplate-by-class.
func (s *segmenter) feed(n *html.Node) {
	if h, ok := detectHeading(n); ok {
		s.flush()
		s.state = inSection
		s.title = h.Title
		s.level = h.Level
		return
	}
	if skippable(n) {
		return
	}
	s.buf.WriteString(formatNode(n))
	s.buf.WriteString("\n")
}

// finish finalizes whatever buffer remains and returns the sections in
// document order.
func (s *segmenter) finish() []wikiread.Section {
	s.flush()
	return s.sections
}

// flush emits the pending intro or section. The intro is emitted only when
// its trimmed content is non-empty; a titled section is emitted when its
// title or its trimmed content is non-empty.
func (s *segmenter) flush() {
	content := strings.TrimSpace(s.buf.String())
	s.buf.Reset()

	switch s.state {
	case collectingIntro:
		if content != "" {
			s.sections = append(s.sections, wikiread.Section{Content: content})
		}
	case inSection:
		if s.title != "" || content != "" {
			s.sections = append(s.sections, wikiread.Section{
				Title:   s.title,
				Level:   s.level,
				Content: content,
			})
		}
	}
}
