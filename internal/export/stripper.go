package export

import (
	"regexp"
	"strings"
)

// DefaultArrow is the glyph editors insert between a line number and
// the code itself in tool output (e.g. "  1→func main() {").
const DefaultArrow = "→"

// Stripper removes editor line-number artifacts from code fragments.
// The arrow glyph is a parameter because the exact marker depends on
// the tool that produced the output.
type Stripper struct {
	prefix *regexp.Regexp
	lone   *regexp.Regexp
}

// NewStripper builds a Stripper for the given arrow glyph.
func NewStripper(arrow string) *Stripper {
	quoted := regexp.QuoteMeta(arrow)
	return &Stripper{
		// Line start: spaces, digit run, spaces, arrow (e.g. "1→", "100  →").
		prefix: regexp.MustCompile(`^\s*\d+\s*` + quoted),
		// A lone arrow at line start.
		lone: regexp.MustCompile(`^` + quoted + `\s*`),
	}
}

// NewDefaultStripper builds a Stripper for DefaultArrow.
func NewDefaultStripper() *Stripper {
	return NewStripper(DefaultArrow)
}

// StripLine removes one line-number prefix from the start of line,
// then one lone arrow left at the new start. The remainder, including
// its own indentation, is kept verbatim.
func (s *Stripper) StripLine(line string) string {
	if loc := s.prefix.FindStringIndex(line); loc != nil {
		line = line[loc[1]:]
	}
	if loc := s.lone.FindStringIndex(line); loc != nil {
		line = line[loc[1]:]
	}
	return line
}

// StripText splits text into lines and strips each one.
func (s *Stripper) StripText(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = s.StripLine(line)
	}
	return lines
}
