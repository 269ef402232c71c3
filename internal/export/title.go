package export

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/penwyp/go-claude-export/internal/core/locale"
	"github.com/penwyp/go-claude-export/internal/util"
)

const (
	// maxTitleWidth caps the title in display columns, so roughly
	// twenty wide characters or forty narrow ones.
	maxTitleWidth = 40
	maxTitleLines = 2
	// titleBlockLimit bounds how many leading blocks are inspected.
	titleBlockLimit = 3

	titleFallback = "untitled"
)

var (
	markerLinePattern = regexp.MustCompile(`^[👤🤖🔧✅]`)
	timestampLineRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T[\d:]+`)
	leadingMarksRe    = regexp.MustCompile(`^[#*\s-]+`)
	// unsafeRunes matches everything that may not appear in a filename
	// fragment: anything but letters, digits, underscore and hyphen.
	unsafeRunes = regexp.MustCompile(`[^\p{L}\p{N}_-]`)
)

// ExtractTitle derives a short filesystem-safe title from the first
// rendered blocks of a session. The result is deterministic, never
// empty and never contains path separators.
func ExtractTitle(blocks []MergedBlock, table locale.Table) string {
	var meaningful []string

	if len(blocks) > titleBlockLimit {
		blocks = blocks[:titleBlockLimit]
	}
collect:
	for _, block := range blocks {
		for _, line := range block.Lines {
			if !isMeaningfulLine(line, table) {
				continue
			}
			clean := leadingMarksRe.ReplaceAllString(strings.TrimSpace(line), "")
			if clean == "" {
				continue
			}
			meaningful = append(meaningful, clean)
			if len(meaningful) >= maxTitleLines {
				break collect
			}
		}
	}

	title := unsafeRunes.ReplaceAllString(strings.Join(meaningful, "_"), "")
	title = util.TruncateDisplay(title, maxTitleWidth, "")
	title = strings.Trim(title, "_-")
	if title == "" {
		return titleFallback
	}
	return title
}

// isMeaningfulLine filters out structural transcript lines: tool and
// result markers, timestamps, parameter lines and raw JSON payloads.
func isMeaningfulLine(line string, table locale.Table) bool {
	trimmed := strings.TrimSpace(line)
	if utf8.RuneCountInString(trimmed) <= 3 {
		return false
	}
	if markerLinePattern.MatchString(trimmed) {
		return false
	}
	if timestampLineRe.MatchString(trimmed) {
		return false
	}
	if strings.HasPrefix(trimmed, table.Param) || strings.HasPrefix(trimmed, table.Result) {
		return false
	}
	if strings.HasPrefix(trimmed, "{") {
		return false
	}
	return true
}
