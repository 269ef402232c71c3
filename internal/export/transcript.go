package export

import (
	"regexp"
	"strings"

	"github.com/penwyp/go-claude-export/internal/core/locale"
	"github.com/penwyp/go-claude-export/internal/core/model"
)

// separatorWidth is the width of the divider line between blocks.
const separatorWidth = 80

var divider = strings.Repeat("─", separatorWidth)

// timestampPattern trims the zone suffix off an ISO-8601 timestamp,
// e.g. "2025-12-30T02:53:40.140Z" -> "2025-12-30T02:53:40.140".
var timestampPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T[\d:]+\.?\d*)(?:Z|[+-]\d{2}:\d{2})?`)

// FormatTimestamp returns the display form of a source timestamp.
// Timestamps that do not look like ISO-8601 pass through unchanged.
func FormatTimestamp(timestamp string) string {
	if timestamp == "" {
		return ""
	}
	if m := timestampPattern.FindStringSubmatch(timestamp); m != nil {
		return m[1]
	}
	return timestamp
}

// headerLabel returns the emoji-prefixed localized label for a block.
func headerLabel(role model.Role, table locale.Table) string {
	switch role {
	case model.RoleUser:
		return table.UserEmoji + " " + table.User
	case model.RoleAssistant:
		return table.AssistEmoji + " " + table.Assistant
	case model.RoleToolResult:
		return strings.TrimSuffix(table.Result, ":")
	default:
		return ""
	}
}

// RenderTranscript assembles the final transcript text: per block a
// divider, a "<emoji> <label> | <timestamp>" header, another divider,
// the block's lines, and a trailing blank line.
func RenderTranscript(blocks []MergedBlock, table locale.Table) string {
	var b strings.Builder
	for _, block := range blocks {
		b.WriteString("\n")
		b.WriteString(divider)
		b.WriteString("\n")
		b.WriteString(headerLabel(block.Role, table))
		b.WriteString(" | ")
		b.WriteString(FormatTimestamp(block.Timestamp))
		b.WriteString("\n")
		b.WriteString(divider)
		b.WriteString("\n")
		b.WriteString(strings.Join(block.Lines, "\n"))
		b.WriteString("\n\n")
	}
	return b.String()
}
