package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-claude-export/internal/core/locale"
	"github.com/penwyp/go-claude-export/internal/core/model"
	"github.com/penwyp/go-claude-export/internal/util"
)

const (
	// maxResultLength caps tool result payloads, in bytes.
	maxResultLength = 5000
	// maxParamWidth caps a single tool parameter value, in display columns.
	maxParamWidth = 80

	truncationMarker = "... (truncated)"
)

// Rendered is the display form of one session entry.
type Rendered struct {
	Role      model.Role
	Timestamp string
	Lines     []string
}

// Renderer converts session records into display lines.
type Renderer struct {
	table    locale.Table
	stripper *Stripper
}

// NewRenderer creates a Renderer for the given locale table.
func NewRenderer(table locale.Table) *Renderer {
	return &Renderer{
		table:    table,
		stripper: NewDefaultStripper(),
	}
}

// Render classifies one record and produces its display lines. Dropped
// records come back with an empty line sequence.
func (r *Renderer) Render(log model.ConversationLog) Rendered {
	rendered := Rendered{
		Role:      Classify(log),
		Timestamp: log.Timestamp,
	}
	if rendered.Role == model.RoleDropped {
		return rendered
	}
	rendered.Lines = r.renderContent(log.Message.Content)
	return rendered
}

// renderContent renders content blocks in source order. Blocks of
// different kinds are separated by one blank line.
func (r *Renderer) renderContent(content model.FlexibleContent) []string {
	var lines []string
	prevKind := ""

	for _, item := range content {
		var block []string
		switch item.Type {
		case "thinking":
			continue
		case "text":
			if strings.TrimSpace(item.Text) == "" {
				continue
			}
			block = r.stripper.StripText(item.Text)
		case "tool_use":
			block = r.renderToolUse(item)
		case "tool_result":
			block = r.renderToolResult(item)
		default:
			continue
		}
		if len(block) == 0 {
			continue
		}

		if len(lines) > 0 && item.Type != prevKind {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
		prevKind = item.Type
	}

	return lines
}

// renderToolUse produces the tool header and its parameter line.
func (r *Renderer) renderToolUse(item model.ContentItem) []string {
	lines := []string{r.table.Tool + " " + item.Name}
	if !item.Input.Empty() {
		lines = append(lines, r.table.Param+" "+formatParams(item.Input))
	}
	return lines
}

// renderToolResult produces the result marker followed by the payload's
// stripped lines.
func (r *Renderer) renderToolResult(item model.ContentItem) []string {
	text := resultText(item.Content)
	if text == "" {
		return nil
	}
	if len(text) > maxResultLength {
		text = truncateBytes(text, maxResultLength) + "\n" + truncationMarker
	}

	lines := []string{r.table.Result, ""}
	return append(lines, r.stripper.StripText(text)...)
}

// resultText flattens a tool result payload into plain text. String
// payloads pass through; block arrays contribute their text parts;
// anything else is serialized to indented JSON.
func resultText(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		var parts []string
		for _, entry := range v {
			block, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if text, ok := block["text"].(string); ok && text != "" {
				parts = append(parts, text)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "\n")
		}
	}

	// ConfigStd sorts map keys, keeping structured payload output stable.
	data, err := sonic.ConfigStd.MarshalIndent(content, "", "  ")
	if err != nil {
		util.LogWarn(fmt.Sprintf("Failed to serialize tool result: %v", err))
		return fmt.Sprintf("%v", content)
	}
	return string(data)
}

// formatParams renders tool input parameters as "key: value" pairs in
// source declaration order, on a single line.
func formatParams(input model.OrderedInput) string {
	parts := make([]string, 0, len(input.Pairs))
	for _, pair := range input.Pairs {
		value := util.TruncateDisplay(formatValue(pair.Value), maxParamWidth, "...")
		parts = append(parts, pair.Key+": "+value)
	}
	return strings.Join(parts, ", ")
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		// Values are shown on one line; embedded newlines would break
		// the transcript layout.
		return strings.ReplaceAll(v, "\n", " ")
	case json.Number:
		return v.String()
	case bool:
		return fmt.Sprintf("%v", v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, entry := range v {
			parts = append(parts, formatValue(entry))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		// ConfigStd sorts map keys so nested objects render the same
		// on every run.
		data, err := sonic.ConfigStd.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

// truncateBytes cuts text at the byte limit without splitting a rune.
func truncateBytes(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit]
}
