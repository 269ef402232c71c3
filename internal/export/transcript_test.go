package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-claude-export/internal/core/locale"
	"github.com/penwyp/go-claude-export/internal/core/model"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "utc zone trimmed", in: "2025-12-30T02:53:40.140Z", want: "2025-12-30T02:53:40.140"},
		{name: "offset zone trimmed", in: "2025-01-01T00:00:00+08:00", want: "2025-01-01T00:00:00"},
		{name: "no zone", in: "2025-01-01T00:00:00", want: "2025-01-01T00:00:00"},
		{name: "empty", in: "", want: ""},
		{name: "not a timestamp", in: "whenever", want: "whenever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.in))
		})
	}
}

func TestRenderTranscriptLayout(t *testing.T) {
	table := locale.Lookup("en")
	blocks := []MergedBlock{
		{Role: model.RoleUser, Timestamp: "2025-01-01T00:00:00Z", Lines: []string{"hello"}},
		{Role: model.RoleAssistant, Timestamp: "2025-01-01T00:00:05Z", Lines: []string{"hi", "", "there"}},
	}

	text := RenderTranscript(blocks, table)
	lines := strings.Split(text, "\n")

	// Block 1: blank, divider, header, divider, content
	require.Greater(t, len(lines), 5)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, divider, lines[1])
	assert.Equal(t, "👤 User | 2025-01-01T00:00:00", lines[2])
	assert.Equal(t, divider, lines[3])
	assert.Equal(t, "hello", lines[4])

	assert.Contains(t, text, "🤖 Assistant | 2025-01-01T00:00:05")
	// One blank line closes each block
	assert.True(t, strings.HasSuffix(text, "there\n\n"))
}

func TestRenderTranscriptDividerWidth(t *testing.T) {
	assert.Equal(t, separatorWidth, len([]rune(divider)))
}

func TestRenderTranscriptToolResultHeader(t *testing.T) {
	table := locale.Lookup("en")
	blocks := []MergedBlock{
		{Role: model.RoleToolResult, Timestamp: "2025-01-01T00:00:00Z", Lines: []string{"output"}},
	}

	text := RenderTranscript(blocks, table)

	assert.Contains(t, text, "✅ Result | 2025-01-01T00:00:00")
}

func TestRenderTranscriptEmpty(t *testing.T) {
	assert.Equal(t, "", RenderTranscript(nil, locale.Lookup("en")))
}

func TestRenderTranscriptLocalizedHeaders(t *testing.T) {
	blocks := []MergedBlock{
		{Role: model.RoleUser, Timestamp: "t", Lines: []string{"你好"}},
	}

	text := RenderTranscript(blocks, locale.Lookup("zh"))
	assert.Contains(t, text, "👤 用户 | t")

	text = RenderTranscript(blocks, locale.Lookup("ja"))
	assert.Contains(t, text, "👤 ユーザー | t")
}
