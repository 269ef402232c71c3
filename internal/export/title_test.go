package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/penwyp/go-claude-export/internal/core/locale"
	"github.com/penwyp/go-claude-export/internal/core/model"
	"github.com/penwyp/go-claude-export/internal/util"
)

func titleBlocks(lines ...string) []MergedBlock {
	return []MergedBlock{{Role: model.RoleUser, Timestamp: "t", Lines: lines}}
}

func TestExtractTitleBasic(t *testing.T) {
	table := locale.Lookup("en")

	title := ExtractTitle(titleBlocks("Please fix the login bug"), table)

	assert.Equal(t, "Pleasefixtheloginbug", title)
}

func TestExtractTitleJoinsTwoLines(t *testing.T) {
	table := locale.Lookup("en")

	title := ExtractTitle(titleBlocks("first line here", "second line here", "third never used"), table)

	assert.Equal(t, "firstlinehere_secondlinehere", title)
}

func TestExtractTitleSkipsStructuralLines(t *testing.T) {
	table := locale.Lookup("en")

	title := ExtractTitle(titleBlocks(
		"🔧 Read",
		"Args: file_path: /a/b.md",
		"✅ Result:",
		"2025-01-01T00:00:00",
		`{"json": "payload"}`,
		"ok",
		"the actual question",
	), table)

	assert.Equal(t, "theactualquestion", title)
}

func TestExtractTitleFallback(t *testing.T) {
	table := locale.Lookup("en")

	tests := []struct {
		name   string
		blocks []MergedBlock
	}{
		{name: "no blocks", blocks: nil},
		{name: "empty block", blocks: titleBlocks()},
		{name: "only short lines", blocks: titleBlocks("ok", "no")},
		{name: "only symbols", blocks: titleBlocks("!!! ??? ...")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "untitled", ExtractTitle(tt.blocks, table))
		})
	}
}

func TestExtractTitleNoPathSeparators(t *testing.T) {
	table := locale.Lookup("en")

	title := ExtractTitle(titleBlocks("fix src/main.go and c:\\windows\\path"), table)

	assert.NotContains(t, title, "/")
	assert.NotContains(t, title, "\\")
	assert.NotEmpty(t, strings.TrimSpace(title))
}

func TestExtractTitleWidthCap(t *testing.T) {
	table := locale.Lookup("zh")

	wide := strings.Repeat("帮我修复这个登录问题", 10)
	title := ExtractTitle(titleBlocks(wide), table)

	assert.LessOrEqual(t, util.GetDisplayWidth(title), maxTitleWidth)
	assert.NotEmpty(t, title)
}

func TestExtractTitleDeterministic(t *testing.T) {
	table := locale.Lookup("en")
	blocks := titleBlocks("some stable input line")

	assert.Equal(t, ExtractTitle(blocks, table), ExtractTitle(blocks, table))
}

func TestExtractTitleKeepsCJK(t *testing.T) {
	table := locale.Lookup("zh")

	title := ExtractTitle(titleBlocks("帮我写一个测试"), table)

	assert.Equal(t, "帮我写一个测试", title)
}
