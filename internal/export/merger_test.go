package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-claude-export/internal/core/model"
)

func entry(role model.Role, ts string, lines ...string) Rendered {
	return Rendered{Role: role, Timestamp: ts, Lines: lines}
}

func TestMergeConsecutiveSameRole(t *testing.T) {
	entries := []Rendered{
		entry(model.RoleUser, "2025-01-01T00:00:00", "first"),
		entry(model.RoleUser, "2025-01-01T00:00:10", "second"),
		entry(model.RoleUser, "2025-01-01T00:00:20", "third"),
	}

	blocks := Merge(entries)

	require.Len(t, blocks, 1, "three consecutive user entries merge into one block")
	assert.Equal(t, model.RoleUser, blocks[0].Role)
	assert.Equal(t, "2025-01-01T00:00:00", blocks[0].Timestamp, "header timestamp is the first entry's")
	assert.Equal(t, []string{"first", "", "second", "", "third"}, blocks[0].Lines)
}

func TestMergeRoleChangeClosesBlock(t *testing.T) {
	entries := []Rendered{
		entry(model.RoleUser, "t1", "question"),
		entry(model.RoleAssistant, "t2", "answer"),
		entry(model.RoleUser, "t3", "followup"),
	}

	blocks := Merge(entries)

	require.Len(t, blocks, 3)
	assert.Equal(t, model.RoleUser, blocks[0].Role)
	assert.Equal(t, model.RoleAssistant, blocks[1].Role)
	assert.Equal(t, model.RoleUser, blocks[2].Role)
}

func TestMergeEmptyEntryDoesNotForceBoundary(t *testing.T) {
	entries := []Rendered{
		entry(model.RoleUser, "t1", "before"),
		entry(model.RoleAssistant, "t2"), // no displayed content
		entry(model.RoleUser, "t3", "after"),
	}

	blocks := Merge(entries)

	require.Len(t, blocks, 1, "an empty entry must not split a same-role run")
	assert.Equal(t, []string{"before", "", "after"}, blocks[0].Lines)
}

func TestMergeDroppedEntriesIgnored(t *testing.T) {
	entries := []Rendered{
		entry(model.RoleDropped, "t0", "never shown"),
		entry(model.RoleUser, "t1", "hello"),
	}

	blocks := Merge(entries)

	require.Len(t, blocks, 1)
	assert.Equal(t, model.RoleUser, blocks[0].Role)
	assert.Equal(t, "t1", blocks[0].Timestamp)
}

func TestMergeNeverDropsLines(t *testing.T) {
	entries := []Rendered{
		entry(model.RoleUser, "t1", "a", "b"),
		entry(model.RoleUser, "t2", "c"),
		entry(model.RoleAssistant, "t3", "d", "e", "f"),
		entry(model.RoleToolResult, "t4", "g"),
	}

	sourceLines := 0
	for _, e := range entries {
		sourceLines += len(e.Lines)
	}

	merged := 0
	for _, b := range Merge(entries) {
		for _, line := range b.Lines {
			if line != "" {
				merged++
			}
		}
	}
	assert.Equal(t, sourceLines, merged, "merging never drops lines from non-empty entries")
}

// Splitting a session, merging both halves, then re-merging matching
// adjacent roles at the boundary must equal merging the whole session.
func TestMergeAssociativeAcrossSplit(t *testing.T) {
	entries := []Rendered{
		entry(model.RoleUser, "t1", "u1"),
		entry(model.RoleUser, "t2", "u2"),
		entry(model.RoleAssistant, "t3", "a1"),
		entry(model.RoleUser, "t4", "u3"),
		entry(model.RoleUser, "t5", "u4"),
	}
	whole := Merge(entries)

	for split := 0; split <= len(entries); split++ {
		left := Merge(entries[:split])
		right := Merge(entries[split:])

		combined := append(append([]MergedBlock(nil), left...), right...)
		// Re-merge the one known non-composable edge: adjacent
		// same-role blocks at the split boundary.
		if len(left) > 0 && len(right) > 0 && left[len(left)-1].Role == right[0].Role {
			i := len(left) - 1
			combined[i].Lines = append(append([]string(nil), combined[i].Lines...), "")
			combined[i].Lines = append(combined[i].Lines, combined[i+1].Lines...)
			combined = append(combined[:i+1], combined[i+2:]...)
		}

		assert.Equal(t, whole, combined, "split at %d", split)
	}
}
