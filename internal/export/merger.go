package export

import (
	"github.com/penwyp/go-claude-export/internal/core/model"
)

// MergedBlock is one displayed unit: consecutive same-role entries
// combined under a single header. The timestamp is the first
// constituent entry's timestamp.
type MergedBlock struct {
	Role      model.Role
	Timestamp string
	Lines     []string
}

// Merge coalesces consecutive rendered entries with the same role.
// Entries are never reordered. An entry with no display lines is
// absorbed without contributing lines and never forces a block
// boundary on its own.
func Merge(entries []Rendered) []MergedBlock {
	var blocks []MergedBlock

	for _, entry := range entries {
		if entry.Role == model.RoleDropped || len(entry.Lines) == 0 {
			continue
		}

		if len(blocks) > 0 {
			cur := &blocks[len(blocks)-1]
			if cur.Role == entry.Role {
				cur.Lines = append(cur.Lines, "")
				cur.Lines = append(cur.Lines, entry.Lines...)
				continue
			}
		}

		blocks = append(blocks, MergedBlock{
			Role:      entry.Role,
			Timestamp: entry.Timestamp,
			Lines:     append([]string(nil), entry.Lines...),
		})
	}

	return blocks
}
