package export

import (
	"github.com/penwyp/go-claude-export/internal/core/model"
)

// Classify maps a raw session record to its displayed role.
//
// Snapshot records and record types other than user/assistant are
// dropped. Records carrying tool output (a tool_result content block or
// a toolUseResult wrapper) are tagged as tool results regardless of the
// role field, because they render differently from plain turns.
func Classify(log model.ConversationLog) model.Role {
	if log.Type == "file-history-snapshot" {
		return model.RoleDropped
	}
	if log.Type != "user" && log.Type != "assistant" {
		return model.RoleDropped
	}

	if log.ToolUseResult != nil || hasToolResult(log.Message.Content) {
		return model.RoleToolResult
	}

	role := log.Message.Role
	if role == "" {
		role = log.Type
	}
	switch role {
	case "user":
		return model.RoleUser
	case "assistant":
		return model.RoleAssistant
	default:
		return model.RoleDropped
	}
}

func hasToolResult(content model.FlexibleContent) bool {
	for _, item := range content {
		if item.Type == "tool_result" {
			return true
		}
	}
	return false
}
