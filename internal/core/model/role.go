package model

// Role is the displayed role of a session entry. It is a closed set so
// that every rendering path handles each case explicitly.
type Role int

const (
	// RoleDropped marks records that never reach the transcript
	// (snapshots, internal metadata, unknown record shapes).
	RoleDropped Role = iota
	RoleUser
	RoleAssistant
	RoleToolResult
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAssistant:
		return "assistant"
	case RoleToolResult:
		return "tool-result"
	default:
		return "dropped"
	}
}
