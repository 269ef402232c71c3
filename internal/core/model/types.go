package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"
)

// ConversationLog is one line of a Claude session JSONL file.
type ConversationLog struct {
	Cwd           string  `json:"cwd,omitempty"`
	GitBranch     string  `json:"gitBranch,omitempty"`
	IsMeta        bool    `json:"isMeta,omitempty"`
	IsSidechain   bool    `json:"isSidechain,omitempty"`
	Message       Message `json:"message"`
	ParentUuid    *string `json:"parentUuid"`
	SessionId     string  `json:"sessionId"`
	Summary       string  `json:"summary,omitempty"`
	Timestamp     string  `json:"timestamp"`
	ToolUseResult any     `json:"toolUseResult,omitempty"`
	Type          string  `json:"type"`
	UserType      string  `json:"userType,omitempty"`
	Uuid          string  `json:"uuid"`
	Version       string  `json:"version,omitempty"`
}

type Message struct {
	Content FlexibleContent `json:"content"`
	Id      string          `json:"id,omitempty"`
	Model   string          `json:"model,omitempty"`
	Role    string          `json:"role"`
	Type    string          `json:"type,omitempty"`
}

// FlexibleContent accepts both the plain-string and the block-array
// form of the content field.
type FlexibleContent []ContentItem

func (fc *FlexibleContent) UnmarshalJSON(data []byte) error {
	// First try to parse as []ContentItem array
	var items []ContentItem
	if err := sonic.Unmarshal(data, &items); err == nil {
		*fc = items
		return nil
	}

	// If array parsing fails, try to parse as string
	var str string
	if err := sonic.Unmarshal(data, &str); err == nil {
		*fc = []ContentItem{{Type: "text", Text: str}}
		return nil
	}

	return fmt.Errorf("content must be either string or array of ContentItem")
}

type ContentItem struct {
	Content   any          `json:"content,omitempty"`
	Id        string       `json:"id,omitempty"`
	Input     OrderedInput `json:"input,omitempty"`
	IsError   bool         `json:"is_error,omitempty"`
	Name      string       `json:"name,omitempty"`
	Text      string       `json:"text,omitempty"`
	Thinking  string       `json:"thinking,omitempty"`
	ToolUseId string       `json:"tool_use_id,omitempty"`
	Type      string       `json:"type"`
}

// InputPair is one tool parameter.
type InputPair struct {
	Key   string
	Value any
}

// OrderedInput holds tool_use input parameters in the order they appear
// in the source record. Tool parameter lines must be reproducible, so a
// Go map (randomized iteration) cannot back this type.
type OrderedInput struct {
	Pairs []InputPair
}

func (oi *OrderedInput) UnmarshalJSON(data []byte) error {
	oi.Pairs = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	// Tool input is a mapping; anything else (null included) means no
	// parameters rather than a parse failure.
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		oi.Pairs = append(oi.Pairs, InputPair{Key: key, Value: value})
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func (oi OrderedInput) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, p := range oi.Pairs {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := sonic.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := sonic.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

// Empty reports whether the input carries no parameters.
func (oi OrderedInput) Empty() bool {
	return len(oi.Pairs) == 0
}
