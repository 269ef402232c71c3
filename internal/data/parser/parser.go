package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-claude-export/internal/core/model"
	"github.com/penwyp/go-claude-export/internal/util"
)

// Parser reads line-delimited JSON session files. Parsed results are
// cached per path, so re-reading a file yields the same sequence.
type Parser struct {
	cache map[string][]model.ConversationLog
}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{
		cache: make(map[string][]model.ConversationLog),
	}
}

// ParseFile parses the session file at the specified path. Each line is
// parsed independently: a line that is not valid JSON is skipped and
// does not abort the rest of the conversation. Blank lines produce no
// entry.
func (p *Parser) ParseFile(filepath string) ([]model.ConversationLog, error) {
	if cached, ok := p.cache[filepath]; ok {
		return cached, nil
	}

	util.LogDebug(fmt.Sprintf("Start parsing file: %s", filepath))

	file, err := os.Open(filepath)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Failed to open file: %s - %v", filepath, err))
		return nil, err
	}
	defer file.Close()

	var logs []model.ConversationLog
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	lineCount := 0
	for scanner.Scan() {
		lineCount++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var log model.ConversationLog
		if err := sonic.Unmarshal([]byte(line), &log); err != nil {
			util.LogDebug(fmt.Sprintf("Skip invalid JSON line %s:%d - %v", filepath, lineCount, err))
			continue
		}
		logs = append(logs, log)
	}

	if err := scanner.Err(); err != nil {
		util.LogDebug(fmt.Sprintf("Error scanning file: %s - %v", filepath, err))
		return nil, err
	}

	p.cache[filepath] = logs
	return logs, nil
}

// Invalidate drops the cached result for a path, forcing the next
// ParseFile call to re-read the file. Used when a session log changed
// on disk.
func (p *Parser) Invalidate(filepath string) {
	delete(p.cache, filepath)
}
