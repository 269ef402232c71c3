package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/penwyp/go-claude-export/internal/util"
)

// SessionFile is one discovered session log together with the project
// it belongs to.
type SessionFile struct {
	Project string
	Path    string
}

// ProjectScanner enumerates session files under a Claude projects
// directory: one subdirectory per project, each holding JSONL files.
type ProjectScanner struct {
	baseDir string
}

// NewProjectScanner creates a new ProjectScanner instance.
func NewProjectScanner(baseDir string) *ProjectScanner {
	return &ProjectScanner{baseDir: baseDir}
}

// Scan returns every (project, session file) pair under the base
// directory, projects and files both in name order. A missing or
// unreadable base directory is a fatal error; unreadable project
// subdirectories are skipped with a warning.
func (s *ProjectScanner) Scan() ([]SessionFile, error) {
	start := time.Now()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects directory %s: %w", s.baseDir, err)
	}

	var files []SessionFile
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		projectDir := filepath.Join(s.baseDir, entry.Name())
		sessions, err := os.ReadDir(projectDir)
		if err != nil {
			util.LogWarn(fmt.Sprintf("Skip unreadable project directory: %s - %v", projectDir, err))
			continue
		}

		for _, session := range sessions {
			if session.IsDir() {
				continue
			}
			if strings.HasSuffix(strings.ToLower(session.Name()), ".jsonl") {
				files = append(files, SessionFile{
					Project: entry.Name(),
					Path:    filepath.Join(projectDir, session.Name()),
				})
			}
		}
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Project != files[j].Project {
			return files[i].Project < files[j].Project
		}
		return files[i].Path < files[j].Path
	})

	util.LogDebug(fmt.Sprintf("Project scan completed: duration %v, found %d JSONL files",
		time.Since(start), len(files)))

	return files, nil
}

// DecodeProjectName converts an encoded project directory name such as
// "-home-user-work" to the readable path "home/user/work".
func DecodeProjectName(encoded string) string {
	decoded := strings.TrimLeft(encoded, "-")
	return strings.ReplaceAll(decoded, "-", "/")
}

// SanitizeProjectName derives the output subdirectory name for a
// project: path separators become hyphens, with no leading or trailing
// separator left over.
func SanitizeProjectName(encoded string) string {
	safe := strings.ReplaceAll(DecodeProjectName(encoded), "/", "-")
	return strings.Trim(safe, "-")
}
