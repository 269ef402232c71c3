package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/penwyp/go-claude-export/internal/core/locale"
	"github.com/penwyp/go-claude-export/internal/data/parser"
	"github.com/penwyp/go-claude-export/internal/data/scanner"
	"github.com/penwyp/go-claude-export/internal/util"
)

// Config carries the read-only settings for one export run.
type Config struct {
	ProjectsDir string
	OutputDir   string
	Lang        string
}

// Failure records one session that could not be exported.
type Failure struct {
	Path string
	Err  error
}

// Exporter converts every session under a projects directory into a
// readable transcript file. Sessions are processed one at a time; a
// failing session is reported and does not abort the run.
type Exporter struct {
	config   *Config
	table    locale.Table
	scanner  *scanner.ProjectScanner
	parser   *parser.Parser
	renderer *Renderer

	exported int
	failures []Failure
}

// New creates an Exporter. An unsupported language code falls back to
// the default locale.
func New(config *Config) *Exporter {
	if !locale.Supported(config.Lang) && config.Lang != "" {
		util.LogWarn(fmt.Sprintf("Unsupported language %q, falling back to %s", config.Lang, locale.DefaultCode))
	}
	table := locale.Lookup(config.Lang)

	return &Exporter{
		config:   config,
		table:    table,
		scanner:  scanner.NewProjectScanner(config.ProjectsDir),
		parser:   parser.NewParser(),
		renderer: NewRenderer(table),
	}
}

// Run exports every discovered session. It returns an error only for
// unrecoverable setup failures such as a missing projects directory;
// per-session failures are collected and reported in the summary.
func (e *Exporter) Run() error {
	files, err := e.scanner.Scan()
	if err != nil {
		return err
	}

	currentProject := ""
	for _, file := range files {
		if file.Project != currentProject {
			currentProject = file.Project
			fmt.Printf("\nProcessing project: %s\n", scanner.DecodeProjectName(file.Project))
		}

		outPath, err := e.ExportSession(file)
		if err != nil {
			e.failures = append(e.failures, Failure{Path: file.Path, Err: err})
			util.LogWarn(fmt.Sprintf("Failed to export %s: %v", file.Path, err))
			continue
		}
		e.exported++
		fmt.Printf("  ✓ Exported: %s\n", outPath)
	}

	e.printSummary()
	return nil
}

// ExportSession converts one session file and returns the output path.
func (e *Exporter) ExportSession(file scanner.SessionFile) (string, error) {
	logs, err := e.parser.ParseFile(file.Path)
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}

	rendered := make([]Rendered, 0, len(logs))
	for _, log := range logs {
		rendered = append(rendered, e.renderer.Render(log))
	}
	blocks := Merge(rendered)

	text := RenderTranscript(blocks, e.table)
	title := ExtractTitle(blocks, e.table)

	outDir := filepath.Join(e.config.OutputDir, scanner.SanitizeProjectName(file.Project))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outPath := filepath.Join(outDir, title+"_"+disambiguator(file.Path)+".txt")
	if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	util.LogDebug(fmt.Sprintf("Exported %s -> %s (%d blocks)", file.Path, outPath, len(blocks)))
	return outPath, nil
}

// ExportChanged re-exports a session whose source file changed on disk.
func (e *Exporter) ExportChanged(file scanner.SessionFile) (string, error) {
	e.parser.Invalidate(file.Path)
	return e.ExportSession(file)
}

// disambiguator keeps output names unique per session: the leading
// part of the session file's base name (session IDs are UUIDs).
func disambiguator(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if len(base) > 8 {
		return base[:8]
	}
	return base
}

// printSummary reports the run outcome to the operator. Colors are
// only used when stdout is a terminal.
func (e *Exporter) printSummary() {
	colored := term.IsTerminal(int(os.Stdout.Fd()))
	paint := func(s string, format func(string) string) string {
		if colored {
			return format(s)
		}
		return s
	}

	fmt.Println()
	if len(e.failures) == 0 {
		fmt.Println(paint(fmt.Sprintf("✓ Export completed! %d sessions exported", e.exported), util.FormatSuccess))
		return
	}

	fmt.Println(paint(fmt.Sprintf("Export finished with errors: %d exported, %d failed", e.exported, len(e.failures)), util.FormatFailure))
	for _, failure := range e.failures {
		fmt.Printf("  ✗ %s: %v\n", failure.Path, failure.Err)
	}
}
