package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-claude-export/internal/config"
	"github.com/penwyp/go-claude-export/internal/core/locale"
	"github.com/penwyp/go-claude-export/internal/export"
	"github.com/penwyp/go-claude-export/internal/util"
)

var (
	// Logging related
	debug bool

	// Interface language
	lang string

	rootCmd = &cobra.Command{
		Use:   "go-claude-export [output-dir] [projects-dir]",
		Short: "Export Claude Code session history to readable text files",
		Long: `go-claude-export converts the JSONL session logs under the Claude
projects directory into localized, human-readable text transcripts,
one output file per session.

Supported languages:
  zh (中文), en (English), es (Español), fr (Français),
  de (Deutsch), ja (日本語), ko (한국어), ru (Русский),
  pt (Português), it (Italiano)

Examples:
  go-claude-export                              # Default settings (zh, ./output)
  go-claude-export --lang en                    # English labels
  go-claude-export /path/to/output              # Custom output directory
  go-claude-export --lang ja out ~/.claude/projects`,
		Args: cobra.MaximumNArgs(2),
		RunE: runExport,
	}
)

const defaultLogFile = "~/.go-claude-export/logs/app.log"

func init() {
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "",
		"Interface language ("+strings.Join(locale.Codes(), ", ")+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runExport(cmd *cobra.Command, args []string) error {
	exporter, _, err := buildExporter(args)
	if err != nil {
		return err
	}
	return exporter.Run()
}

// buildExporter resolves configuration (defaults < config file < CLI)
// and initializes logging, shared by the export and watch commands.
func buildExporter(args []string) (*export.Exporter, *export.Config, error) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	if len(args) > 0 {
		cfg.OutputDir = args[0]
	}
	if len(args) > 1 {
		cfg.ProjectsDir = args[1]
	}
	if lang != "" {
		cfg.Lang = lang
	}

	exportCfg := &export.Config{
		ProjectsDir: expandPath(cfg.ProjectsDir),
		OutputDir:   expandPath(cfg.OutputDir),
		Lang:        cfg.Lang,
	}
	return export.New(exportCfg), exportCfg, nil
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
