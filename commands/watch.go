package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/penwyp/go-claude-export/internal/data/scanner"
	"github.com/penwyp/go-claude-export/internal/util"
)

var watchCmd = &cobra.Command{
	Use:   "watch [output-dir] [projects-dir]",
	Short: "Export once, then re-export sessions as their logs change",
	Long: `Runs a full export, then keeps watching the projects directory and
re-exports a session whenever its JSONL file is created or written.
Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runWatch,
}

// debounceWindow suppresses duplicate events for the same file; editors
// and the Claude CLI emit several writes per appended line.
const debounceWindow = time.Second

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	exporter, cfg, err := buildExporter(args)
	if err != nil {
		return err
	}

	// Initial full pass; a missing projects directory is fatal here too.
	if err := exporter.Run(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchPaths(watcher, cfg.ProjectsDir); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.ProjectsDir, err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("\nWatching %s for changes (Ctrl-C to stop)\n", cfg.ProjectsDir)

	lastExport := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleEvent(event, watcher, exporter, cfg.ProjectsDir, lastExport)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			util.LogError("File monitoring error: " + err.Error())

		case <-interrupt:
			fmt.Println("\nStopped watching.")
			return nil
		}
	}
}

// addWatchPaths registers the projects root and each project
// subdirectory with the watcher.
func addWatchPaths(watcher *fsnotify.Watcher, root string) error {
	if err := watcher.Add(root); err != nil {
		return err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			if err := watcher.Add(filepath.Join(root, entry.Name())); err != nil {
				util.LogWarn(fmt.Sprintf("Cannot watch %s: %v", entry.Name(), err))
			}
		}
	}
	return nil
}

func handleEvent(event fsnotify.Event, watcher *fsnotify.Watcher, exporter exportRunner, root string, lastExport map[string]time.Time) {
	// A new project directory appears: start watching it and export any
	// session files it already contains (directories can arrive
	// atomically with their logs in place).
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := watcher.Add(event.Name); err != nil {
				util.LogWarn(fmt.Sprintf("Cannot watch %s: %v", event.Name, err))
			}
			entries, err := os.ReadDir(event.Name)
			if err != nil {
				util.LogWarn(fmt.Sprintf("Cannot read %s: %v", event.Name, err))
				return
			}
			for _, entry := range entries {
				if !entry.IsDir() && filepath.Ext(entry.Name()) == ".jsonl" {
					exportSessionFile(filepath.Join(event.Name, entry.Name()), exporter, lastExport)
				}
			}
			return
		}
	}

	if filepath.Ext(event.Name) != ".jsonl" {
		return
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}
	if time.Since(lastExport[event.Name]) < debounceWindow {
		return
	}
	exportSessionFile(event.Name, exporter, lastExport)
}

func exportSessionFile(path string, exporter exportRunner, lastExport map[string]time.Time) {
	lastExport[path] = time.Now()

	project := filepath.Base(filepath.Dir(path))
	outPath, err := exporter.ExportChanged(scanner.SessionFile{Project: project, Path: path})
	if err != nil {
		util.LogWarn(fmt.Sprintf("Failed to re-export %s: %v", path, err))
		return
	}
	fmt.Printf("  ✓ Re-exported: %s\n", outPath)
}

// exportRunner is the part of the exporter the watch loop needs.
type exportRunner interface {
	ExportChanged(file scanner.SessionFile) (string, error)
}
