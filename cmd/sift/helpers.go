package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/sift/internal/cli"
	"github.com/Veraticus/sift/internal/common"
	"github.com/Veraticus/sift/internal/config"
	"github.com/Veraticus/sift/internal/extract"
	"github.com/Veraticus/sift/internal/organizer"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// stdinName is the file argument that reads from standard input.
const stdinName = "-"

// currentConfig returns the loaded configuration, or the defaults when no command loaded one.
func currentConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	cfg := config.DefaultConfig()
	return &cfg
}

func newExtractor(cfg *config.Config) *extract.Extractor {
	return extract.New(extract.Config{MaxPDFPages: cfg.Extract.MaxPDFPages})
}

// newOrganizer builds an organizer from the application configuration.
func newOrganizer(cfg *config.Config) (*organizer.Organizer, error) {
	return organizer.New(newExtractor(cfg), organizer.Config{
		TopN:      cfg.Categorize.TopN,
		MinScore:  cfg.Categorize.MinScore,
		Workers:   cfg.Extract.Workers,
		CacheSize: cfg.Cache.Size,
	})
}

// collectFiles expands paths into the regular files beneath them, skipping hidden entries
// found while walking directories. Paths named explicitly are always kept.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, root := range config.ExpandPaths(paths) {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", root, err)
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != root && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	if len(files) == 0 {
		return nil, common.NewUserError("No files found to organize", common.ErrNoFiles)
	}
	return files, nil
}

// readUploads loads every file into an upload named by its base name.
func readUploads(files []string) ([]organizer.Upload, error) {
	uploads := make([]organizer.Upload, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		uploads = append(uploads, organizer.Upload{
			Name: filepath.Base(path),
			Type: extract.DetectType(path),
			Data: data,
		})
	}
	return uploads, nil
}

// ingest reads paths into org, drawing a progress bar on progressOut when it is non-nil.
func ingest(ctx context.Context, org *organizer.Organizer, paths []string, progressOut io.Writer) (organizer.Report, error) {
	files, err := collectFiles(paths)
	if err != nil {
		return organizer.Report{}, err
	}

	uploads, err := readUploads(files)
	if err != nil {
		return organizer.Report{}, err
	}

	var progress organizer.ProgressFunc
	if progressOut != nil {
		progress = cli.NewProgress(progressOut, len(uploads), "Organizing").Update
	}

	return org.AddFiles(ctx, uploads, progress)
}

// readInput returns the name and bytes of a file argument, reading stdin for "-".
func readInput(in io.Reader, arg string) (string, []byte, error) {
	if arg == stdinName {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return "stdin.txt", data, nil
	}

	path := config.ExpandPath(arg)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return filepath.Base(path), data, nil
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return common.NewUserError(
			fmt.Sprintf("Unknown output format %q (use text, json or yaml)", format),
			fmt.Errorf("%w: output format %q", common.ErrInvalidConfig, format),
		)
	}
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return validateOutput(format)
	}
}
