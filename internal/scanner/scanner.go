// Package scanner orchestrates comment stripping across a directory tree.
package scanner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seanhalberthal/decomment/internal/config"
	"github.com/seanhalberthal/decomment/internal/detect"
	"github.com/seanhalberthal/decomment/internal/strip"
	"github.com/seanhalberthal/decomment/internal/types"
)

// errNotDirectory indicates the scan path is not a directory.
var errNotDirectory = errors.New("path is not a directory")

// Scanner runs the strip pipeline over files.
type Scanner struct{}

// New creates a new scanner.
func New() *Scanner {
	return &Scanner{}
}

// ScanOptions configures the scan behaviour.
type ScanOptions struct {
	Path      string
	Recursive bool
	DryRun    bool
	// Backup forces .bak copies before overwrite regardless of config.
	Backup bool
	// Workers bounds concurrent file processing; 0 means NumCPU.
	Workers int
}

// Scan strips comments from every candidate file under opts.Path and
// reports per-file outcomes. A failure on one file never aborts the run.
func (s *Scanner) Scan(opts ScanOptions) (*types.ScanResult, error) {
	start := time.Now()

	cfg, err := config.Load(opts.Path)
	if err != nil {
		return nil, err
	}
	if opts.Backup {
		cfg.Backup = true
	}

	paths, err := findFiles(opts.Path, opts.Recursive, cfg)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu      sync.Mutex
		results []types.FileResult
	)

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for _, path := range paths {
		g.Go(func() error {
			res := processFile(path, cfg, opts.DryRun)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // Workers report failures as per-file outcomes

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	result := &types.ScanResult{
		DryRun:     opts.DryRun,
		Files:      results,
		DurationMS: time.Since(start).Milliseconds(),
	}
	result.Summary = summarise(results)

	return result, nil
}

// StripText strips one in-memory text buffer. Used by the CLI stdin
// mode and the MCP strip tool.
func (s *Scanner) StripText(text string) types.StripResponse {
	stripped := strip.String(text)
	return types.StripResponse{
		Text:         stripped,
		Changed:      stripped != text,
		BytesRemoved: len(text) - len(stripped),
	}
}

// findFiles walks dir collecting candidate file paths.
func findFiles(dir string, recursive bool, cfg *config.Config) ([]string, error) {
	// Validate the directory exists first
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errNotDirectory
	}

	var paths []string

	walkFn := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip inaccessible paths within the directory
		}

		if info.IsDir() {
			if path == dir {
				return nil
			}
			if !recursive || cfg.SkipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() || !cfg.WantsFile(info.Name()) {
			return nil
		}
		if rel, err := filepath.Rel(dir, path); err == nil && cfg.Excluded(rel) {
			return nil
		}

		paths = append(paths, path)
		return nil
	}

	if err := filepath.Walk(dir, walkFn); err != nil {
		return nil, err
	}
	return paths, nil
}

// processFile runs the probe/strip/compare/write pipeline for one file.
func processFile(path string, cfg *config.Config, dryRun bool) types.FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return errored(path, err)
	}

	if !detect.IsText(data) {
		return types.FileResult{Path: path, Outcome: types.OutcomeSkipped, Reason: "binary"}
	}

	stripped := strip.Strip(data)
	if bytes.Equal(data, stripped) {
		return types.FileResult{Path: path, Outcome: types.OutcomeScanned}
	}

	res := types.FileResult{
		Path:         path,
		Outcome:      types.OutcomeModified,
		BytesRemoved: len(data) - len(stripped),
	}
	if dryRun {
		return res
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if cfg.Backup {
		backupPath := path + ".bak"
		if err := os.WriteFile(backupPath, data, mode); err != nil {
			return errored(path, fmt.Errorf("creating backup: %w", err))
		}
		res.BackupPath = backupPath
	}

	if err := os.WriteFile(path, stripped, mode); err != nil {
		return errored(path, err)
	}
	return res
}

func errored(path string, err error) types.FileResult {
	return types.FileResult{Path: path, Outcome: types.OutcomeErrored, Error: err.Error()}
}

// summarise aggregates per-file outcomes.
func summarise(results []types.FileResult) types.ScanSummary {
	summary := types.ScanSummary{FilesWalked: len(results)}
	for _, res := range results {
		switch res.Outcome {
		case types.OutcomeScanned:
			summary.Scanned++
		case types.OutcomeModified:
			summary.Modified++
			summary.BytesRemoved += res.BytesRemoved
		case types.OutcomeSkipped:
			summary.Skipped++
		case types.OutcomeErrored:
			summary.Errored++
		}
	}
	return summary
}
