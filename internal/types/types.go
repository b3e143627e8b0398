// Package types defines shared data structures for decomment.
package types

import "runtime/debug"

// Version is the application version. Set at build time via -ldflags.
// Falls back to module version from go install, or "dev" for local builds.
var Version = "dev"

func init() {
	// If version wasn't set via ldflags, try to get it from build info
	// This works when installed via: go install ...@version
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		}
	}
}

// SupportedSyntaxes lists the comment syntaxes the stripper recognises.
var SupportedSyntaxes = []string{
	"// line",
	"/* block */",
	"<!-- html -->",
	"-- lua line",
	"--[[ lua block ]]",
	"(* pascal *)",
	"# line-start",
	"; line-start",
}

// Outcome classifies what happened to a single file during a scan.
type Outcome string

const (
	// OutcomeScanned means the file was processed and needed no change.
	OutcomeScanned Outcome = "scanned"
	// OutcomeModified means comments were removed (or would be, in dry-run).
	OutcomeModified Outcome = "modified"
	// OutcomeSkipped means the file was not a candidate (binary, filtered).
	OutcomeSkipped Outcome = "skipped"
	// OutcomeErrored means reading or writing the file failed.
	OutcomeErrored Outcome = "errored"
)

// FileResult records the outcome for one file.
type FileResult struct {
	Path         string  `json:"path"`
	Outcome      Outcome `json:"outcome"`
	BytesRemoved int     `json:"bytes_removed,omitempty"`
	BackupPath   string  `json:"backup_path,omitempty"`
	Reason       string  `json:"reason,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// ScanSummary contains aggregated scan statistics.
type ScanSummary struct {
	FilesWalked  int `json:"files_walked"`
	Scanned      int `json:"scanned"`
	Modified     int `json:"modified"`
	Skipped      int `json:"skipped"`
	Errored      int `json:"errored"`
	BytesRemoved int `json:"bytes_removed"`
}

// ScanResult is the complete output of a scan.
type ScanResult struct {
	Summary    ScanSummary  `json:"summary"`
	DryRun     bool         `json:"dry_run"`
	Files      []FileResult `json:"files"`
	DurationMS int64        `json:"duration_ms"`
}

// StatusResponse is the output of the status command and MCP tool.
type StatusResponse struct {
	Version           string   `json:"version"`
	SupportedSyntaxes []string `json:"supported_syntaxes"`
	DefaultIgnoreDirs []string `json:"default_ignore_dirs"`
}

// StripResponse is the output of stripping a single text buffer.
type StripResponse struct {
	Text         string `json:"text"`
	Changed      bool   `json:"changed"`
	BytesRemoved int    `json:"bytes_removed"`
}
