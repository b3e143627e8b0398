package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seanhalberthal/decomment/internal/scanner"
	"github.com/seanhalberthal/decomment/internal/types"
)

// captureOutput captures stdout during function execution
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	err := w.Close()
	if err != nil {
		fmt.Printf("Error closing pipe: %v\n", err.Error()+"")
	}
	os.Stdout = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	if err != nil {
		fmt.Printf("Error copying pipe: %v\n", err.Error()+"")
	}
	return buf.String()
}

// captureStderr captures stderr during function execution
func captureStderr(f func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	f()

	err := w.Close()
	if err != nil {
		fmt.Printf("Error closing pipe: %v\n", err.Error()+"")
	}
	os.Stderr = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	if err != nil {
		fmt.Printf("Error copying pipe: %v\n", err.Error()+"")
	}
	return buf.String()
}

// stubExit replaces exitFunc for the test and records exit codes.
func stubExit(t *testing.T) *[]int {
	t.Helper()
	var codes []int
	exitFunc = func(code int) {
		codes = append(codes, code)
	}
	t.Cleanup(func() { exitFunc = os.Exit })
	return &codes
}

func TestParseScanFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want scanFlags
	}{
		{
			name: "no flags",
			args: []string{},
			want: scanFlags{Recursive: true},
		},
		{
			name: "dry run long",
			args: []string{"--dry-run"},
			want: scanFlags{Recursive: true, DryRun: true},
		},
		{
			name: "dry run short",
			args: []string{"-n"},
			want: scanFlags{Recursive: true, DryRun: true},
		},
		{
			name: "backup",
			args: []string{"-b"},
			want: scanFlags{Recursive: true, Backup: true},
		},
		{
			name: "no recursive",
			args: []string{"--no-recursive"},
			want: scanFlags{},
		},
		{
			name: "everything",
			args: []string{"--dry-run", "--backup", "--no-recursive", "--json"},
			want: scanFlags{DryRun: true, Backup: true, JSON: true},
		},
		{
			name: "unknown flags ignored",
			args: []string{"--wat"},
			want: scanFlags{Recursive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseScanFlags(tt.args); got != tt.want {
				t.Errorf("parseScanFlags(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	codes := stubExit(t)

	out := captureOutput(func() {
		Run(scanner.New(), nil)
	})

	if !strings.Contains(out, "Usage:") {
		t.Errorf("output missing usage, got %q", out)
	}
	if len(*codes) == 0 || (*codes)[0] != 1 {
		t.Errorf("exit codes = %v, want [1]", *codes)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	codes := stubExit(t)

	errOut := captureStderr(func() {
		_ = captureOutput(func() {
			Run(scanner.New(), []string{"frobnicate"})
		})
	})

	if !strings.Contains(errOut, "Unknown command: frobnicate") {
		t.Errorf("stderr = %q, want unknown command message", errOut)
	}
	if len(*codes) == 0 || (*codes)[0] != 1 {
		t.Errorf("exit codes = %v, want [1]", *codes)
	}
}

func TestRun_ScanRequiresPath(t *testing.T) {
	codes := stubExit(t)

	errOut := captureStderr(func() {
		Run(scanner.New(), []string{"scan"})
	})

	if !strings.Contains(errOut, "requires a path") {
		t.Errorf("stderr = %q, want path-required message", errOut)
	}
	if len(*codes) == 0 || (*codes)[0] != 1 {
		t.Errorf("exit codes = %v, want [1]", *codes)
	}
}

func TestRunStatus_JSON(t *testing.T) {
	out := captureOutput(func() {
		runStatus(true)
	})

	var status types.StatusResponse
	if err := json.Unmarshal([]byte(out), &status); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if status.Version == "" {
		t.Error("Version is empty")
	}
	if len(status.SupportedSyntaxes) == 0 {
		t.Error("SupportedSyntaxes is empty")
	}
	if len(status.DefaultIgnoreDirs) == 0 {
		t.Error("DefaultIgnoreDirs is empty")
	}
}

func TestRunScan_JSON(t *testing.T) {
	stubExit(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	if err := os.WriteFile(path, []byte("x = 1 // note\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out := captureOutput(func() {
		runScan(scanner.New(), dir, scanFlags{Recursive: true, JSON: true})
	})

	var result types.ScanResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if result.Summary.Modified != 1 {
		t.Errorf("Modified = %d, want 1", result.Summary.Modified)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "x = 1\n" {
		t.Errorf("file = %q, want stripped", got)
	}
}

func TestRunScan_JSON_DryRun(t *testing.T) {
	stubExit(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	original := "x = 1 // note\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	out := captureOutput(func() {
		runScan(scanner.New(), dir, scanFlags{Recursive: true, DryRun: true, JSON: true})
	})

	var result types.ScanResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if !result.DryRun {
		t.Error("DryRun = false, want true")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != original {
		t.Errorf("dry run rewrote file: %q", got)
	}
}

func TestRunScan_BadPath(t *testing.T) {
	codes := stubExit(t)

	_ = captureStderr(func() {
		runScan(scanner.New(), filepath.Join(t.TempDir(), "missing"), scanFlags{Recursive: true, JSON: true})
	})

	if len(*codes) == 0 || (*codes)[0] != 1 {
		t.Errorf("exit codes = %v, want [1]", *codes)
	}
}

func TestRunStrip(t *testing.T) {
	stubExit(t)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.WriteString("local x = 1 -- note\n"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	oldStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	out := captureOutput(func() {
		runStrip(scanner.New())
	})

	if out != "local x = 1\n" {
		t.Errorf("strip output = %q, want %q", out, "local x = 1\n")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: 0, want: "0 B"},
		{n: 512, want: "512 B"},
		{n: 2048, want: "2.0 KiB"},
		{n: 3 << 20, want: "3.0 MiB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
