// Package cli provides the command-line interface for decomment.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/seanhalberthal/decomment/internal/config"
	"github.com/seanhalberthal/decomment/internal/scanner"
	"github.com/seanhalberthal/decomment/internal/types"
)

const errorFormat = "Error: %v\n"

// exitFunc is the function used to exit the program. Override in tests.
var exitFunc = os.Exit

// Run executes the CLI with the given scanner and arguments.
func Run(scan *scanner.Scanner, args []string) {
	if len(args) == 0 {
		printUsage()
		exitFunc(1)
		return
	}

	switch args[0] {
	case "status":
		runStatus(hasFlag(args[1:], "--json"))
	case "scan":
		if len(args) < 2 {
			_, _ = fmt.Fprintln(os.Stderr, "Error: scan requires a path argument")
			exitFunc(1)
			return
		}
		runScan(scan, args[1], parseScanFlags(args[2:]))
	case "strip":
		runStrip(scan)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		exitFunc(1)
		return
	}
}

func printUsage() {
	fmt.Println(`decomment - multi-syntax source comment stripper

Usage:
  decomment                         Run as MCP server (with -mcp)
  decomment <command>               Run in CLI mode

Commands:
  scan <path> [flags]               Strip comments from files under a directory
  strip                             Strip comments from stdin to stdout
  status [--json]                   Show version and recognised syntaxes

Scan flags:
  --dry-run, -n                     Report what would change without writing
  --backup, -b                      Write <file>.bak before overwriting
  --no-recursive                    Stay in the top-level directory
  --json                            Machine-readable output`)
}

type scanFlags struct {
	Recursive bool
	DryRun    bool
	Backup    bool
	JSON      bool
}

func parseScanFlags(args []string) scanFlags {
	opts := scanFlags{Recursive: true}
	for _, arg := range args {
		switch arg {
		case "--no-recursive":
			opts.Recursive = false
		case "--dry-run", "-n":
			opts.DryRun = true
		case "--backup", "-b":
			opts.Backup = true
		case "--json":
			opts.JSON = true
		}
	}
	return opts
}

func hasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}

func runScan(scan *scanner.Scanner, path string, opts scanFlags) {
	var sp *spinner.Spinner
	if !opts.JSON {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Writer = os.Stderr
		sp.Suffix = " scanning " + path
		sp.Start()
	}

	result, err := scan.Scan(scanner.ScanOptions{
		Path:      path,
		Recursive: opts.Recursive,
		DryRun:    opts.DryRun,
		Backup:    opts.Backup,
	})

	if sp != nil {
		sp.Stop()
	}

	if err != nil {
		if opts.JSON {
			_, _ = fmt.Fprintf(os.Stderr, errorFormat, err)
		} else {
			printStyledError("%v", err)
		}
		exitFunc(1)
		return
	}

	if opts.JSON {
		printJSON(result)
	} else {
		printScanReport(result)
	}

	if result.Summary.Errored > 0 {
		exitFunc(1)
	}
}

func runStrip(scan *scanner.Scanner) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, errorFormat, err)
		exitFunc(1)
		return
	}

	res := scan.StripText(string(data))
	if _, err := os.Stdout.WriteString(res.Text); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, errorFormat, err)
		exitFunc(1)
	}
}

func runStatus(jsonOut bool) {
	status := types.StatusResponse{
		Version:           types.Version,
		SupportedSyntaxes: types.SupportedSyntaxes,
		DefaultIgnoreDirs: config.DefaultIgnoreDirs,
	}
	if jsonOut {
		printJSON(status)
		return
	}

	fmt.Println(formatHeader("decomment " + status.Version))
	fmt.Println(formatLabel("Syntaxes"))
	for _, syntax := range status.SupportedSyntaxes {
		fmt.Println("  " + bullet + " " + formatValue(syntax))
	}
	fmt.Println(formatLabel("Ignored dirs"))
	for _, dir := range status.DefaultIgnoreDirs {
		fmt.Println("  " + bullet + " " + formatMuted(dir))
	}
}

func printScanReport(result *types.ScanResult) {
	verb := "modified"
	if result.DryRun {
		verb = "would modify"
	}

	for _, res := range result.Files {
		switch res.Outcome {
		case types.OutcomeModified:
			detail := fmt.Sprintf(" %s -%s", arrow, formatBytes(res.BytesRemoved))
			fmt.Println(formatOutcome(res.Outcome) + " " + verb + " " + formatPath(res.Path) + formatMuted(detail))
		case types.OutcomeSkipped:
			fmt.Println(formatOutcome(res.Outcome) + " skipped " + formatPath(res.Path) + formatMuted(" ("+res.Reason+")"))
		case types.OutcomeErrored:
			fmt.Println(formatOutcome(res.Outcome) + " " + formatPath(res.Path) + " " + formatError(res.Error))
		}
	}

	fmt.Println(formatSection("Summary"))
	fmt.Println(formatDivider(40))
	fmt.Printf("%s %s\n", formatLabel("Files"), formatCount(result.Summary.FilesWalked))
	fmt.Printf("%s %s\n", formatLabel("Unchanged"), formatCount(result.Summary.Scanned))
	fmt.Printf("%s %s\n", formatLabel("Modified"), formatCount(result.Summary.Modified))
	fmt.Printf("%s %s\n", formatLabel("Skipped"), formatCount(result.Summary.Skipped))
	fmt.Printf("%s %s\n", formatLabel("Errored"), formatCount(result.Summary.Errored))
	fmt.Printf("%s %s\n", formatLabel("Removed"), formatValue(formatBytes(result.Summary.BytesRemoved)))
	fmt.Printf("%s %s\n", formatLabel("Took"), formatMuted(fmt.Sprintf("%dms", result.DurationMS)))

	if result.DryRun && result.Summary.Modified > 0 {
		fmt.Println(formatMuted("dry run: no files were written"))
	}
	if result.Summary.Errored == 0 && result.Summary.Modified == 0 {
		fmt.Println(formatSuccess("nothing to strip"))
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Fatal(err)
	}
}
