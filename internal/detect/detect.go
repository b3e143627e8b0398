// Package detect classifies file contents as text or binary.
package detect

const (
	// probeSize bounds how much of a file is inspected.
	probeSize = 8000
	// maxControlRatio is the control-byte share above which content is
	// treated as binary.
	maxControlRatio = 0.15
)

// IsText reports whether data looks like text. The heuristic inspects at
// most probeSize bytes: any NUL byte means binary, and so does a high
// ratio of control bytes. Empty content counts as text.
func IsText(data []byte) bool {
	probe := data
	if len(probe) > probeSize {
		probe = probe[:probeSize]
	}
	if len(probe) == 0 {
		return true
	}

	control := 0
	for _, b := range probe {
		if b == 0 {
			return false
		}
		if isControl(b) {
			control++
		}
	}
	return float64(control)/float64(len(probe)) < maxControlRatio
}

// isControl reports whether b is a control byte that text rarely
// contains. Common text controls (tab, newlines, form feed, backspace,
// escape) are excluded.
func isControl(b byte) bool {
	switch b {
	case '\t', '\n', '\r', '\f', '\b', 0x1b:
		return false
	}
	return b < 0x20 || b == 0x7f
}
