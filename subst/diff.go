package subst

import "strings"

// DiffKind tags a line in a preview diff.
type DiffKind int

const (
	DiffUnchanged DiffKind = iota
	DiffRemoved
	DiffAdded
)

// DiffLine is one tagged line of a preview diff.
type DiffLine struct {
	Kind DiffKind
	Text string
}

// Diff compares original and replaced line by line, pairing lines by
// position: equal pairs are unchanged, differing pairs render as a removal
// followed by an addition, and the longer side's tail renders as pure
// removals or additions. This is deliberately not a minimal-edit diff; the
// pairing must stay positional so the preview tracks the substitution
// one-to-one.
func Diff(original, replaced string) []DiffLine {
	origLines := splitLines(original)
	replLines := splitLines(replaced)

	n := len(origLines)
	if len(replLines) > n {
		n = len(replLines)
	}

	lines := make([]DiffLine, 0, n)
	for i := 0; i < n; i++ {
		switch {
		case i < len(origLines) && i < len(replLines) && origLines[i] == replLines[i]:
			lines = append(lines, DiffLine{Kind: DiffUnchanged, Text: origLines[i]})
		case i < len(origLines) && i < len(replLines):
			lines = append(lines,
				DiffLine{Kind: DiffRemoved, Text: origLines[i]},
				DiffLine{Kind: DiffAdded, Text: replLines[i]})
		case i < len(origLines):
			lines = append(lines, DiffLine{Kind: DiffRemoved, Text: origLines[i]})
		default:
			lines = append(lines, DiffLine{Kind: DiffAdded, Text: replLines[i]})
		}
	}
	return lines
}

// splitLines splits on line terminators without producing a phantom empty
// line for trailing newlines. CRLF terminators are treated like LF.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
