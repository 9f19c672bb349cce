// Package textfmt formats a labelled block of text into wrapped display lines.
package textfmt

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/muesli/reflow/ansi"
)

// Description lays out body after label, wrapped so no line exceeds width
// printable columns. Continuation lines are prefixed with indent spaces
// (default 0). ANSI escape sequences in label do not count towards width.
// An empty body yields the label alone.
func Description(label, body string, width int, indent ...int) []string {
	pad := 0
	if len(indent) > 0 && indent[0] > 0 {
		pad = indent[0]
	}

	budget := width - ansi.PrintableRuneWidth(label)
	if rest := width - pad; rest < budget {
		budget = rest
	}
	if budget < 1 {
		budget = 1
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return []string{label}
	}

	wrapped := strings.Split(wordwrap.WrapString(body, uint(budget)), "\n")
	lines := make([]string, 0, len(wrapped))
	prefix := strings.Repeat(" ", pad)
	for i, line := range wrapped {
		if i == 0 {
			lines = append(lines, label+line)
			continue
		}
		lines = append(lines, prefix+line)
	}
	return lines
}
