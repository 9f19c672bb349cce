// Package catalog renders the list of launchable demos: a usage header,
// one wrapped block per demo sorted by display name, and a closing note.
package catalog

import (
	"fmt"
	"io"
	"sort"

	"github.com/coordination-oru/demolauncher/internal/manifest"
	"github.com/coordination-oru/demolauncher/internal/registry"
	"github.com/coordination-oru/demolauncher/internal/textfmt"
)

// Terminal emphasis applied to each demo name. Tools that read this output
// match these exact bytes.
const (
	Bold  = "\x1b[1m"
	Green = "\x1b[32m"
	Reset = "\x1b[0m"
)

const (
	// WrapWidth is the column limit for every formatted block.
	WrapWidth = 72
	// EntryIndent is the continuation indent under a demo name.
	EntryIndent = 6

	entryMargin = "   "
	labelSep    = ": "
	noteLabel   = "NOTE: "
)

// Catalog maps display names to scanned entries. It is built fresh for
// every render.
type Catalog map[string]registry.Entry

// New builds a catalog from scanned entries.
func New(entries []registry.Entry) Catalog {
	c := make(Catalog, len(entries))
	for _, e := range entries {
		c[e.DisplayName] = e
	}
	return c
}

// Sorted returns the entries ordered by display name (byte order,
// independent of locale).
func (c Catalog) Sorted() []registry.Entry {
	list := make([]registry.Entry, 0, len(c))
	for _, e := range c {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].DisplayName < list[j].DisplayName
	})
	return list
}

// Label returns the emphasised label printed before a demo's description.
func Label(displayName string) string {
	return entryMargin + Bold + Green + displayName + Reset + labelSep
}

// Render writes the usage header, the catalog and the advisory note to w.
func Render(w io.Writer, c Catalog, m *manifest.Manifest) {
	for _, line := range m.UsageLines() {
		fmt.Fprintln(w, line)
	}

	for _, e := range c.Sorted() {
		fmt.Fprintln(w)
		for _, line := range textfmt.Description(Label(e.DisplayName), e.Description, WrapWidth, EntryIndent) {
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w)
	for _, line := range textfmt.Description(noteLabel, m.Note, WrapWidth) {
		fmt.Fprintln(w, line)
	}
}
