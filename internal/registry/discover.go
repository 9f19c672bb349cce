package registry

import (
	"sort"
	"strings"
)

// Scan returns every descriptor declared under namespace, i.e. whose name
// starts with namespace followed by a ".". Descriptors whose simple name
// (the segment after the last ".") is empty are skipped. The result is
// sorted by DisplayName and is empty, not nil, when nothing matches.
func (r *Registry) Scan(namespace string) []Entry {
	prefix := Qualify(namespace, "")

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, 0)
	for name, d := range r.items {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		display := strings.TrimPrefix(name, prefix)
		if SimpleName(display) == "" {
			continue
		}
		result = append(result, Entry{
			QualifiedName: name,
			DisplayName:   display,
			Description:   d.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DisplayName < result[j].DisplayName
	})
	return result
}

// Qualify joins a namespace and a name with ".". An empty namespace
// leaves name unchanged.
func Qualify(namespace, name string) string {
	namespace = strings.TrimSuffix(namespace, ".")
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// SimpleName returns the segment of a dotted name after its last ".".
func SimpleName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
