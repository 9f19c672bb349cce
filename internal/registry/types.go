package registry

// Descriptor is what a demo package registers: its fully qualified name,
// an optional free-text description, and its entry point.
type Descriptor struct {
	Name        string // e.g., "coordination_oru.tests.DemoFoo"
	Description string // empty when the demo has none
	Main        any    // entry point; nil when the type has none
}

// Entry is one row of a scanned catalog.
type Entry struct {
	QualifiedName string // e.g., "coordination_oru.tests.icaps.DemoFoo"
	DisplayName   string // qualified name without the namespace, e.g., "icaps.DemoFoo"
	Description   string
}
