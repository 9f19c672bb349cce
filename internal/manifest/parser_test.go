package manifest

import (
	"path/filepath"
	"strings"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestLoad_Embedded(t *testing.T) {
	m, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(m.Parameters) != 6 {
		t.Errorf("Parameters len = %d, want 6", len(m.Parameters))
	}
	wantNames := []string{"nRobots", "planner", "map", "constrained", "no_hotspots", "exp"}
	for i, p := range m.Parameters {
		if p.Name != wantNames[i] {
			t.Errorf("Parameters[%d].Name = %q, want %q", i, p.Name, wantNames[i])
		}
	}
	if !strings.Contains(m.Note, "ReedsSheppCarPlanner") {
		t.Errorf("Note = %q, want mention of ReedsSheppCarPlanner", m.Note)
	}
	if strings.Contains(m.Note, "\n") {
		t.Errorf("Note should be folded into one paragraph, got %q", m.Note)
	}
}

func TestLoad_ReturnsSameManifest(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	b, _ := Load()
	if a != b {
		t.Error("Load() parsed the embedded manifest twice")
	}
}

func TestPlannerName(t *testing.T) {
	m, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		id   int
		want string
		ok   bool
	}{
		{0, "SIMPLE_RRT-Connect", true},
		{1, "LIGHTNING", true},
		{2, "THUNDER", true},
		{3, "SIMPLE_RRT-Star", true},
		{4, "", false},
	}
	for _, tt := range tests {
		got, ok := m.PlannerName(tt.id)
		if got != tt.want || ok != tt.ok {
			t.Errorf("PlannerName(%d) = (%q, %v), want (%q, %v)", tt.id, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUsageLines(t *testing.T) {
	m, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	lines := m.UsageLines()
	if lines[0] != "Usage: " {
		t.Errorf("first line = %q, want %q", lines[0], "Usage: ")
	}
	if last := lines[len(lines)-1]; last != "Available options for <demo>" {
		t.Errorf("last line = %q", last)
	}

	joined := strings.Join(lines, "\n")
	want := "ID represents the planner to be used (SIMPLE_RRT-Connect:0, LIGHTNING:1, THUNDER:2, SIMPLE_RRT-Star:3)"
	if !strings.Contains(joined, want) {
		t.Errorf("usage missing planner line %q:\n%s", want, joined)
	}
	if !strings.Contains(joined, "\tOR") {
		t.Errorf("usage missing alternative synopsis:\n%s", joined)
	}
}

func TestParseFile_Minimal(t *testing.T) {
	m, err := ParseFile(testPath("valid-minimal.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if m.OptionsHeading != "Demos" {
		t.Errorf("OptionsHeading = %q, want %q", m.OptionsHeading, "Demos")
	}
	lines := m.UsageLines()
	want := []string{"Usage: ", "demolauncher <demo>", "", "Demos"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("UsageLines() = %q, want %q", lines, want)
	}
}

func TestParseFile_Invalid(t *testing.T) {
	_, err := ParseFile(testPath("invalid-missing-note.yaml"))
	if err == nil {
		t.Fatal("expected error for manifest without note, got nil")
	}
	if !strings.Contains(err.Error(), "invalid launcher manifest") {
		t.Errorf("error = %v", err)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	if _, err := ParseFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}
