package manifest

import (
	"testing"
)

func TestValidate_Embedded(t *testing.T) {
	result, err := Validate(launcherYAML)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
	if result.Err() != nil {
		t.Errorf("Err() = %v, want nil for valid result", result.Err())
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file    string
		keyword string
	}{
		{"invalid-missing-note.yaml", "required"},
		{"invalid-bad-param-type.yaml", "enum"},
		{"invalid-unknown-field.yaml", "additionalProperties"},
		{"invalid-negative-planner.yaml", "minimum"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s, got valid", tt.file)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no %q issue in %+v", tt.keyword, result.Issues)
			}
			if result.Err() == nil {
				t.Error("Err() = nil for invalid result")
			}
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-yaml.yaml")); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

func TestDeduplicateIssues(t *testing.T) {
	issues := []ValidationIssue{
		{Path: "/note", Keyword: "type", Message: "want string"},
		{Path: "/note", Keyword: "type", Message: "want string"},
		{Path: "/synopsis", Keyword: "minItems", Message: "too short"},
	}
	got := deduplicateIssues(issues)
	if len(got) != 2 {
		t.Fatalf("deduplicateIssues() returned %d issues, want 2", len(got))
	}
}
