package exclusion_test

import (
	"reflect"
	"testing"

	"github.com/temirov/ftg/internal/exclusion"
)

func TestDefaultContainsEveryArtifactName(t *testing.T) {
	defaults := exclusion.Default()
	expectedNames := []string{
		"node_modules", ".next", ".vscode", ".idea", ".git", "target", "Cargo.lock",
		"zig-cache", "zig-out", "vendor", "go.sum", "DerivedData", ".svelte-kit",
	}
	if defaults.Len() != len(expectedNames) {
		t.Fatalf("expected %d default names, got %d", len(expectedNames), defaults.Len())
	}
	for _, name := range expectedNames {
		if !defaults.Contains(name) {
			t.Fatalf("expected default set to contain %q", name)
		}
	}
}

func TestDefaultReturnsIndependentSets(t *testing.T) {
	first := exclusion.Default()
	first.Remove(".git")
	second := exclusion.Default()
	if !second.Contains(".git") {
		t.Fatalf("mutating one default set must not affect another")
	}
}

func TestAddFromCSV(t *testing.T) {
	testCases := []struct {
		name            string
		patterns        string
		expectedPresent []string
		expectedAbsent  []string
		expectedLength  int
	}{
		{
			name:            "two names",
			patterns:        "foo,bar",
			expectedPresent: []string{"foo", "bar"},
			expectedAbsent:  []string{"foo,bar", "baz"},
			expectedLength:  2,
		},
		{
			name:            "segments are not trimmed",
			patterns:        "foo, bar",
			expectedPresent: []string{"foo", " bar"},
			expectedAbsent:  []string{"bar"},
			expectedLength:  2,
		},
		{
			name:            "empty segment inserts empty name",
			patterns:        "foo,,bar",
			expectedPresent: []string{"foo", "", "bar"},
			expectedLength:  3,
		},
		{
			name:            "empty input inserts empty name",
			patterns:        "",
			expectedPresent: []string{""},
			expectedLength:  1,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			set := exclusion.New()
			set.AddFromCSV(testCase.patterns)
			for _, name := range testCase.expectedPresent {
				if !set.Contains(name) {
					t.Fatalf("expected %q to be excluded", name)
				}
			}
			for _, name := range testCase.expectedAbsent {
				if set.Contains(name) {
					t.Fatalf("expected %q not to be excluded", name)
				}
			}
			if set.Len() != testCase.expectedLength {
				t.Fatalf("expected %d names, got %d", testCase.expectedLength, set.Len())
			}
		})
	}
}

func TestContainsIsCaseSensitive(t *testing.T) {
	set := exclusion.New("Vendor")
	if set.Contains("vendor") {
		t.Fatalf("membership must be case-sensitive")
	}
	if !set.Contains("Vendor") {
		t.Fatalf("expected exact name to match")
	}
}

func TestMutationSequence(t *testing.T) {
	set := exclusion.Default()
	set.AddFromCSV("docs")
	set.Add("build")
	set.Remove("docs")
	if set.Contains("docs") {
		t.Fatalf("removed name must not be excluded")
	}
	if !set.Contains("build") || !set.Contains("node_modules") {
		t.Fatalf("expected added and default names to remain")
	}

	set.Clear()
	if set.Len() != 0 {
		t.Fatalf("expected empty set after clear, got %v", set.Names())
	}

	set.Add("build")
	if !set.Contains("build") {
		t.Fatalf("expected reinserted name to be excluded")
	}
}

func TestClearBeforeMergeKeepsDefaults(t *testing.T) {
	set := exclusion.New()
	set.Clear()
	set.AddFromCSV("foo")
	set.Merge(exclusion.Default())
	if !set.Contains("foo") || !set.Contains(".git") {
		t.Fatalf("expected user and default names after merge, got %v", set.Names())
	}
}

func TestNamesAreNaturallyOrdered(t *testing.T) {
	set := exclusion.New("item10", "item2", "alpha", "item1")
	expected := []string{"alpha", "item1", "item2", "item10"}
	if names := set.Names(); !reflect.DeepEqual(names, expected) {
		t.Fatalf("unexpected order: got %v want %v", names, expected)
	}
}

func TestZeroValueSetIsUsable(t *testing.T) {
	var set exclusion.Set
	if set.Contains("anything") {
		t.Fatalf("zero set must be empty")
	}
	set.Add("anything")
	if !set.Contains("anything") {
		t.Fatalf("expected zero set to accept names")
	}
}
