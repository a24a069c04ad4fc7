package output_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/temirov/ftg/internal/output"
	"github.com/temirov/ftg/internal/types"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestFormatEntryLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		indentation string
		entry       types.DirectoryEntry
		isLast      bool
		expected    string
	}{
		{
			name:     "directory in the middle",
			entry:    types.DirectoryEntry{Name: "src", Kind: types.EntryKindDirectory},
			expected: "├── [Directory] src\n",
		},
		{
			name:     "last file",
			entry:    types.DirectoryEntry{Name: "baz", Kind: types.EntryKindFile},
			isLast:   true,
			expected: "└── [File] baz\n",
		},
		{
			name:        "nested under open branch",
			indentation: "│   ",
			entry:       types.DirectoryEntry{Name: "main.go", Kind: types.EntryKindFile},
			isLast:      true,
			expected:    "│   └── [File] main.go\n",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			line := output.FormatEntryLine(testCase.indentation, testCase.entry, testCase.isLast)
			if line != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, line)
			}
		})
	}
}

func TestChildIndentation(t *testing.T) {
	t.Parallel()

	if indentation := output.ChildIndentation("", false); indentation != "│   " {
		t.Fatalf("unexpected open-branch indentation %q", indentation)
	}
	if indentation := output.ChildIndentation("│   ", true); indentation != "│       " {
		t.Fatalf("unexpected closed-branch indentation %q", indentation)
	}
}

func TestMarkdownFrame(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	if err := output.WriteMarkdownHeader(&buffer, "/home/user/project"); err != nil {
		t.Fatalf("header failed: %v", err)
	}
	if err := output.WriteEntryLine(&buffer, "", types.DirectoryEntry{Name: "a.txt"}, true); err != nil {
		t.Fatalf("entry failed: %v", err)
	}
	if err := output.WriteMarkdownFooter(&buffer); err != nil {
		t.Fatalf("footer failed: %v", err)
	}

	expected := "# File Tree\n\nPath to Directory: /home/user/project\n\n```sh\n└── [File] a.txt\n```\n"
	if buffer.String() != expected {
		t.Fatalf("unexpected document:\n%s", buffer.String())
	}
}

func TestWriteEntryLineReportsWriteFailure(t *testing.T) {
	t.Parallel()

	err := output.WriteEntryLine(failingWriter{}, "", types.DirectoryEntry{Name: "a.txt"}, true)
	if err == nil {
		t.Fatalf("expected write error")
	}
}
