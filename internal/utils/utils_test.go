package utils_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/temirov/ftg/internal/utils"
)

func TestDefaultOutputFileName(t *testing.T) {
	testCases := []struct {
		name     string
		value    time.Time
		expected string
	}{
		{
			name:     "afternoon",
			value:    time.Date(2024, time.March, 9, 14, 5, 7, 0, time.Local),
			expected: "file_tree_2024-03-09_14-05-07.md",
		},
		{
			name:     "midnight",
			value:    time.Date(2023, time.December, 31, 0, 0, 0, 0, time.Local),
			expected: "file_tree_2023-12-31_00-00-00.md",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.DefaultOutputFileName(testCase.value)
			if result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}

func TestGetApplicationVersionIsNotEmpty(t *testing.T) {
	if version := utils.GetApplicationVersion(); version == "" {
		t.Fatalf("expected a version string")
	}
}

func TestNewWriterLoggerWritesPlainMessages(t *testing.T) {
	var buffer bytes.Buffer
	logger := utils.NewWriterLogger(&buffer)
	logger.Warn("clipboard unavailable")
	_ = logger.Sync()

	line := strings.TrimSpace(buffer.String())
	if line != "clipboard unavailable" {
		t.Fatalf("expected bare message, got %q", line)
	}
}
