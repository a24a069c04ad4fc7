package utils

import (
	"fmt"
	"time"
)

const (
	outputTimestampLayout  = "2006-01-02_15-04-05"
	outputFileNameTemplate = "file_tree_%s.md"
)

// DefaultOutputFileName returns the file name used when no output location is given.
// The timestamp is rendered in the local time zone.
func DefaultOutputFileName(moment time.Time) string {
	return fmt.Sprintf(outputFileNameTemplate, moment.In(time.Local).Format(outputTimestampLayout))
}
