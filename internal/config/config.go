// Package config resolves the run configuration from command line flags and FTG_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// ExcludeKey names the exclusion flag. Exclusions are never read from the environment.
	ExcludeKey = "exclude"
	// OutputKey names the output location flag and the FTG_OUTPUT variable.
	OutputKey = "output"
	// InteractiveKey names the interactive mode flag.
	InteractiveKey = "interactive"
	// ClearKey names the flag that clears the exclusion set before defaults are added.
	ClearKey = "clear"
	// SortKey names the natural ordering flag and the FTG_SORT variable.
	SortKey = "sort"
	// MarkdownKey names the markdown frame flag and the FTG_MARKDOWN variable.
	MarkdownKey = "markdown"
	// CopyKey names the clipboard flag and the FTG_COPY variable.
	CopyKey = "copy"

	environmentPrefix = "FTG"

	errorBindFlagFormat        = "bind flag %s: %w"
	errorBindEnvironmentFormat = "bind environment for %s: %w"
	errorReadExclusionsFormat  = "read %s flag: %w"
)

var (
	flagBoundKeys        = []string{OutputKey, InteractiveKey, ClearKey, SortKey, MarkdownKey, CopyKey}
	environmentBoundKeys = []string{OutputKey, SortKey, MarkdownKey, CopyKey}
)

// RunConfiguration holds every option that drives a single generation run.
type RunConfiguration struct {
	ExclusionPatterns []string
	OutputPath        string
	Interactive       bool
	ClearExclusions   bool
	SortEntries       bool
	MarkdownFrame     bool
	CopyToClipboard   bool
}

// ResolveRunConfiguration merges parsed flags with FTG_* environment variables.
// A flag given on the command line wins over the environment; the environment wins over flag defaults.
func ResolveRunConfiguration(flagSet *pflag.FlagSet) (RunConfiguration, error) {
	reader := viper.New()
	reader.SetEnvPrefix(environmentPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, key := range flagBoundKeys {
		if bindError := reader.BindPFlag(key, flagSet.Lookup(key)); bindError != nil {
			return RunConfiguration{}, fmt.Errorf(errorBindFlagFormat, key, bindError)
		}
	}
	for _, key := range environmentBoundKeys {
		if bindError := reader.BindEnv(key); bindError != nil {
			return RunConfiguration{}, fmt.Errorf(errorBindEnvironmentFormat, key, bindError)
		}
	}

	exclusionPatterns, exclusionError := flagSet.GetStringArray(ExcludeKey)
	if exclusionError != nil {
		return RunConfiguration{}, fmt.Errorf(errorReadExclusionsFormat, ExcludeKey, exclusionError)
	}

	return RunConfiguration{
		ExclusionPatterns: exclusionPatterns,
		OutputPath:        reader.GetString(OutputKey),
		Interactive:       reader.GetBool(InteractiveKey),
		ClearExclusions:   reader.GetBool(ClearKey),
		SortEntries:       reader.GetBool(SortKey),
		MarkdownFrame:     reader.GetBool(MarkdownKey),
		CopyToClipboard:   reader.GetBool(CopyKey),
	}, nil
}
