// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/temirov/ftg/internal/config"
	"github.com/temirov/ftg/internal/services/clipboard"
	"github.com/temirov/ftg/internal/utils"
)

const (
	exclusionShorthand   = "e"
	outputShorthand      = "o"
	interactiveShorthand = "i"
	clearShorthand       = "c"
	helpFlagName         = "help"
	helpShorthand        = "h"
	versionFlagName      = "version"
	versionShorthand     = "v"

	rootUse              = utils.ApplicationName
	rootShortDescription = "generate a file tree listing"
	rootLongDescription  = `ftg walks the current directory and writes an indented tree of every file and directory to a markdown file.
Common build and version-control artifacts (node_modules, .git, target, vendor, ...) are always skipped.
Use -e to skip more names, -i to pick exclusions interactively, and -o to choose the output file.`
	rootUsageExample = `  # Write the tree to file_tree_<timestamp>.md
  ftg

  # Skip the docs and dist directories and write to tree.md
  ftg -e docs,dist -o tree.md

  # Pick exclusions from the current directory before generating
  ftg -i`

	exclusionFlagDescription   = "exclude directories or files (comma-separated exact names)"
	outputFlagDescription      = "output location; default file_tree_<YYYY-MM-DD_HH-MM-SS>.md in the current directory"
	interactiveFlagDescription = "interactive mode to select items to exclude"
	clearFlagDescription       = "clear the exclusion list"
	sortFlagDescription        = "list entries in natural name order instead of filesystem order"
	markdownFlagDescription    = "wrap the tree in a markdown header and fenced code block"
	copyFlagDescription        = "also copy the tree to the system clipboard"
	helpFlagDescription        = "show this help message and exit"
	versionFlagDescription     = "show version information and exit"

	versionTemplate = "File Tree Generator version: %s\nLeave us a star at %s\n"

	// errorResolveConfigurationFormat reports flags that could not be resolved.
	errorResolveConfigurationFormat = "resolving configuration: %w"
)

// ErrUsageRequested is returned after the usage text was printed for --help.
var ErrUsageRequested = errors.New("usage requested")

// Environment carries the process resources a run works against.
type Environment struct {
	Input              io.Reader
	Output             io.Writer
	FileSystem         afero.Fs
	Clipboard          clipboard.Copier
	Logger             *zap.Logger
	Now                func() time.Time
	InteractiveStyling bool
}

// defaultEnvironment binds a run to the real process resources.
func defaultEnvironment(logger *zap.Logger) Environment {
	return Environment{
		Input:              os.Stdin,
		Output:             os.Stdout,
		FileSystem:         afero.NewOsFs(),
		Clipboard:          clipboard.NewService(),
		Logger:             logger,
		Now:                time.Now,
		InteractiveStyling: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Execute runs the ftg application with the process arguments.
func Execute(logger *zap.Logger) error {
	return ExecuteWithArguments(os.Args[1:], defaultEnvironment(logger))
}

// ExecuteWithArguments runs the ftg application against the provided environment.
func ExecuteWithArguments(arguments []string, environment Environment) error {
	if arguments == nil {
		arguments = []string{}
	}
	rootCommand := createRootCommand(environment)
	rootCommand.SetArgs(arguments)
	if executionError := rootCommand.Execute(); executionError != nil {
		return executionError
	}
	if helpRequested, _ := rootCommand.Flags().GetBool(helpFlagName); helpRequested {
		return ErrUsageRequested
	}
	return nil
}

// createRootCommand builds the root Cobra command.
func createRootCommand(environment Environment) *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion(), utils.ApplicationAuthorURL)
				return nil
			}
			configuration, configurationError := config.ResolveRunConfiguration(command.Flags())
			if configurationError != nil {
				return fmt.Errorf(errorResolveConfigurationFormat, configurationError)
			}
			return newGenerationRunner(environment).run(configuration)
		},
	}
	rootCommand.SetIn(environment.Input)
	rootCommand.SetOut(environment.Output)

	flags := rootCommand.Flags()
	flags.StringArrayP(config.ExcludeKey, exclusionShorthand, nil, exclusionFlagDescription)
	flags.StringP(config.OutputKey, outputShorthand, "", outputFlagDescription)
	flags.BoolP(config.InteractiveKey, interactiveShorthand, false, interactiveFlagDescription)
	flags.BoolP(config.ClearKey, clearShorthand, false, clearFlagDescription)
	flags.Bool(config.SortKey, false, sortFlagDescription)
	flags.Bool(config.MarkdownKey, false, markdownFlagDescription)
	flags.Bool(config.CopyKey, false, copyFlagDescription)
	flags.BoolP(helpFlagName, helpShorthand, false, helpFlagDescription)
	flags.BoolVarP(&showVersion, versionFlagName, versionShorthand, false, versionFlagDescription)
	return rootCommand
}
