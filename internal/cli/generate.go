package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/ftg/internal/commands"
	"github.com/temirov/ftg/internal/config"
	"github.com/temirov/ftg/internal/exclusion"
	"github.com/temirov/ftg/internal/filesystem"
	"github.com/temirov/ftg/internal/interactive"
	"github.com/temirov/ftg/internal/output"
	"github.com/temirov/ftg/internal/utils"
)

const (
	defaultRootPath = "."

	generatingMessage    = "Generating your file tree, please wait..."
	writtenMessageFormat = "File tree has been written to %s\n"
	copiedMessage        = "File tree has been copied to the clipboard."

	// errorInteractiveFormat is used when the interactive session aborts.
	errorInteractiveFormat = "interactive mode: %w"
	// errorCreateOutputFormat is used when the output file cannot be created.
	errorCreateOutputFormat = "cannot write to output location %s: %w"
	// errorFlushOutputFormat is used when buffered output cannot be written.
	errorFlushOutputFormat = "writing %s: %w"
	// errorCloseOutputFormat is used when the output file cannot be closed.
	errorCloseOutputFormat = "closing %s: %w"
	// errorRenderTreeFormat is used when the tree cannot be rendered.
	errorRenderTreeFormat = "generating tree: %w"
	// errorOutputDirectoryFormat is used when the output directory cannot be resolved.
	errorOutputDirectoryFormat = "resolving directory of %s: %w"

	warningClipboardMessage = "Warning: failed to copy the file tree to the clipboard"
)

// generationRunner performs one generation run.
type generationRunner struct {
	environment Environment
}

func newGenerationRunner(environment Environment) *generationRunner {
	return &generationRunner{environment: environment}
}

// buildExclusionSet applies --clear to the still-empty set, then -e values, then the defaults.
// Clearing before the defaults are added keeps the flag a no-op, matching the established tool.
func buildExclusionSet(configuration config.RunConfiguration) *exclusion.Set {
	exclusions := exclusion.New()
	if configuration.ClearExclusions {
		exclusions.Clear()
	}
	for _, patterns := range configuration.ExclusionPatterns {
		exclusions.AddFromCSV(patterns)
	}
	exclusions.Merge(exclusion.Default())
	return exclusions
}

func (runner *generationRunner) run(configuration config.RunConfiguration) error {
	environment := runner.environment
	exclusions := buildExclusionSet(configuration)

	ordering := filesystem.OrderingListing
	if configuration.SortEntries {
		ordering = filesystem.OrderingNatural
	}
	lister := filesystem.NewAferoLister(environment.FileSystem, ordering)

	if configuration.Interactive {
		session := interactive.NewSession(interactive.Options{
			Input:      environment.Input,
			Output:     environment.Output,
			Lister:     lister,
			Exclusions: exclusions,
			RootPath:   defaultRootPath,
			Styled:     environment.InteractiveStyling,
		})
		if sessionError := session.Run(); sessionError != nil {
			return fmt.Errorf(errorInteractiveFormat, sessionError)
		}
	}

	outputPath := configuration.OutputPath
	if outputPath == "" {
		outputPath = utils.DefaultOutputFileName(environment.Now())
	}

	fmt.Fprintln(environment.Output, generatingMessage)

	var capturedTree *bytes.Buffer
	var capture io.Writer
	if configuration.CopyToClipboard {
		capturedTree = &bytes.Buffer{}
		capture = capturedTree
	}
	renderer := commands.NewTreeRenderer(lister, exclusions)
	if writeError := writeTreeFile(environment.FileSystem, outputPath, renderer, configuration.MarkdownFrame, capture); writeError != nil {
		return writeError
	}

	fmt.Fprintf(environment.Output, writtenMessageFormat, outputPath)

	if capturedTree != nil {
		runner.copyToClipboard(capturedTree.String())
	}
	return nil
}

// copyToClipboard reports clipboard failures as warnings; the file is already written.
func (runner *generationRunner) copyToClipboard(tree string) {
	environment := runner.environment
	if environment.Clipboard == nil {
		return
	}
	if copyError := environment.Clipboard.Copy(tree); copyError != nil {
		if environment.Logger != nil {
			environment.Logger.Warn(warningClipboardMessage, zap.Error(copyError))
		}
		return
	}
	fmt.Fprintln(environment.Output, copiedMessage)
}

// writeTreeFile creates outputPath and renders the tree from the current directory into it.
// When capture is not nil it receives the same bytes as the file.
func writeTreeFile(fileSystem afero.Fs, outputPath string, renderer *commands.TreeRenderer, markdownFrame bool, capture io.Writer) (err error) {
	outputFile, createError := fileSystem.Create(outputPath)
	if createError != nil {
		return fmt.Errorf(errorCreateOutputFormat, outputPath, createError)
	}
	defer func() {
		if closeError := outputFile.Close(); closeError != nil && err == nil {
			err = fmt.Errorf(errorCloseOutputFormat, outputPath, closeError)
		}
	}()

	bufferedWriter := bufio.NewWriter(outputFile)
	var treeWriter io.Writer = bufferedWriter
	if capture != nil {
		treeWriter = io.MultiWriter(bufferedWriter, capture)
	}

	if markdownFrame {
		outputDirectory, directoryError := filepath.Abs(filepath.Dir(outputPath))
		if directoryError != nil {
			return fmt.Errorf(errorOutputDirectoryFormat, outputPath, directoryError)
		}
		if headerError := output.WriteMarkdownHeader(treeWriter, outputDirectory); headerError != nil {
			return headerError
		}
	}

	if renderError := renderer.Render(treeWriter, defaultRootPath, ""); renderError != nil {
		return fmt.Errorf(errorRenderTreeFormat, renderError)
	}

	if markdownFrame {
		if footerError := output.WriteMarkdownFooter(treeWriter); footerError != nil {
			return footerError
		}
	}

	if flushError := bufferedWriter.Flush(); flushError != nil {
		return fmt.Errorf(errorFlushOutputFormat, outputPath, flushError)
	}
	return nil
}
