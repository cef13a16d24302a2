package errors

import (
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for
// the command line frontend.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if be, ok := err.(*BuildError); ok {
		return a.exitCodeFromBuildError(be)
	}

	return 1
}

// exitCodeFromBuildError maps BuildError categories to exit codes.
func (a *CLIErrorAdapter) exitCodeFromBuildError(err *BuildError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage or input
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryContent, CategoryMarkdown, CategoryRender, CategoryFileSystem:
		return 11 // Build error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if be, ok := err.(*BuildError); ok {
		return a.formatBuildError(be)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatBuildError formats a BuildError for display.
func (a *CLIErrorAdapter) formatBuildError(err *BuildError) string {
	if a.verbose {
		return err.Error()
	}

	msg := err.Message
	if file, ok := err.Context["file"]; ok {
		msg = fmt.Sprintf("%s (%v)", msg, file)
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return msg
	default:
		return fmt.Sprintf("%s: %s", err.Category, msg)
	}
}

// HandleError processes an error and exits the program with the
// appropriate code. A nil error is a no-op.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	if be, ok := err.(*BuildError); ok {
		args := []any{"category", be.Category, "severity", be.Severity}
		for k, v := range be.Context {
			args = append(args, k, v)
		}
		if be.Cause != nil {
			args = append(args, "cause", be.Cause)
		}
		a.logger.Error(be.Message, args...)
	}

	fmt.Fprintln(os.Stderr, a.FormatError(err))
	os.Exit(a.ExitCodeFor(err))
}
