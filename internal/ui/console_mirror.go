package ui

import (
	"go.uber.org/zap"

	"github.com/temirov/wiclone/internal/execshell"
)

// ConsoleMirror echoes tracker CLI invocations to a zap logger configured for
// human-readable output, so console users can follow what the tool runs.
type ConsoleMirror struct {
	console   *zap.Logger
	formatter execshell.CommandMessageFormatter
}

// NewConsoleMirror constructs a ConsoleMirror backed by the provided logger.
func NewConsoleMirror(console *zap.Logger) *ConsoleMirror {
	if console == nil {
		console = zap.NewNop()
	}
	return &ConsoleMirror{console: console, formatter: execshell.CommandMessageFormatter{}}
}

// InvocationStarted announces a command about to run.
func (mirror *ConsoleMirror) InvocationStarted(command execshell.ShellCommand) {
	if mirror == nil {
		return
	}
	mirror.console.Info(mirror.formatter.BuildStartedMessage(command))
}

// InvocationCompleted reports the command outcome, warning on non-zero exit codes.
func (mirror *ConsoleMirror) InvocationCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if mirror == nil {
		return
	}
	if result.ExitCode != 0 {
		mirror.console.Warn(mirror.formatter.BuildFailureMessage(command, result))
		return
	}
	mirror.console.Info(mirror.formatter.BuildSuccessMessage(command))
}

// InvocationFailed reports a command that never produced a result.
func (mirror *ConsoleMirror) InvocationFailed(command execshell.ShellCommand, failure error) {
	if mirror == nil {
		return
	}
	mirror.console.Error(mirror.formatter.BuildExecutionFailureMessage(command, failure))
}
