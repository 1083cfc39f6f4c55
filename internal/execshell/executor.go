package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	azureExecutableNameConstant               = "az"
	loggerNotConfiguredMessageConstant        = "shell executor logger not configured"
	commandRunnerNotConfiguredMessageConstant = "shell executor command runner not configured"
	commandFailedErrorTemplateConstant        = "%s command failed with exit code %d%s"
	commandExecutionErrorTemplateConstant     = "%s command could not be executed: %s"
	failedCommandStderrSuffixTemplateConstant = ": %s"
	logFieldCommandNameConstant               = "command_name"
	logFieldCommandArgumentsConstant          = "command_arguments"
	logFieldWorkingDirectoryConstant          = "working_directory"
	logFieldExitCodeConstant                  = "exit_code"
)

// CommandName identifies an executable launched through the shell executor.
type CommandName string

// Executables supported by the executor.
const (
	// CommandAzure launches the Azure DevOps CLI.
	CommandAzure CommandName = CommandName(azureExecutableNameConstant)
)

// CommandDetails describes the arguments and environment for one invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand pairs an executable name with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outputs of a completed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner executes shell commands and reports their results.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// ErrLoggerNotConfigured indicates the executor was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates the executor was constructed without a command runner.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// CommandFailedError reports a command that completed with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command including trimmed standard error output.
func (failureError CommandFailedError) Error() string {
	standardErrorSuffix := ""
	if trimmedStandardError := strings.TrimSpace(failureError.Result.StandardError); len(trimmedStandardError) > 0 {
		standardErrorSuffix = fmt.Sprintf(failedCommandStderrSuffixTemplateConstant, trimmedStandardError)
	}
	return fmt.Sprintf(commandFailedErrorTemplateConstant, failureError.Command.Name, failureError.Result.ExitCode, standardErrorSuffix)
}

// CommandExecutionError reports a command that could not be started or run at all.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (executionError CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionErrorTemplateConstant, executionError.Command.Name, executionError.Cause)
}

// Unwrap exposes the underlying cause.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Cause
}

// ShellExecutor runs external commands with lifecycle logging and optional event observation.
type ShellExecutor struct {
	logger             *zap.Logger
	commandRunner      CommandRunner
	invocationObserver InvocationObserver
	messageFormatter   CommandMessageFormatter
}

// NewShellExecutor constructs a ShellExecutor that logs lifecycle events through the provided logger.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner) (*ShellExecutor, error) {
	return NewShellExecutorWithObserver(logger, commandRunner, nil)
}

// NewShellExecutorWithObserver additionally forwards lifecycle events to the supplied observer.
func NewShellExecutorWithObserver(logger *zap.Logger, commandRunner CommandRunner, invocationObserver InvocationObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if commandRunner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	if invocationObserver == nil {
		invocationObserver = silentInvocationObserver{}
	}

	return &ShellExecutor{
		logger:             logger,
		commandRunner:      commandRunner,
		invocationObserver: invocationObserver,
		messageFormatter:   CommandMessageFormatter{},
	}, nil
}

// ExecuteAzureCLI runs the Azure DevOps CLI with the supplied details.
func (executor *ShellExecutor) ExecuteAzureCLI(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.ExecuteCommand(executionContext, ShellCommand{Name: CommandAzure, Details: details})
}

// ExecuteCommand runs the supplied command, logging exactly one start and one completion entry.
func (executor *ShellExecutor) ExecuteCommand(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.invocationObserver.InvocationStarted(command)
	executor.logger.Debug(executor.messageFormatter.BuildStartedMessage(command), executor.commandLogFields(command)...)

	executionResult, runError := executor.commandRunner.Run(executionContext, command)
	if runError != nil {
		executor.invocationObserver.InvocationFailed(command, runError)
		executor.logger.Error(
			executor.messageFormatter.BuildExecutionFailureMessage(command, runError),
			append(executor.commandLogFields(command), zap.Error(runError))...,
		)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.invocationObserver.InvocationCompleted(command, executionResult)
	if executionResult.ExitCode != 0 {
		executor.logger.Warn(
			executor.messageFormatter.BuildFailureMessage(command, executionResult),
			append(executor.commandLogFields(command), zap.Int(logFieldExitCodeConstant, executionResult.ExitCode))...,
		)
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Debug(executor.messageFormatter.BuildSuccessMessage(command), executor.commandLogFields(command)...)
	return executionResult, nil
}

func (executor *ShellExecutor) commandLogFields(command ShellCommand) []zap.Field {
	logFields := []zap.Field{
		zap.String(logFieldCommandNameConstant, string(command.Name)),
		zap.Strings(logFieldCommandArgumentsConstant, command.Details.Arguments),
	}
	if len(command.Details.WorkingDirectory) > 0 {
		logFields = append(logFields, zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory))
	}
	return logFields
}
