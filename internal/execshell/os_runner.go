package execshell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

const environmentAssignmentSeparatorConstant = "="

// OSCommandRunner executes commands using the operating system facilities.
type OSCommandRunner struct{}

// NewOSCommandRunner constructs a runner backed by os/exec.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run executes the supplied command using os/exec. Non-zero exit codes are
// reported through the returned ExecutionResult rather than as errors.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	osCommand := exec.CommandContext(executionContext, string(command.Name), append([]string{}, command.Details.Arguments...)...)

	if len(command.Details.WorkingDirectory) > 0 {
		osCommand.Dir = command.Details.WorkingDirectory
	}
	if environment := runner.mergeEnvironment(command.Details.EnvironmentVariables); environment != nil {
		osCommand.Env = environment
	}
	if len(command.Details.StandardInput) > 0 {
		osCommand.Stdin = bytes.NewReader(command.Details.StandardInput)
	}

	var capturedOutput, capturedError bytes.Buffer
	osCommand.Stdout = &capturedOutput
	osCommand.Stderr = &capturedError

	runError := osCommand.Run()

	result := ExecutionResult{
		StandardOutput: capturedOutput.String(),
		StandardError:  capturedError.String(),
	}
	if runError == nil {
		return result, nil
	}

	exitError := &exec.ExitError{}
	if !errors.As(runError, &exitError) {
		return ExecutionResult{}, runError
	}

	result.ExitCode = exitError.ExitCode()
	return result, nil
}

func (runner *OSCommandRunner) mergeEnvironment(environmentVariables map[string]string) []string {
	if len(environmentVariables) == 0 {
		return nil
	}
	mergedEnvironment := append([]string{}, os.Environ()...)
	for environmentKey, environmentValue := range environmentVariables {
		mergedEnvironment = append(mergedEnvironment, environmentKey+environmentAssignmentSeparatorConstant+environmentValue)
	}
	return mergedEnvironment
}
