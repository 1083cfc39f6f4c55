package tests

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	integrationGoExecutableConstant        = "go"
	integrationBuildSubcommandConstant     = "build"
	integrationRunSubcommandConstant       = "run"
	integrationOutputFlagConstant          = "-o"
	integrationModulePathConstant          = "."
	integrationBinaryNameConstant          = "wiclone-integration"
	integrationBuildTimeoutConstant        = 120 * time.Second
	integrationPathVariableNameConstant    = "PATH"
	environmentAssignmentSeparatorConstant = "="
	structuredLinePrefixConstant           = "{"
)

// integrationCommandOptions adjusts the environment of a CLI subprocess.
type integrationCommandOptions struct {
	PathVariable         string
	EnvironmentOverrides map[string]string
}

func runIntegrationCommand(testInstance *testing.T, repositoryRoot string, options integrationCommandOptions, timeout time.Duration, arguments []string) string {
	testInstance.Helper()

	outputText, runError := runFailingIntegrationCommand(testInstance, repositoryRoot, options, timeout, arguments)
	require.NoError(testInstance, runError, outputText)
	return outputText
}

func runFailingIntegrationCommand(testInstance *testing.T, repositoryRoot string, options integrationCommandOptions, timeout time.Duration, arguments []string) (string, error) {
	testInstance.Helper()

	executionContext, cancelFunction := context.WithTimeout(context.Background(), timeout)
	defer cancelFunction()

	command := exec.CommandContext(executionContext, integrationGoExecutableConstant, arguments...)
	command.Dir = repositoryRoot
	command.Env = buildIntegrationEnvironment(options)

	outputBytes, runError := command.CombinedOutput()
	return string(outputBytes), runError
}

func buildIntegrationBinary(testInstance *testing.T, repositoryRoot string) string {
	testInstance.Helper()

	binaryPath := filepath.Join(testInstance.TempDir(), integrationBinaryNameConstant)

	buildContext, cancelFunction := context.WithTimeout(context.Background(), integrationBuildTimeoutConstant)
	defer cancelFunction()

	buildCommand := exec.CommandContext(buildContext, integrationGoExecutableConstant, integrationBuildSubcommandConstant, integrationOutputFlagConstant, binaryPath, integrationModulePathConstant)
	buildCommand.Dir = repositoryRoot
	buildCommand.Env = os.Environ()

	outputBytes, buildError := buildCommand.CombinedOutput()
	require.NoError(testInstance, buildError, string(outputBytes))

	return binaryPath
}

func runBinaryIntegrationCommand(testInstance *testing.T, binaryPath string, workingDirectory string, environmentOverrides map[string]string, timeout time.Duration, arguments []string) (string, error) {
	testInstance.Helper()

	executionContext, cancelFunction := context.WithTimeout(context.Background(), timeout)
	defer cancelFunction()

	command := exec.CommandContext(executionContext, binaryPath, arguments...)
	command.Dir = workingDirectory
	command.Env = buildIntegrationEnvironment(integrationCommandOptions{EnvironmentOverrides: environmentOverrides})

	outputBytes, runError := command.CombinedOutput()
	return string(outputBytes), runError
}

func buildIntegrationEnvironment(options integrationCommandOptions) []string {
	environment := append([]string{}, os.Environ()...)
	if len(options.PathVariable) > 0 {
		environment = append(environment, integrationPathVariableNameConstant+environmentAssignmentSeparatorConstant+options.PathVariable)
	}
	for overrideName, overrideValue := range options.EnvironmentOverrides {
		environment = append(environment, overrideName+environmentAssignmentSeparatorConstant+overrideValue)
	}
	return environment
}

// filterStructuredOutput drops zap's JSON log lines so assertions see only the
// human-readable command output.
func filterStructuredOutput(rawOutput string) string {
	outputLines := strings.Split(rawOutput, "\n")
	var filteredLines []string
	for _, outputLine := range outputLines {
		trimmedLine := strings.TrimSpace(outputLine)
		if len(trimmedLine) == 0 {
			continue
		}
		if strings.HasPrefix(trimmedLine, structuredLinePrefixConstant) {
			continue
		}
		filteredLines = append(filteredLines, outputLine)
	}
	if len(filteredLines) == 0 {
		return ""
	}
	return strings.Join(filteredLines, "\n") + "\n"
}
