package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/wiclone/internal/utils"
	pathutils "github.com/temirov/wiclone/internal/utils/path"
)

func TestHumanReadableLoggingEnabled(t *testing.T) {
	testCases := []struct {
		name             string
		configuredFormat string
		expectedReadable bool
	}{
		{name: "StructuredFormat", configuredFormat: string(utils.LogFormatStructured), expectedReadable: false},
		{name: "ConsoleFormat", configuredFormat: string(utils.LogFormatConsole), expectedReadable: true},
		{name: "ConsoleFormatPaddedUppercase", configuredFormat: "  CONSOLE  ", expectedReadable: true},
		{name: "EmptyFormat", configuredFormat: "", expectedReadable: false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			application := &Application{}
			application.configuration.Common.LogFormat = testCase.configuredFormat

			require.Equal(t, testCase.expectedReadable, application.humanReadableLoggingEnabled())
		})
	}
}

func TestResolveLogFilePathExpandsHomeShortcut(t *testing.T) {
	application := &Application{
		homeExpander: pathutils.NewHomeExpanderWithProvider(func() (string, error) {
			return "/home/wiclone", nil
		}),
	}
	application.configuration.Common.LogFile = " ~/logs/wiclone.log "

	require.Equal(t, "/home/wiclone/logs/wiclone.log", application.resolveLogFilePath())
}

func TestApplicationRegistersWorkItemCommands(t *testing.T) {
	application := NewApplication()

	commandNames := make([]string, 0)
	for _, subCommand := range application.rootCommand.Commands() {
		commandNames = append(commandNames, subCommand.Name())
	}

	require.Contains(t, commandNames, "clone")
	require.Contains(t, commandNames, "show")
}

func TestContainsVersionRequestHonorsTerminator(t *testing.T) {
	require.True(t, containsVersionRequest([]string{"--version"}))
	require.True(t, containsVersionRequest([]string{"clone", "--version"}))
	require.False(t, containsVersionRequest([]string{"--", "--version"}))
	require.False(t, containsVersionRequest([]string{"clone", "4711"}))
}

func TestConfigurationFileTargetPathResolvesScopes(t *testing.T) {
	userConfigurationDirectory, userConfigurationError := os.UserConfigDir()
	require.NoError(t, userConfigurationError)

	testCases := []struct {
		name           string
		requestedScope string
		expectedPath   string
		expectError    bool
	}{
		{name: "DefaultScope", requestedScope: "", expectedPath: "config.yaml"},
		{name: "LocalScope", requestedScope: "local", expectedPath: "config.yaml"},
		{name: "UserScope", requestedScope: "user", expectedPath: filepath.Join(userConfigurationDirectory, "wiclone", "config.yaml")},
		{name: "UnknownScope", requestedScope: "global", expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			application := &Application{initializeScopeFlagValue: testCase.requestedScope}

			targetPath, targetPathError := application.configurationFileTargetPath()
			if testCase.expectError {
				require.Error(t, targetPathError)
				return
			}

			require.NoError(t, targetPathError)
			require.Equal(t, testCase.expectedPath, targetPath)
		})
	}
}

func TestInitializeConfigurationFileProtectsExistingFiles(t *testing.T) {
	workingDirectory := t.TempDir()
	t.Chdir(workingDirectory)

	application := NewApplication()
	outputBuffer := &bytes.Buffer{}
	command := &cobra.Command{}
	command.SetOut(outputBuffer)

	require.NoError(t, application.initializeConfigurationFile(command))

	writtenContent, readError := os.ReadFile(filepath.Join(workingDirectory, "config.yaml"))
	require.NoError(t, readError)
	embeddedContent, _ := EmbeddedConfigurationTemplate()
	require.Equal(t, embeddedContent, writtenContent)
	require.Contains(t, outputBuffer.String(), "config.yaml")

	overwriteError := application.initializeConfigurationFile(command)
	require.Error(t, overwriteError)
	require.Contains(t, overwriteError.Error(), "already exists")

	application.forceOverwriteFlagValue = true
	require.NoError(t, application.initializeConfigurationFile(command))
}
