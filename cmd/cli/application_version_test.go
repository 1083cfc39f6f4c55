package cli

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	versionTestResolvedVersionConstant = "v3.1.4"
	versionTestExpectedOutputConstant  = "wiclone version: v3.1.4\n"
	versionTestExitSentinelConstant    = "halt-after-version"
)

// captureStandardOutput redirects os.Stdout around the action and returns everything it printed.
func captureStandardOutput(testInstance *testing.T, action func()) string {
	testInstance.Helper()

	readEnd, writeEnd, pipeError := os.Pipe()
	require.NoError(testInstance, pipeError)

	originalStdout := os.Stdout
	os.Stdout = writeEnd
	defer func() {
		os.Stdout = originalStdout
	}()

	action()

	os.Stdout = originalStdout
	require.NoError(testInstance, writeEnd.Close())

	capturedBytes, readError := io.ReadAll(readEnd)
	require.NoError(testInstance, readError)
	require.NoError(testInstance, readEnd.Close())

	return string(capturedBytes)
}

func TestExecutePrintsResolvedVersionBeforeCommandParsing(testInstance *testing.T) {
	application := NewApplication()
	application.versionResolver = func(context.Context) string {
		return versionTestResolvedVersionConstant
	}

	recordedExitCode := -1
	application.exitFunction = func(exitCode int) {
		recordedExitCode = exitCode
		panic(versionTestExitSentinelConstant)
	}

	originalArguments := os.Args
	testInstance.Cleanup(func() {
		os.Args = originalArguments
	})
	os.Args = []string{"wiclone", "--version"}

	capturedOutput := captureStandardOutput(testInstance, func() {
		require.PanicsWithValue(testInstance, versionTestExitSentinelConstant, func() {
			_ = application.Execute()
		})
	})

	require.Equal(testInstance, versionTestExpectedOutputConstant, capturedOutput)
	require.Zero(testInstance, recordedExitCode)
}
