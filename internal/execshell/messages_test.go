package execshell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForFieldUpdateNamesFieldAndWorkItem(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandAzure,
		Details: CommandDetails{
			Arguments: []string{"boards", "work-item", "update", "--id", "214", "--fields", "System.Tags=release", "--output", "json"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Updating field System.Tags on work item 214", message)
}

func TestBuildStartedMessageForRelationAddIncludesParentIdentifier(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandAzure,
		Details: CommandDetails{
			Arguments: []string{"boards", "work-item", "relation", "add", "--id", "215", "--relation-type", "parent", "--target-id", "214", "--output", "json"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Linking work item 215 to parent 214", message)
}

func TestBuildFailureMessageForCreateIncludesExitCodeAndStderr(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandAzure,
		Details: CommandDetails{
			Arguments: []string{"boards", "work-item", "create", "--type", "Task", "--title", "Build login form", "--output", "json"},
		},
	}
	result := ExecutionResult{ExitCode: 2, StandardError: "TF401347: invalid field\n"}

	message := formatter.BuildFailureMessage(command, result)

	require.Equal(t, "Failed to create Task work item titled \"Build login form\" (exit code 2: TF401347: invalid field)", message)
}

func TestBuildStartedMessageFallsBackToCommandLine(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name:    CommandAzure,
		Details: CommandDetails{Arguments: []string{"devops", "project", "list"}},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Running az devops project list", message)
}
