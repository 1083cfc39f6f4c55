package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	boardsCommandGroupNameConstant          = "boards"
	boardsWorkItemCommandGroupNameConstant  = "work-item"
	boardsShowSubcommandNameConstant        = "show"
	boardsCreateSubcommandNameConstant      = "create"
	boardsUpdateSubcommandNameConstant      = "update"
	boardsRelationCommandGroupNameConstant  = "relation"
	boardsRelationAddSubcommandNameConstant = "add"
	boardsIdentifierFlagConstant            = "--id"
	boardsTypeFlagConstant                  = "--type"
	boardsTitleFlagConstant                 = "--title"
	boardsFieldsFlagConstant                = "--fields"
	boardsTargetIdentifierFlagConstant      = "--target-id"
	fieldAssignmentSeparatorConstant        = "="
)

const (
	workItemShowStartTemplateConstant                   = "Retrieving work item %s"
	workItemShowSuccessTemplateConstant                 = "Retrieved work item %s"
	workItemShowFailureTemplateConstant                 = "Failed to retrieve work item %s (exit code %d%s)"
	workItemShowExecutionFailureTemplateConstant        = "Unable to retrieve work item %s: %s"
	workItemCreateStartTemplateConstant                 = "Creating %s work item titled %q"
	workItemCreateSuccessTemplateConstant               = "Created %s work item titled %q"
	workItemCreateFailureTemplateConstant               = "Failed to create %s work item titled %q (exit code %d%s)"
	workItemCreateExecutionFailureTemplateConstant      = "Unable to create %s work item titled %q: %s"
	workItemUpdateStartTemplateConstant                 = "Updating field %s on work item %s"
	workItemUpdateSuccessTemplateConstant               = "Updated field %s on work item %s"
	workItemUpdateFailureTemplateConstant               = "Failed to update field %s on work item %s (exit code %d%s)"
	workItemUpdateExecutionFailureTemplateConstant      = "Unable to update field %s on work item %s: %s"
	workItemRelationAddStartTemplateConstant            = "Linking work item %s to parent %s"
	workItemRelationAddSuccessTemplateConstant          = "Linked work item %s to parent %s"
	workItemRelationAddFailureTemplateConstant          = "Failed to link work item %s to parent %s (exit code %d%s)"
	workItemRelationAddExecutionFailureTemplateConstant = "Unable to link work item %s to parent %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch command.Name {
	case CommandAzure:
		return formatter.describeAzureBoardsMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeAzureBoardsMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) < 3 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
	if strings.TrimSpace(arguments[0]) != boardsCommandGroupNameConstant || strings.TrimSpace(arguments[1]) != boardsWorkItemCommandGroupNameConstant {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(arguments[2])
	switch subcommand {
	case boardsShowSubcommandNameConstant:
		return formatter.describeWorkItemShowMessage(command, result, failure, stage)
	case boardsCreateSubcommandNameConstant:
		return formatter.describeWorkItemCreateMessage(command, result, failure, stage)
	case boardsUpdateSubcommandNameConstant:
		return formatter.describeWorkItemUpdateMessage(command, result, failure, stage)
	case boardsRelationCommandGroupNameConstant:
		if strings.TrimSpace(formatter.argumentAtIndex(arguments, 3)) == boardsRelationAddSubcommandNameConstant {
			return formatter.describeWorkItemRelationAddMessage(command, result, failure, stage)
		}
		return formatter.buildGenericMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeWorkItemShowMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workItemIdentifier := formatter.ensureValue(findFlagValue(command.Details.Arguments, boardsIdentifierFlagConstant))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(workItemShowStartTemplateConstant, workItemIdentifier)
	case messageStageSuccess:
		return fmt.Sprintf(workItemShowSuccessTemplateConstant, workItemIdentifier)
	case messageStageFailure:
		return fmt.Sprintf(workItemShowFailureTemplateConstant, workItemIdentifier, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(workItemShowExecutionFailureTemplateConstant, workItemIdentifier, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeWorkItemCreateMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workItemType := formatter.ensureValue(findFlagValue(arguments, boardsTypeFlagConstant))
	workItemTitle := formatter.ensureValue(findFlagValue(arguments, boardsTitleFlagConstant))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(workItemCreateStartTemplateConstant, workItemType, workItemTitle)
	case messageStageSuccess:
		return fmt.Sprintf(workItemCreateSuccessTemplateConstant, workItemType, workItemTitle)
	case messageStageFailure:
		return fmt.Sprintf(workItemCreateFailureTemplateConstant, workItemType, workItemTitle, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(workItemCreateExecutionFailureTemplateConstant, workItemType, workItemTitle, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeWorkItemUpdateMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workItemIdentifier := formatter.ensureValue(findFlagValue(arguments, boardsIdentifierFlagConstant))
	fieldReferenceName := formatter.ensureValue(formatter.extractFieldReferenceName(findFlagValue(arguments, boardsFieldsFlagConstant)))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(workItemUpdateStartTemplateConstant, fieldReferenceName, workItemIdentifier)
	case messageStageSuccess:
		return fmt.Sprintf(workItemUpdateSuccessTemplateConstant, fieldReferenceName, workItemIdentifier)
	case messageStageFailure:
		return fmt.Sprintf(workItemUpdateFailureTemplateConstant, fieldReferenceName, workItemIdentifier, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(workItemUpdateExecutionFailureTemplateConstant, fieldReferenceName, workItemIdentifier, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeWorkItemRelationAddMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	childIdentifier := formatter.ensureValue(findFlagValue(arguments, boardsIdentifierFlagConstant))
	parentIdentifier := formatter.ensureValue(findFlagValue(arguments, boardsTargetIdentifierFlagConstant))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(workItemRelationAddStartTemplateConstant, childIdentifier, parentIdentifier)
	case messageStageSuccess:
		return fmt.Sprintf(workItemRelationAddSuccessTemplateConstant, childIdentifier, parentIdentifier)
	case messageStageFailure:
		return fmt.Sprintf(workItemRelationAddFailureTemplateConstant, childIdentifier, parentIdentifier, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(workItemRelationAddExecutionFailureTemplateConstant, childIdentifier, parentIdentifier, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	workingDirectorySuffix := formatter.formatWorkingDirectorySuffix(command)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) argumentAtIndex(arguments []string, index int) string {
	if index >= 0 && index < len(arguments) {
		return arguments[index]
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) extractFieldReferenceName(fieldAssignment string) string {
	trimmedAssignment := strings.TrimSpace(fieldAssignment)
	if len(trimmedAssignment) == 0 {
		return emptyStringConstant
	}
	assignmentParts := strings.SplitN(trimmedAssignment, fieldAssignmentSeparatorConstant, 2)
	return strings.TrimSpace(assignmentParts[0])
}

func findFlagValue(arguments []string, flag string) string {
	for index := 0; index < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == flag && index+1 < len(arguments) {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return emptyStringConstant
}
