package clone

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/wiclone/internal/azboards"
	"github.com/temirov/wiclone/internal/expansion"
	"github.com/temirov/wiclone/internal/utils"
	flagutils "github.com/temirov/wiclone/internal/utils/flags"
	"github.com/temirov/wiclone/internal/workitems"
)

const (
	commandUseConstant                        = "clone <work-item-id>"
	commandShortDescriptionConstant           = "Clone a work item and optionally its descendants"
	commandLongDescriptionConstant            = "clone copies a work item, expands {{Variable}} placeholders in templated fields, and, when children are requested, clones the whole descendant tree while re-linking every cloned child to its cloned parent."
	invalidIdentifierTemplateConstant         = "work item identifier %q must be a positive integer"
	variableAssignmentSeparatorConstant       = "="
	invalidVariableAssignmentTemplateConstant = "variable assignment %q must use the Name=Value form"
	emptyVariableNameTemplateConstant         = "variable assignment %q has an empty variable name"
	dryRunSummaryTemplateConstant             = "DRY-RUN: %d work item(s) would be created\n"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the clone command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Tracker                      workitems.Tracker
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the clone command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	flagutils.AddToggleFlag(command.Flags(), nil, flagutils.ChildrenFlagName, "", false, flagutils.ChildrenFlagUsage)
	flagutils.AddToggleFlag(command.Flags(), nil, flagutils.DryRunFlagName, "", false, flagutils.DryRunFlagUsage)
	flagutils.AddOrganizationFlag(command.Flags())
	command.Flags().StringArray(flagutils.VariableFlagName, nil, flagutils.VariableFlagUsage)
	command.Flags().String(flagutils.VariablesFileFlagName, "", flagutils.VariablesFileFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	rootWorkItemIdentifier, identifierError := parseWorkItemIdentifier(arguments[0])
	if identifierError != nil {
		return identifierError
	}

	cloneChildren := configuration.CloneChildren
	if command.Flags().Changed(flagutils.ChildrenFlagName) {
		flagValue, flagError := command.Flags().GetBool(flagutils.ChildrenFlagName)
		if flagError != nil {
			return flagError
		}
		cloneChildren = flagValue
	}

	dryRun := configuration.DryRun
	if command.Flags().Changed(flagutils.DryRunFlagName) {
		flagValue, flagError := command.Flags().GetBool(flagutils.DryRunFlagName)
		if flagError != nil {
			return flagError
		}
		dryRun = flagValue
	}

	organization := configuration.Organization
	if command.Flags().Changed(flagutils.OrganizationFlagName) {
		flagValue, flagError := command.Flags().GetString(flagutils.OrganizationFlagName)
		if flagError != nil {
			return flagError
		}
		organization = strings.TrimSpace(flagValue)
	}

	variables, variablesError := resolveVariables(command, configuration.Variables)
	if variablesError != nil {
		return variablesError
	}

	logger := builder.resolveLogger()
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	tracker, trackerError := azboards.ResolveTracker(builder.Tracker, logger, humanReadableLogging, organization)
	if trackerError != nil {
		return trackerError
	}

	progressWriter := utils.NewFlushingWriter(command.OutOrStdout())
	serviceOutputWriter := progressWriter
	if dryRun {
		previewTracker, previewError := NewPreviewTracker(tracker, progressWriter)
		if previewError != nil {
			return previewError
		}
		tracker = previewTracker
		serviceOutputWriter = io.Discard
	}

	service, serviceCreationError := NewService(Dependencies{
		Tracker:                  tracker,
		Transformer:              expansion.NewTransformer(variables, logger),
		Logger:                   logger,
		OutputWriter:             serviceOutputWriter,
		ExtraFieldReferenceNames: configuration.ExtraFieldReferenceNames,
	})
	if serviceCreationError != nil {
		return serviceCreationError
	}

	runResult, cloneError := service.Clone(command.Context(), Options{
		RootWorkItemID: rootWorkItemIdentifier,
		CloneChildren:  cloneChildren,
	})
	if cloneError != nil {
		return cloneError
	}

	if dryRun {
		fmt.Fprintf(command.OutOrStdout(), dryRunSummaryTemplateConstant, runResult.CreatedCount)
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func parseWorkItemIdentifier(rawIdentifier string) (int, error) {
	workItemIdentifier, parseError := strconv.Atoi(strings.TrimSpace(rawIdentifier))
	if parseError != nil || workItemIdentifier <= 0 {
		return 0, fmt.Errorf(invalidIdentifierTemplateConstant, rawIdentifier)
	}
	return workItemIdentifier, nil
}

// resolveVariables merges expansion variables from configuration, the
// variables file, and repeated --var assignments, in ascending precedence.
func resolveVariables(command *cobra.Command, configuredVariables map[string]string) (map[string]string, error) {
	variables := make(map[string]string, len(configuredVariables))
	for variableName, variableValue := range configuredVariables {
		variables[variableName] = variableValue
	}

	if command.Flags().Changed(flagutils.VariablesFileFlagName) {
		variablesFilePath, flagError := command.Flags().GetString(flagutils.VariablesFileFlagName)
		if flagError != nil {
			return nil, flagError
		}
		fileVariables, loadError := expansion.LoadVariablesFile(strings.TrimSpace(variablesFilePath))
		if loadError != nil {
			return nil, loadError
		}
		for variableName, variableValue := range fileVariables {
			variables[variableName] = variableValue
		}
	}

	variableAssignments, flagError := command.Flags().GetStringArray(flagutils.VariableFlagName)
	if flagError != nil {
		return nil, flagError
	}
	for _, variableAssignment := range variableAssignments {
		separatorIndex := strings.Index(variableAssignment, variableAssignmentSeparatorConstant)
		if separatorIndex < 0 {
			return nil, fmt.Errorf(invalidVariableAssignmentTemplateConstant, variableAssignment)
		}
		variableName := strings.TrimSpace(variableAssignment[:separatorIndex])
		if len(variableName) == 0 {
			return nil, fmt.Errorf(emptyVariableNameTemplateConstant, variableAssignment)
		}
		variables[variableName] = variableAssignment[separatorIndex+1:]
	}

	return variables, nil
}
