package show

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/temirov/wiclone/internal/azboards"
	flagutils "github.com/temirov/wiclone/internal/utils/flags"
	"github.com/temirov/wiclone/internal/workitems"
)

const (
	commandUseConstant                = "show <work-item-id>"
	commandShortDescriptionConstant   = "Display a work item's fields and relations"
	commandLongDescriptionConstant    = "show fetches a work item from the tracker and renders its identifier, fields, and relations as YAML."
	invalidIdentifierTemplateConstant = "work item identifier %q must be a positive integer"
	fetchFailureTemplateConstant      = "failed to fetch work item %d: %w"
	documentRenderingTemplateConstant = "failed to render work item %d: %w"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the show command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Tracker                      workitems.Tracker
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// workItemDocument shapes the rendered YAML output.
type workItemDocument struct {
	ID        int                `yaml:"id"`
	Fields    map[string]string  `yaml:"fields"`
	Relations []relationDocument `yaml:"relations,omitempty"`
}

type relationDocument struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
}

// Build constructs the show command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	flagutils.AddOrganizationFlag(command.Flags())

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	workItemIdentifier, identifierError := parseWorkItemIdentifier(arguments[0])
	if identifierError != nil {
		return identifierError
	}

	organization := configuration.Organization
	if command.Flags().Changed(flagutils.OrganizationFlagName) {
		flagValue, flagError := command.Flags().GetString(flagutils.OrganizationFlagName)
		if flagError != nil {
			return flagError
		}
		organization = strings.TrimSpace(flagValue)
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

	workItem, fetchError := tracker.FetchWorkItem(command.Context(), workItemIdentifier)
	if fetchError != nil {
		return fmt.Errorf(fetchFailureTemplateConstant, workItemIdentifier, fetchError)
	}

	renderedDocument, renderError := yaml.Marshal(buildWorkItemDocument(workItem))
	if renderError != nil {
		return fmt.Errorf(documentRenderingTemplateConstant, workItemIdentifier, renderError)
	}

	fmt.Fprint(command.OutOrStdout(), string(renderedDocument))
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

func buildWorkItemDocument(workItem workitems.WorkItem) workItemDocument {
	document := workItemDocument{
		ID:     workItem.ID,
		Fields: workItem.Fields,
	}
	for _, relation := range workItem.Relations {
		document.Relations = append(document.Relations, relationDocument{
			Name:   relation.Name,
			Target: relation.TargetURL,
		})
	}
	return document
}
