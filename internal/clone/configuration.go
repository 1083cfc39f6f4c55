package clone

import (
	"strings"

	"github.com/temirov/wiclone/internal/workitems"
)

const (
	childrenConfigurationKeyConstant     = "children"
	dryRunConfigurationKeyConstant       = "dry_run"
	organizationConfigurationKeyConstant = "organization"
	variablesConfigurationKeyConstant    = "variables"
	extraFieldsConfigurationKeyConstant  = "extra_fields"
)

// CommandConfiguration captures persisted configuration for the clone command.
type CommandConfiguration struct {
	CloneChildren            bool              `mapstructure:"children"`
	DryRun                   bool              `mapstructure:"dry_run"`
	Organization             string            `mapstructure:"organization"`
	Variables                map[string]string `mapstructure:"variables"`
	ExtraFieldReferenceNames []string          `mapstructure:"extra_fields"`
}

// DefaultCommandConfiguration returns baseline configuration values for the clone command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		CloneChildren:            false,
		DryRun:                   false,
		Organization:             "",
		Variables:                nil,
		ExtraFieldReferenceNames: workitems.DefaultExtraFieldReferenceNames(),
	}
}

// DefaultConfigurationValues produces Viper defaults for the clone command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + childrenConfigurationKeyConstant:     defaults.CloneChildren,
		rootKey + "." + dryRunConfigurationKeyConstant:       defaults.DryRun,
		rootKey + "." + organizationConfigurationKeyConstant: defaults.Organization,
		rootKey + "." + variablesConfigurationKeyConstant:    defaults.Variables,
		rootKey + "." + extraFieldsConfigurationKeyConstant:  defaults.ExtraFieldReferenceNames,
	}
}

// Sanitize trims configured values and restores defaults for empty entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Organization = strings.TrimSpace(configuration.Organization)
	sanitized.ExtraFieldReferenceNames = trimFieldReferenceNames(configuration.ExtraFieldReferenceNames)
	if len(sanitized.ExtraFieldReferenceNames) == 0 {
		sanitized.ExtraFieldReferenceNames = workitems.DefaultExtraFieldReferenceNames()
	}
	return sanitized
}

func trimFieldReferenceNames(raw []string) []string {
	trimmed := make([]string, 0, len(raw))
	for _, candidate := range raw {
		candidateName := strings.TrimSpace(candidate)
		if len(candidateName) == 0 {
			continue
		}
		trimmed = append(trimmed, candidateName)
	}
	return trimmed
}
