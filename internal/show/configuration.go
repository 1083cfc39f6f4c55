package show

import "strings"

const organizationConfigurationKeyConstant = "organization"

// CommandConfiguration captures persisted configuration for the show command.
type CommandConfiguration struct {
	Organization string `mapstructure:"organization"`
}

// DefaultCommandConfiguration returns baseline configuration values for the show command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{Organization: ""}
}

// DefaultConfigurationValues produces Viper defaults for the show command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + organizationConfigurationKeyConstant: defaults.Organization,
	}
}

// Sanitize trims configured values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Organization = strings.TrimSpace(configuration.Organization)
	return sanitized
}
