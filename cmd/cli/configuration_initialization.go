package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	flagutils "github.com/temirov/wiclone/internal/utils/flags"
)

const (
	initializeFlagNameConstant                      = "init"
	initializeFlagDescriptionConstant               = "Write a starter configuration file to the chosen scope"
	forceOverwriteFlagNameConstant                  = "force"
	forceOverwriteFlagUsageConstant                 = "Overwrite an existing configuration file during --init"
	initializeLocalScopeConstant                    = "local"
	initializeUserScopeConstant                     = "user"
	configurationFileNameConstant                   = "config.yaml"
	configurationFileWrittenTemplateConstant        = "Configuration written to %s\n"
	configurationFileWrittenMessageConstant         = "configuration file written"
	configurationFileExistsTemplateConstant         = "configuration file %s already exists (use --force to overwrite)"
	configurationFileInspectionTemplateConstant     = "failed to inspect configuration file %s: %w"
	configurationDirectoryCreationTemplateConstant  = "failed to create configuration directory %s: %w"
	configurationFileWriteTemplateConstant          = "failed to write configuration file %s: %w"
	userConfigurationDirectoryErrorTemplateConstant = "failed to resolve the user configuration directory: %w"
	unsupportedInitializeScopeTemplateConstant      = "unsupported configuration scope %q"
	configurationFilePermissionsConstant            = 0o600
	configurationDirectoryPermissionsConstant       = 0o755
)

var initializeScopeChoices = []string{initializeLocalScopeConstant, initializeUserScopeConstant}

// registerConfigurationInitializationFlags adds the --init scope flag and its
// --force companion to the root command. Supplying --init without a value
// targets the local scope.
func (application *Application) registerConfigurationInitializationFlags(command *cobra.Command) {
	command.Flags().StringVar(
		&application.initializeScopeFlagValue,
		initializeFlagNameConstant,
		"",
		flagutils.FormatChoiceUsage(initializeLocalScopeConstant, initializeScopeChoices, initializeFlagDescriptionConstant),
	)
	if initializeFlag := command.Flags().Lookup(initializeFlagNameConstant); initializeFlag != nil {
		initializeFlag.NoOptDefVal = initializeLocalScopeConstant
	}

	flagutils.AddToggleFlag(command.Flags(), &application.forceOverwriteFlagValue, forceOverwriteFlagNameConstant, "", false, forceOverwriteFlagUsageConstant)
}

// initializeConfigurationFile writes the embedded default configuration to the
// destination resolved from the requested scope. Existing files are preserved
// unless --force was supplied.
func (application *Application) initializeConfigurationFile(command *cobra.Command) error {
	targetPath, targetPathError := application.configurationFileTargetPath()
	if targetPathError != nil {
		return targetPathError
	}

	if _, statError := os.Stat(targetPath); statError == nil {
		if !application.forceOverwriteFlagValue {
			return fmt.Errorf(configurationFileExistsTemplateConstant, targetPath)
		}
	} else if !errors.Is(statError, fs.ErrNotExist) {
		return fmt.Errorf(configurationFileInspectionTemplateConstant, targetPath, statError)
	}

	targetDirectory := filepath.Dir(targetPath)
	if directoryError := os.MkdirAll(targetDirectory, configurationDirectoryPermissionsConstant); directoryError != nil {
		return fmt.Errorf(configurationDirectoryCreationTemplateConstant, targetDirectory, directoryError)
	}

	configurationContent, _ := EmbeddedConfigurationTemplate()
	if writeError := os.WriteFile(targetPath, configurationContent, configurationFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(configurationFileWriteTemplateConstant, targetPath, writeError)
	}

	application.logger.Info(configurationFileWrittenMessageConstant, zap.String(configurationFileFieldConstant, targetPath))
	fmt.Fprintf(command.OutOrStdout(), configurationFileWrittenTemplateConstant, targetPath)

	return nil
}

// configurationFileTargetPath maps the requested scope to a configuration file
// destination: the working directory for local scope, the user configuration
// directory for user scope.
func (application *Application) configurationFileTargetPath() (string, error) {
	requestedScope := strings.TrimSpace(application.initializeScopeFlagValue)
	if len(requestedScope) == 0 {
		requestedScope = initializeLocalScopeConstant
	}

	switch {
	case strings.EqualFold(requestedScope, initializeLocalScopeConstant):
		return configurationFileNameConstant, nil
	case strings.EqualFold(requestedScope, initializeUserScopeConstant):
		userConfigurationDirectory, userConfigurationError := os.UserConfigDir()
		if userConfigurationError != nil {
			return "", fmt.Errorf(userConfigurationDirectoryErrorTemplateConstant, userConfigurationError)
		}
		return filepath.Join(userConfigurationDirectory, userConfigurationDirectoryNameConstant, configurationFileNameConstant), nil
	default:
		return "", fmt.Errorf(unsupportedInitializeScopeTemplateConstant, requestedScope)
	}
}
