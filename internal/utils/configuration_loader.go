package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configurationKeySeparatorConstant               = "."
	environmentKeySeparatorConstant                 = "_"
	configurationReadErrorTemplateConstant          = "failed to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
)

// ConfigurationLoader layers embedded defaults, configuration files, and environment overrides through Viper.
type ConfigurationLoader struct {
	fileBaseName         string
	fileType             string
	environmentPrefix    string
	searchPaths          []string
	embeddedDocument     []byte
	embeddedDocumentType string
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader that searches the provided paths and honors an environment prefix.
func NewConfigurationLoader(configurationName string, configurationType string, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	return &ConfigurationLoader{
		fileBaseName:      configurationName,
		fileType:          configurationType,
		environmentPrefix: environmentPrefix,
		searchPaths:       append([]string(nil), searchPaths...),
	}
}

// SetEmbeddedConfiguration stores embedded configuration data that seeds every load before user-provided files apply.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(configurationData []byte, configurationType string) {
	if loader == nil {
		return
	}

	loader.embeddedDocument = nil
	loader.embeddedDocumentType = strings.TrimSpace(configurationType)
	if len(configurationData) > 0 {
		loader.embeddedDocument = append([]byte(nil), configurationData...)
	}
}

// LoadConfiguration populates targetConfiguration from embedded data, defaults, configuration files, and environment variables.
// An explicit configurationFilePath bypasses the loader's search paths entirely.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	settings := viper.New()
	settings.SetConfigName(loader.fileBaseName)
	settings.SetConfigType(loader.fileType)

	if mergeError := loader.mergeEmbeddedDocument(settings); mergeError != nil {
		return LoadedConfiguration{}, mergeError
	}

	for defaultKey, defaultValue := range defaultValues {
		settings.SetDefault(defaultKey, defaultValue)
	}

	settings.SetEnvPrefix(loader.environmentPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer(configurationKeySeparatorConstant, environmentKeySeparatorConstant))
	settings.AutomaticEnv()

	if explicitPath := strings.TrimSpace(configurationFilePath); len(explicitPath) > 0 {
		settings.SetConfigFile(explicitPath)
	} else {
		for _, searchPath := range loader.searchPaths {
			settings.AddConfigPath(searchPath)
		}
	}

	if readError := settings.MergeInConfig(); readError != nil {
		if _, isNotFound := readError.(viper.ConfigFileNotFoundError); !isNotFound {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	if unmarshalError := settings.Unmarshal(targetConfiguration); unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	return LoadedConfiguration{ConfigFileUsed: settings.ConfigFileUsed()}, nil
}

// mergeEmbeddedDocument merges embedded configuration data while preserving the loader's file type.
func (loader *ConfigurationLoader) mergeEmbeddedDocument(settings *viper.Viper) error {
	if len(loader.embeddedDocument) == 0 {
		return nil
	}

	documentType := loader.embeddedDocumentType
	if len(documentType) == 0 {
		documentType = loader.fileType
	}

	settings.SetConfigType(documentType)
	if mergeError := settings.MergeConfig(bytes.NewReader(loader.embeddedDocument)); mergeError != nil {
		return fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
	}
	settings.SetConfigType(loader.fileType)

	return nil
}
