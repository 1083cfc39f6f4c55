package utils

import "context"

type commandContextKey string

const loadedConfigurationPathKey = commandContextKey("loadedConfigurationPath")

// WithLoadedConfigurationPath returns a child context recording which
// configuration file the CLI resolved during startup.
func WithLoadedConfigurationPath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, loadedConfigurationPathKey, configurationFilePath)
}

// LoadedConfigurationPath reports the configuration file path recorded on the
// context, when one was stored.
func LoadedConfigurationPath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	recordedPath, recorded := executionContext.Value(loadedConfigurationPathKey).(string)
	return recordedPath, recorded
}
