package cli

import _ "embed"

//go:embed default_config.yaml
var defaultConfigurationTemplate []byte

// EmbeddedConfigurationTemplate copies the embedded starter configuration and
// reports its format identifier.
func EmbeddedConfigurationTemplate() ([]byte, string) {
	return append([]byte(nil), defaultConfigurationTemplate...), configurationTypeConstant
}
