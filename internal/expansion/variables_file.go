package expansion

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	variablesFileReadErrorTemplateConstant  = "failed to read variables file %s: %w"
	variablesFileParseErrorTemplateConstant = "failed to parse variables file %s: %w"
	variablesFileEmptyNameTemplateConstant  = "variables file %s contains an empty variable name"
)

// LoadVariablesFile reads a YAML file mapping variable names to replacement values.
func LoadVariablesFile(variablesFilePath string) (map[string]string, error) {
	fileContents, readError := os.ReadFile(variablesFilePath)
	if readError != nil {
		return nil, fmt.Errorf(variablesFileReadErrorTemplateConstant, variablesFilePath, readError)
	}

	parsedVariables := map[string]string{}
	if unmarshalError := yaml.Unmarshal(fileContents, &parsedVariables); unmarshalError != nil {
		return nil, fmt.Errorf(variablesFileParseErrorTemplateConstant, variablesFilePath, unmarshalError)
	}

	variables := make(map[string]string, len(parsedVariables))
	for variableName, variableValue := range parsedVariables {
		trimmedName := strings.TrimSpace(variableName)
		if len(trimmedName) == 0 {
			return nil, fmt.Errorf(variablesFileEmptyNameTemplateConstant, variablesFilePath)
		}
		variables[trimmedName] = variableValue
	}

	return variables, nil
}
