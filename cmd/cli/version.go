package cli

import (
	"context"
	"runtime/debug"
	"strings"
)

const (
	versionFlagArgumentConstant     = "--version"
	argumentTerminatorConstant      = "--"
	versionOutputTemplateConstant   = "%s version: %s\n"
	developmentVersionValueConstant = "development"
)

// resolveApplicationVersion reports the module version recorded in the build
// information, falling back to a development marker for local builds.
func resolveApplicationVersion(context.Context) string {
	buildInformation, buildInformationAvailable := debug.ReadBuildInfo()
	if !buildInformationAvailable || len(strings.TrimSpace(buildInformation.Main.Version)) == 0 {
		return developmentVersionValueConstant
	}

	return buildInformation.Main.Version
}

func containsVersionRequest(arguments []string) bool {
	for _, argument := range arguments {
		if argument == argumentTerminatorConstant {
			return false
		}
		if argument == versionFlagArgumentConstant {
			return true
		}
	}

	return false
}
