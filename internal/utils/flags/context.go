// Package flags provides shared flag names and parsing helpers for wiclone commands.
package flags

import "github.com/spf13/pflag"

const (
	// ChildrenFlagName exposes the shared clone-children toggle flag name.
	ChildrenFlagName = "children"
	// ChildrenFlagUsage describes the clone-children toggle purpose.
	ChildrenFlagUsage = "Clone child work items recursively"
	// DryRunFlagName exposes the shared dry-run toggle flag name.
	DryRunFlagName = "dry-run"
	// DryRunFlagUsage describes the shared dry-run toggle purpose.
	DryRunFlagUsage = "Preview tracker writes without creating work items"
	// OrganizationFlagName exposes the shared organization flag name.
	OrganizationFlagName = "organization"
	// OrganizationFlagUsage describes the shared organization flag purpose.
	OrganizationFlagUsage = "Azure DevOps organization URL (defaults to the az CLI configuration)"
	// VariableFlagName exposes the expansion variable flag name.
	VariableFlagName = "var"
	// VariableFlagUsage describes the expansion variable flag purpose.
	VariableFlagUsage = "Expansion variable in Name=Value form (repeatable)"
	// VariablesFileFlagName exposes the expansion variables file flag name.
	VariablesFileFlagName = "vars-file"
	// VariablesFileFlagUsage describes the expansion variables file flag purpose.
	VariablesFileFlagUsage = "Path to a YAML file of expansion variables"
)

// AddOrganizationFlag registers the shared organization flag when the flag set does not already carry it.
func AddOrganizationFlag(flagSet *pflag.FlagSet) {
	if flagSet == nil {
		return
	}
	if flagSet.Lookup(OrganizationFlagName) == nil {
		flagSet.String(OrganizationFlagName, "", OrganizationFlagUsage)
	}
}
