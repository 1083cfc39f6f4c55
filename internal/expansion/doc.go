// Package expansion transforms work item text before submission.
//
// Transformer expands {{Token}} placeholders against a fixed variable map and
// escapes double quotes for the tracker CLI boundary; LoadVariablesFile reads
// variable definitions from YAML files.
package expansion
