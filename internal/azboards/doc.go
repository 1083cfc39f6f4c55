// Package azboards implements the work item tracker contract on top of the
// Azure DevOps CLI (az boards), decoding its JSON responses into workitems
// types.
package azboards
