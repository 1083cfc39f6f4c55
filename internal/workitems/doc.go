// Package workitems defines the work item model shared across the CLI.
//
// It houses the WorkItem and Relation types, the Tracker interface satisfied
// by tracker-backed clients, and the field reference names used when reading
// originals and writing clones.
package workitems
