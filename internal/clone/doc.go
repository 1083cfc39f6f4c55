// Package clone implements work item tree cloning for wiclone.
//
// It offers CommandBuilder for the Cobra command, Service for the breadth
// first traversal that copies an item and its descendants while re-linking
// cloned children to cloned parents, and PreviewTracker for describing a run
// without creating anything.
package clone
