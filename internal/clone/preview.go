package clone

import (
	"context"
	"fmt"
	"io"

	"github.com/temirov/wiclone/internal/workitems"
)

const (
	previewCreateTemplateConstant        = "DRY-RUN: would create %s work item titled %q as %d\n"
	previewUpdateTemplateConstant        = "DRY-RUN: would update field %s on work item %d\n"
	previewRelationTemplateConstant      = "DRY-RUN: would add %s relation from work item %d to work item %d\n"
	firstSyntheticIdentifierConstant     = -1
	syntheticIdentifierDecrementConstant = 1
)

// PreviewTracker satisfies workitems.Tracker without mutating the tracker.
//
// Reads pass through to the wrapped tracker so the real tree drives the
// traversal. Writes describe what a live run would do and mint synthetic
// negative identifiers, keeping previewed clones distinguishable from any
// real work item.
type PreviewTracker struct {
	tracker                 workitems.Tracker
	outputWriter            io.Writer
	nextSyntheticIdentifier int
}

// NewPreviewTracker wraps tracker so write operations are described on outputWriter instead of executed.
func NewPreviewTracker(tracker workitems.Tracker, outputWriter io.Writer) (*PreviewTracker, error) {
	if tracker == nil {
		return nil, ErrTrackerNotConfigured
	}

	if outputWriter == nil {
		outputWriter = io.Discard
	}

	return &PreviewTracker{
		tracker:                 tracker,
		outputWriter:            outputWriter,
		nextSyntheticIdentifier: firstSyntheticIdentifierConstant,
	}, nil
}

// FetchWorkItem retrieves the work item from the wrapped tracker.
func (preview *PreviewTracker) FetchWorkItem(executionContext context.Context, workItemIdentifier int) (workitems.WorkItem, error) {
	return preview.tracker.FetchWorkItem(executionContext, workItemIdentifier)
}

// CreateWorkItem describes the creation and returns the next synthetic identifier.
func (preview *PreviewTracker) CreateWorkItem(executionContext context.Context, fields map[string]string) (int, error) {
	syntheticIdentifier := preview.nextSyntheticIdentifier
	preview.nextSyntheticIdentifier -= syntheticIdentifierDecrementConstant

	fmt.Fprintf(
		preview.outputWriter,
		previewCreateTemplateConstant,
		fields[workitems.WorkItemTypeFieldReferenceName],
		fields[workitems.TitleFieldReferenceName],
		syntheticIdentifier,
	)

	return syntheticIdentifier, nil
}

// UpdateWorkItemField describes the field update without submitting it.
func (preview *PreviewTracker) UpdateWorkItemField(executionContext context.Context, workItemIdentifier int, fieldReferenceName string, fieldValue string) error {
	fmt.Fprintf(preview.outputWriter, previewUpdateTemplateConstant, fieldReferenceName, workItemIdentifier)
	return nil
}

// AddWorkItemRelation describes the relation without submitting it.
func (preview *PreviewTracker) AddWorkItemRelation(executionContext context.Context, workItemIdentifier int, relationType string, targetWorkItemIdentifier int) error {
	fmt.Fprintf(preview.outputWriter, previewRelationTemplateConstant, relationType, workItemIdentifier, targetWorkItemIdentifier)
	return nil
}
