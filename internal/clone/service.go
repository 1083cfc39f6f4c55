package clone

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/wiclone/internal/expansion"
	"github.com/temirov/wiclone/internal/workitems"
)

const (
	trackerMissingMessageConstant         = "work item tracker not configured"
	transformerMissingMessageConstant     = "field transformer not configured"
	rootIdentifierRequiredMessageConstant = "root work item identifier must be a positive integer"
	fetchFailureTemplateConstant          = "failed to fetch work item %d: %w"
	createFailureTemplateConstant         = "failed to create clone of work item %d: %w"
	fieldUpdateFailureTemplateConstant    = "failed to update field %s on work item %d: %w"
	relationFailureTemplateConstant       = "failed to link work item %d to parent %d: %w"
	cloneReportTemplateConstant           = "CLONED: %d -> %d\n"
	workItemClonedMessageConstant         = "work item cloned"
	childRelationSkippedMessageConstant   = "skipping child relation without a numeric work item target"
	logFieldOriginalIdentifierConstant    = "original_id"
	logFieldCloneIdentifierConstant       = "clone_id"
	logFieldRelationTargetConstant        = "relation_target"
)

// ErrTrackerNotConfigured indicates the tracker dependency was missing.
var ErrTrackerNotConfigured = errors.New(trackerMissingMessageConstant)

// ErrTransformerNotConfigured indicates the field transformer dependency was missing.
var ErrTransformerNotConfigured = errors.New(transformerMissingMessageConstant)

// ErrRootWorkItemIdentifierRequired indicates the clone run was requested without a positive root identifier.
var ErrRootWorkItemIdentifierRequired = errors.New(rootIdentifierRequiredMessageConstant)

// Field values rewritten by the transformer before creation. The remaining
// core fields are classification and typing values copied verbatim.
var transformedFieldReferenceNames = map[string]struct{}{
	workitems.TitleFieldReferenceName:       {},
	workitems.DescriptionFieldReferenceName: {},
}

// Dependencies enumerates external collaborators required for clone operations.
type Dependencies struct {
	Tracker                  workitems.Tracker
	Transformer              *expansion.Transformer
	Logger                   *zap.Logger
	OutputWriter             io.Writer
	ExtraFieldReferenceNames []string
}

// Options configures a clone run.
type Options struct {
	RootWorkItemID int
	CloneChildren  bool
}

// Result captures the observable outcomes of a clone run.
type Result struct {
	RootCloneID  int
	CreatedCount int
}

// Service clones work item trees breadth first, re-linking every cloned child
// to its cloned parent instead of the original.
type Service struct {
	tracker                  workitems.Tracker
	transformer              *expansion.Transformer
	logger                   *zap.Logger
	outputWriter             io.Writer
	extraFieldReferenceNames []string
}

// cloneTask pairs an original work item with the clone its copy must attach to.
type cloneTask struct {
	originalIdentifier    int
	parentCloneIdentifier int
	hasParentClone        bool
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.Tracker == nil {
		return nil, ErrTrackerNotConfigured
	}
	if dependencies.Transformer == nil {
		return nil, ErrTransformerNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	outputWriter := dependencies.OutputWriter
	if outputWriter == nil {
		outputWriter = io.Discard
	}

	extraFieldReferenceNames := dependencies.ExtraFieldReferenceNames
	if extraFieldReferenceNames == nil {
		extraFieldReferenceNames = workitems.DefaultExtraFieldReferenceNames()
	}

	return &Service{
		tracker:                  dependencies.Tracker,
		transformer:              dependencies.Transformer,
		logger:                   logger,
		outputWriter:             outputWriter,
		extraFieldReferenceNames: extraFieldReferenceNames,
	}, nil
}

// Clone copies the requested work item and, when options ask for children,
// its descendants reachable through child relations.
//
// Each dequeued item is fully processed before the next: fetch the original,
// create the clone, copy extra fields, attach the parent relation, then
// discover children. Clones receive fresh identifiers, so children can only
// be linked after their parent's clone exists; the traversal is strictly
// sequential for that reason. Any tracker failure aborts the run immediately
// and clones created before the failure remain in place.
func (service *Service) Clone(executionContext context.Context, options Options) (Result, error) {
	if options.RootWorkItemID <= 0 {
		return Result{}, ErrRootWorkItemIdentifierRequired
	}

	visitedIdentifiers := map[int]struct{}{}
	taskQueue := []cloneTask{{originalIdentifier: options.RootWorkItemID}}

	runResult := Result{}
	for len(taskQueue) > 0 {
		currentTask := taskQueue[0]
		taskQueue = taskQueue[1:]

		if _, alreadyVisited := visitedIdentifiers[currentTask.originalIdentifier]; alreadyVisited {
			continue
		}
		visitedIdentifiers[currentTask.originalIdentifier] = struct{}{}

		originalWorkItem, fetchError := service.tracker.FetchWorkItem(executionContext, currentTask.originalIdentifier)
		if fetchError != nil {
			return Result{}, fmt.Errorf(fetchFailureTemplateConstant, currentTask.originalIdentifier, fetchError)
		}

		cloneIdentifier, createError := service.tracker.CreateWorkItem(executionContext, service.buildCloneFields(originalWorkItem))
		if createError != nil {
			return Result{}, fmt.Errorf(createFailureTemplateConstant, currentTask.originalIdentifier, createError)
		}

		if copyError := service.copyExtraFields(executionContext, originalWorkItem, cloneIdentifier); copyError != nil {
			return Result{}, copyError
		}

		if currentTask.hasParentClone {
			relationError := service.tracker.AddWorkItemRelation(executionContext, cloneIdentifier, workitems.ParentRelationType, currentTask.parentCloneIdentifier)
			if relationError != nil {
				return Result{}, fmt.Errorf(relationFailureTemplateConstant, cloneIdentifier, currentTask.parentCloneIdentifier, relationError)
			}
		}

		if runResult.CreatedCount == 0 {
			runResult.RootCloneID = cloneIdentifier
		}
		runResult.CreatedCount++

		fmt.Fprintf(service.outputWriter, cloneReportTemplateConstant, currentTask.originalIdentifier, cloneIdentifier)
		service.logger.Info(
			workItemClonedMessageConstant,
			zap.Int(logFieldOriginalIdentifierConstant, currentTask.originalIdentifier),
			zap.Int(logFieldCloneIdentifierConstant, cloneIdentifier),
		)

		if options.CloneChildren {
			taskQueue = append(taskQueue, service.discoverChildTasks(originalWorkItem, cloneIdentifier, visitedIdentifiers)...)
		}
	}

	return runResult, nil
}

// buildCloneFields assembles the creation field set from the original's core
// fields, expanding and escaping the templated values.
func (service *Service) buildCloneFields(originalWorkItem workitems.WorkItem) map[string]string {
	coreFieldReferenceNames := workitems.CoreFieldReferenceNames()

	cloneFields := make(map[string]string, len(coreFieldReferenceNames))
	for _, fieldReferenceName := range coreFieldReferenceNames {
		fieldValue, hasField := originalWorkItem.Field(fieldReferenceName)
		if !hasField {
			continue
		}
		if _, requiresTransformation := transformedFieldReferenceNames[fieldReferenceName]; requiresTransformation {
			fieldValue = service.transformer.ExpandAndEscape(fieldValue)
		}
		cloneFields[fieldReferenceName] = fieldValue
	}

	return cloneFields
}

// copyExtraFields updates the clone with every configured extra field carried
// by the original. The tracker accepts one field per update call, so each
// field is submitted separately in configuration order.
func (service *Service) copyExtraFields(executionContext context.Context, originalWorkItem workitems.WorkItem, cloneIdentifier int) error {
	for _, fieldReferenceName := range service.extraFieldReferenceNames {
		fieldValue, hasField := originalWorkItem.Field(fieldReferenceName)
		if !hasField || len(fieldValue) == 0 {
			continue
		}

		transformedValue := service.transformer.ExpandAndEscape(fieldValue)
		if updateError := service.tracker.UpdateWorkItemField(executionContext, cloneIdentifier, fieldReferenceName, transformedValue); updateError != nil {
			return fmt.Errorf(fieldUpdateFailureTemplateConstant, fieldReferenceName, cloneIdentifier, updateError)
		}
	}

	return nil
}

// discoverChildTasks queues the original's children for cloning underneath
// the freshly created clone. Relations without a parseable work item target
// are logged and skipped; identifiers already visited are not re-enqueued, so
// cyclic relation data cannot loop the traversal.
func (service *Service) discoverChildTasks(originalWorkItem workitems.WorkItem, cloneIdentifier int, visitedIdentifiers map[int]struct{}) []cloneTask {
	childTasks := make([]cloneTask, 0, len(originalWorkItem.Relations))
	for _, relation := range originalWorkItem.Relations {
		if relation.Name != workitems.ChildRelationName {
			continue
		}

		childIdentifier, targetError := relation.TargetWorkItemID()
		if targetError != nil {
			service.logger.Warn(
				childRelationSkippedMessageConstant,
				zap.Int(logFieldOriginalIdentifierConstant, originalWorkItem.ID),
				zap.String(logFieldRelationTargetConstant, relation.TargetURL),
				zap.Error(targetError),
			)
			continue
		}

		if _, alreadyVisited := visitedIdentifiers[childIdentifier]; alreadyVisited {
			continue
		}

		childTasks = append(childTasks, cloneTask{
			originalIdentifier:    childIdentifier,
			parentCloneIdentifier: cloneIdentifier,
			hasParentClone:        true,
		})
	}

	return childTasks
}
