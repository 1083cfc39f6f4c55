package workitems

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	relationTargetSegmentSeparatorConstant   = "/"
	relationTargetMissingMessageConstant     = "relation target url is empty"
	relationTargetParseErrorTemplateConstant = "relation target %q does not end in a work item identifier: %w"
	childRelationNameConstant                = "Child"
	parentRelationNameConstant               = "Parent"
	parentRelationTypeConstant               = "parent"
)

// Relation attribute names reported by the tracker for hierarchy links.
const (
	// ChildRelationName identifies relations pointing at child work items.
	ChildRelationName = childRelationNameConstant
	// ParentRelationName identifies relations pointing at the parent work item.
	ParentRelationName = parentRelationNameConstant
)

// ParentRelationType names the relation type used when linking a clone to its cloned parent.
const ParentRelationType = parentRelationTypeConstant

// ErrRelationTargetMissing indicates a relation carried no target URL.
var ErrRelationTargetMissing = errors.New(relationTargetMissingMessageConstant)

// WorkItem describes a tracker work item with its scalar fields and relations.
type WorkItem struct {
	ID        int
	Fields    map[string]string
	Relations []Relation
}

// Field returns the named field value and whether the work item carries it.
func (workItem WorkItem) Field(fieldReferenceName string) (string, bool) {
	fieldValue, fieldExists := workItem.Fields[fieldReferenceName]
	return fieldValue, fieldExists
}

// Relation links a work item to another tracker entity by attribute name and target URL.
type Relation struct {
	Name      string
	TargetURL string
}

// TargetWorkItemID extracts the numeric work item identifier from the final relation URL segment.
func (relation Relation) TargetWorkItemID() (int, error) {
	trimmedTargetURL := strings.TrimSpace(relation.TargetURL)
	if len(trimmedTargetURL) == 0 {
		return 0, ErrRelationTargetMissing
	}

	trimmedTargetURL = strings.TrimSuffix(trimmedTargetURL, relationTargetSegmentSeparatorConstant)
	identifierSegment := trimmedTargetURL
	if separatorIndex := strings.LastIndex(trimmedTargetURL, relationTargetSegmentSeparatorConstant); separatorIndex >= 0 {
		identifierSegment = trimmedTargetURL[separatorIndex+1:]
	}

	workItemIdentifier, parseError := strconv.Atoi(identifierSegment)
	if parseError != nil {
		return 0, fmt.Errorf(relationTargetParseErrorTemplateConstant, relation.TargetURL, parseError)
	}

	return workItemIdentifier, nil
}

// Tracker abstracts the issue tracker operations required to clone work item trees.
type Tracker interface {
	// FetchWorkItem retrieves a work item with its fields and relations.
	FetchWorkItem(executionContext context.Context, workItemIdentifier int) (WorkItem, error)
	// CreateWorkItem creates a work item from the supplied fields and returns the new identifier.
	CreateWorkItem(executionContext context.Context, fields map[string]string) (int, error)
	// UpdateWorkItemField sets a single field on an existing work item.
	UpdateWorkItemField(executionContext context.Context, workItemIdentifier int, fieldReferenceName string, fieldValue string) error
	// AddWorkItemRelation links a work item to a target work item using the named relation type.
	AddWorkItemRelation(executionContext context.Context, workItemIdentifier int, relationType string, targetWorkItemIdentifier int) error
}
