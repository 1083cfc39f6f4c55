package workitems

// Field reference names read from originals and written onto clones.
const (
	// WorkItemTypeFieldReferenceName stores the work item type (Bug, Task, User Story).
	WorkItemTypeFieldReferenceName = "System.WorkItemType"
	// TitleFieldReferenceName stores the work item title.
	TitleFieldReferenceName = "System.Title"
	// DescriptionFieldReferenceName stores the work item description markup.
	DescriptionFieldReferenceName = "System.Description"
	// AreaPathFieldReferenceName stores the area path classification.
	AreaPathFieldReferenceName = "System.AreaPath"
	// IterationPathFieldReferenceName stores the iteration path classification.
	IterationPathFieldReferenceName = "System.IterationPath"
	// TeamProjectFieldReferenceName stores the owning team project.
	TeamProjectFieldReferenceName = "System.TeamProject"
	// PriorityFieldReferenceName stores the backlog priority.
	PriorityFieldReferenceName = "Microsoft.VSTS.Common.Priority"
	// TagsFieldReferenceName stores the semicolon-delimited tag list.
	TagsFieldReferenceName = "System.Tags"
	// AcceptanceCriteriaFieldReferenceName stores acceptance criteria markup.
	AcceptanceCriteriaFieldReferenceName = "Microsoft.VSTS.Common.AcceptanceCriteria"
	// StoryPointsFieldReferenceName stores the story point estimate.
	StoryPointsFieldReferenceName = "Microsoft.VSTS.Scheduling.StoryPoints"
	// RemainingWorkFieldReferenceName stores the remaining work estimate.
	RemainingWorkFieldReferenceName = "Microsoft.VSTS.Scheduling.RemainingWork"
	// OriginalEstimateFieldReferenceName stores the original work estimate.
	OriginalEstimateFieldReferenceName = "Microsoft.VSTS.Scheduling.OriginalEstimate"
	// SeverityFieldReferenceName stores the defect severity.
	SeverityFieldReferenceName = "Microsoft.VSTS.Common.Severity"
)

// CoreFieldReferenceNames lists the fields submitted with every clone creation when present on the original.
func CoreFieldReferenceNames() []string {
	return []string{
		WorkItemTypeFieldReferenceName,
		TitleFieldReferenceName,
		DescriptionFieldReferenceName,
		AreaPathFieldReferenceName,
		IterationPathFieldReferenceName,
		TeamProjectFieldReferenceName,
		PriorityFieldReferenceName,
	}
}

// DefaultExtraFieldReferenceNames lists the optional fields copied onto clones after creation, in update order.
func DefaultExtraFieldReferenceNames() []string {
	return []string{
		TagsFieldReferenceName,
		AcceptanceCriteriaFieldReferenceName,
		StoryPointsFieldReferenceName,
		RemainingWorkFieldReferenceName,
		OriginalEstimateFieldReferenceName,
		SeverityFieldReferenceName,
	}
}
