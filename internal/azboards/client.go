package azboards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/temirov/wiclone/internal/execshell"
	"github.com/temirov/wiclone/internal/workitems"
)

const (
	boardsSubcommandConstant                 = "boards"
	workItemSubcommandConstant               = "work-item"
	showSubcommandConstant                   = "show"
	createSubcommandConstant                 = "create"
	updateSubcommandConstant                 = "update"
	relationSubcommandConstant               = "relation"
	addSubcommandConstant                    = "add"
	identifierFlagConstant                   = "--id"
	typeFlagConstant                         = "--type"
	titleFlagConstant                        = "--title"
	descriptionFlagConstant                  = "--description"
	areaFlagConstant                         = "--area"
	iterationFlagConstant                    = "--iteration"
	projectFlagConstant                      = "--project"
	fieldsFlagConstant                       = "--fields"
	relationTypeFlagConstant                 = "--relation-type"
	targetIdentifierFlagConstant             = "--target-id"
	outputFlagConstant                       = "--output"
	outputFormatJSONConstant                 = "json"
	organizationFlagConstant                 = "--organization"
	fieldAssignmentTemplateConstant          = "%s=%s"
	workItemTypeFieldNameConstant            = "work item type"
	workItemTitleFieldNameConstant           = "work item title"
	fieldReferenceNameFieldNameConstant      = "field reference name"
	requiredValueMessageConstant             = "value required"
	executorNotConfiguredMessageConstant     = "azure devops cli executor not configured"
	operationErrorMessageTemplateConstant    = "%s operation failed"
	operationErrorWithCauseTemplateConstant  = "%s operation failed: %s"
	responseDecodingErrorTemplateConstant    = "%s response decoding failed: %s"
	invalidInputErrorTemplateConstant        = "%s: %s"
	fetchWorkItemOperationNameConstant       = OperationName("FetchWorkItem")
	createWorkItemOperationNameConstant      = OperationName("CreateWorkItem")
	updateWorkItemFieldOperationNameConstant = OperationName("UpdateWorkItemField")
	addWorkItemRelationOperationNameConstant = OperationName("AddWorkItemRelation")
)

// OperationName describes a named Azure DevOps CLI workflow supported by the client.
type OperationName string

// createDedicatedFlagBindings maps core field reference names to the dedicated
// az boards work-item create flags, in the order the flags are emitted.
var createDedicatedFlagBindings = []struct {
	fieldReferenceName string
	flagName           string
}{
	{workitems.DescriptionFieldReferenceName, descriptionFlagConstant},
	{workitems.AreaPathFieldReferenceName, areaFlagConstant},
	{workitems.IterationPathFieldReferenceName, iterationFlagConstant},
	{workitems.TeamProjectFieldReferenceName, projectFlagConstant},
}

// AzureCommandExecutor is the minimal interface required from execshell.ShellExecutor.
type AzureCommandExecutor interface {
	ExecuteAzureCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ClientOptions configures optional client behavior.
type ClientOptions struct {
	// Organization holds the Azure DevOps organization URL passed to every invocation when set.
	Organization string
}

// Client coordinates Azure DevOps CLI invocations through execshell.
type Client struct {
	executor     AzureCommandExecutor
	organization string
}

var (
	// ErrExecutorNotConfigured indicates the client was constructed without an executor.
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
)

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// OperationError wraps execution issues for Azure DevOps CLI operations.
type OperationError struct {
	Operation OperationName
	Cause     error
}

// Error describes the operation failure.
func (operationError OperationError) Error() string {
	if operationError.Cause == nil {
		return fmt.Sprintf(operationErrorMessageTemplateConstant, operationError.Operation)
	}
	return fmt.Sprintf(operationErrorWithCauseTemplateConstant, operationError.Operation, operationError.Cause)
}

// Unwrap exposes the underlying cause.
func (operationError OperationError) Unwrap() error {
	return operationError.Cause
}

// ResponseDecodingError indicates JSON decoding failures.
type ResponseDecodingError struct {
	Operation OperationName
	Cause     error
}

// Error describes the decoding failure.
func (decodingError ResponseDecodingError) Error() string {
	return fmt.Sprintf(responseDecodingErrorTemplateConstant, decodingError.Operation, decodingError.Cause)
}

// Unwrap exposes the underlying JSON error.
func (decodingError ResponseDecodingError) Unwrap() error {
	return decodingError.Cause
}

// NewClient constructs an Azure DevOps CLI client.
func NewClient(executor AzureCommandExecutor, options ClientOptions) (*Client, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Client{executor: executor, organization: strings.TrimSpace(options.Organization)}, nil
}

// FetchWorkItem retrieves a work item using az boards work-item show.
//
// Field values are flattened to strings: numbers lose no precision, booleans
// become true/false, and null or composite values are omitted entirely so the
// resulting map only carries fields a clone can copy.
func (client *Client) FetchWorkItem(executionContext context.Context, workItemIdentifier int) (workitems.WorkItem, error) {
	arguments := []string{
		boardsSubcommandConstant,
		workItemSubcommandConstant,
		showSubcommandConstant,
		identifierFlagConstant,
		strconv.Itoa(workItemIdentifier),
	}
	arguments = client.appendOutputAndOrganization(arguments)

	executionResult, executionError := client.executor.ExecuteAzureCLI(executionContext, execshell.CommandDetails{Arguments: arguments})
	if executionError != nil {
		return workitems.WorkItem{}, OperationError{Operation: fetchWorkItemOperationNameConstant, Cause: executionError}
	}

	var response struct {
		ID        int            `json:"id"`
		Fields    map[string]any `json:"fields"`
		Relations []struct {
			Attributes struct {
				Name string `json:"name"`
			} `json:"attributes"`
			URL string `json:"url"`
		} `json:"relations"`
	}

	decodingError := json.Unmarshal([]byte(executionResult.StandardOutput), &response)
	if decodingError != nil {
		return workitems.WorkItem{}, ResponseDecodingError{Operation: fetchWorkItemOperationNameConstant, Cause: decodingError}
	}

	workItem := workitems.WorkItem{
		ID:     response.ID,
		Fields: make(map[string]string, len(response.Fields)),
	}
	for fieldReferenceName, fieldValue := range response.Fields {
		if stringValue, representable := stringifyFieldValue(fieldValue); representable {
			workItem.Fields[fieldReferenceName] = stringValue
		}
	}
	for _, relationEntry := range response.Relations {
		workItem.Relations = append(workItem.Relations, workitems.Relation{
			Name:      relationEntry.Attributes.Name,
			TargetURL: relationEntry.URL,
		})
	}

	return workItem, nil
}

// CreateWorkItem creates a work item using az boards work-item create and returns the new identifier.
//
// Core fields with dedicated az flags are bound to those flags; every other
// field travels as a name=value assignment after a single --fields flag, in
// sorted order so invocations stay deterministic.
func (client *Client) CreateWorkItem(executionContext context.Context, fields map[string]string) (int, error) {
	workItemType := strings.TrimSpace(fields[workitems.WorkItemTypeFieldReferenceName])
	if len(workItemType) == 0 {
		return 0, InvalidInputError{FieldName: workItemTypeFieldNameConstant, Message: requiredValueMessageConstant}
	}
	workItemTitle := fields[workitems.TitleFieldReferenceName]
	if len(strings.TrimSpace(workItemTitle)) == 0 {
		return 0, InvalidInputError{FieldName: workItemTitleFieldNameConstant, Message: requiredValueMessageConstant}
	}

	arguments := []string{
		boardsSubcommandConstant,
		workItemSubcommandConstant,
		createSubcommandConstant,
		typeFlagConstant,
		workItemType,
		titleFlagConstant,
		workItemTitle,
	}
	for _, flagBinding := range createDedicatedFlagBindings {
		if fieldValue, hasField := fields[flagBinding.fieldReferenceName]; hasField && len(fieldValue) > 0 {
			arguments = append(arguments, flagBinding.flagName, fieldValue)
		}
	}
	if fieldAssignments := client.collectRemainingFieldAssignments(fields); len(fieldAssignments) > 0 {
		arguments = append(arguments, fieldsFlagConstant)
		arguments = append(arguments, fieldAssignments...)
	}
	arguments = client.appendOutputAndOrganization(arguments)

	executionResult, executionError := client.executor.ExecuteAzureCLI(executionContext, execshell.CommandDetails{Arguments: arguments})
	if executionError != nil {
		return 0, OperationError{Operation: createWorkItemOperationNameConstant, Cause: executionError}
	}

	var response struct {
		ID int `json:"id"`
	}

	decodingError := json.Unmarshal([]byte(executionResult.StandardOutput), &response)
	if decodingError != nil {
		return 0, ResponseDecodingError{Operation: createWorkItemOperationNameConstant, Cause: decodingError}
	}

	return response.ID, nil
}

// UpdateWorkItemField sets a single field using az boards work-item update.
func (client *Client) UpdateWorkItemField(executionContext context.Context, workItemIdentifier int, fieldReferenceName string, fieldValue string) error {
	trimmedFieldReferenceName := strings.TrimSpace(fieldReferenceName)
	if len(trimmedFieldReferenceName) == 0 {
		return InvalidInputError{FieldName: fieldReferenceNameFieldNameConstant, Message: requiredValueMessageConstant}
	}

	arguments := []string{
		boardsSubcommandConstant,
		workItemSubcommandConstant,
		updateSubcommandConstant,
		identifierFlagConstant,
		strconv.Itoa(workItemIdentifier),
		fieldsFlagConstant,
		fmt.Sprintf(fieldAssignmentTemplateConstant, trimmedFieldReferenceName, fieldValue),
	}
	arguments = client.appendOutputAndOrganization(arguments)

	_, executionError := client.executor.ExecuteAzureCLI(executionContext, execshell.CommandDetails{Arguments: arguments})
	if executionError != nil {
		return OperationError{Operation: updateWorkItemFieldOperationNameConstant, Cause: executionError}
	}

	return nil
}

// AddWorkItemRelation links a work item to a target using az boards work-item relation add.
func (client *Client) AddWorkItemRelation(executionContext context.Context, workItemIdentifier int, relationType string, targetIdentifier int) error {
	arguments := []string{
		boardsSubcommandConstant,
		workItemSubcommandConstant,
		relationSubcommandConstant,
		addSubcommandConstant,
		identifierFlagConstant,
		strconv.Itoa(workItemIdentifier),
		relationTypeFlagConstant,
		relationType,
		targetIdentifierFlagConstant,
		strconv.Itoa(targetIdentifier),
	}
	arguments = client.appendOutputAndOrganization(arguments)

	_, executionError := client.executor.ExecuteAzureCLI(executionContext, execshell.CommandDetails{Arguments: arguments})
	if executionError != nil {
		return OperationError{Operation: addWorkItemRelationOperationNameConstant, Cause: executionError}
	}

	return nil
}

func (client *Client) appendOutputAndOrganization(arguments []string) []string {
	arguments = append(arguments, outputFlagConstant, outputFormatJSONConstant)
	if len(client.organization) > 0 {
		arguments = append(arguments, organizationFlagConstant, client.organization)
	}
	return arguments
}

func (client *Client) collectRemainingFieldAssignments(fields map[string]string) []string {
	dedicatedFieldReferenceNames := map[string]struct{}{
		workitems.WorkItemTypeFieldReferenceName: {},
		workitems.TitleFieldReferenceName:        {},
	}
	for _, flagBinding := range createDedicatedFlagBindings {
		dedicatedFieldReferenceNames[flagBinding.fieldReferenceName] = struct{}{}
	}

	fieldAssignments := make([]string, 0, len(fields))
	for fieldReferenceName, fieldValue := range fields {
		if _, isDedicated := dedicatedFieldReferenceNames[fieldReferenceName]; isDedicated {
			continue
		}
		if len(fieldValue) == 0 {
			continue
		}
		fieldAssignments = append(fieldAssignments, fmt.Sprintf(fieldAssignmentTemplateConstant, fieldReferenceName, fieldValue))
	}
	sort.Strings(fieldAssignments)
	return fieldAssignments
}

func stringifyFieldValue(fieldValue any) (string, bool) {
	switch typedValue := fieldValue.(type) {
	case string:
		return typedValue, true
	case float64:
		return strconv.FormatFloat(typedValue, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typedValue), true
	default:
		return "", false
	}
}
