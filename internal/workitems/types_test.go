package workitems_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/wiclone/internal/workitems"
)

const (
	testRelationTargetCaseFullURLConstant        = "full_url"
	testRelationTargetCaseTrailingSlashConstant  = "trailing_slash"
	testRelationTargetCaseBareIdentifierConstant = "bare_identifier"
	testRelationTargetCaseEmptyURLConstant       = "empty_url"
	testRelationTargetCaseNonNumericConstant     = "non_numeric_segment"
	testRelationTargetCaseWhitespaceConstant     = "whitespace_url"
)

func TestRelationTargetWorkItemID(t *testing.T) {
	testCases := []struct {
		name               string
		targetURL          string
		expectedIdentifier int
		expectedError      error
		expectParseFailure bool
	}{
		{
			name:               testRelationTargetCaseFullURLConstant,
			targetURL:          "https://dev.azure.com/fabrikam/_apis/wit/workItems/4711",
			expectedIdentifier: 4711,
		},
		{
			name:               testRelationTargetCaseTrailingSlashConstant,
			targetURL:          "https://dev.azure.com/fabrikam/_apis/wit/workItems/42/",
			expectedIdentifier: 42,
		},
		{
			name:               testRelationTargetCaseBareIdentifierConstant,
			targetURL:          "17",
			expectedIdentifier: 17,
		},
		{
			name:          testRelationTargetCaseEmptyURLConstant,
			targetURL:     "",
			expectedError: workitems.ErrRelationTargetMissing,
		},
		{
			name:          testRelationTargetCaseWhitespaceConstant,
			targetURL:     "   ",
			expectedError: workitems.ErrRelationTargetMissing,
		},
		{
			name:               testRelationTargetCaseNonNumericConstant,
			targetURL:          "https://dev.azure.com/fabrikam/_apis/wit/workItems/latest",
			expectParseFailure: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			relation := workitems.Relation{Name: workitems.ChildRelationName, TargetURL: testCase.targetURL}
			identifier, parseError := relation.TargetWorkItemID()

			if testCase.expectedError != nil {
				require.ErrorIs(t, parseError, testCase.expectedError)
				return
			}
			if testCase.expectParseFailure {
				require.Error(t, parseError)
				require.Contains(t, parseError.Error(), testCase.targetURL)
				return
			}

			require.NoError(t, parseError)
			require.Equal(t, testCase.expectedIdentifier, identifier)
		})
	}
}

func TestWorkItemFieldDistinguishesAbsentFromEmpty(t *testing.T) {
	workItem := workitems.WorkItem{
		ID: 12,
		Fields: map[string]string{
			workitems.TitleFieldReferenceName: "Login flow",
			workitems.TagsFieldReferenceName:  "",
		},
	}

	titleValue, titleExists := workItem.Field(workitems.TitleFieldReferenceName)
	require.True(t, titleExists)
	require.Equal(t, "Login flow", titleValue)

	tagsValue, tagsExist := workItem.Field(workitems.TagsFieldReferenceName)
	require.True(t, tagsExist)
	require.Empty(t, tagsValue)

	_, severityExists := workItem.Field(workitems.SeverityFieldReferenceName)
	require.False(t, severityExists)
}

func TestDefaultExtraFieldReferenceNamesKeepsUpdateOrder(t *testing.T) {
	extraFieldNames := workitems.DefaultExtraFieldReferenceNames()
	require.Equal(t, []string{
		workitems.TagsFieldReferenceName,
		workitems.AcceptanceCriteriaFieldReferenceName,
		workitems.StoryPointsFieldReferenceName,
		workitems.RemainingWorkFieldReferenceName,
		workitems.OriginalEstimateFieldReferenceName,
		workitems.SeverityFieldReferenceName,
	}, extraFieldNames)
}
