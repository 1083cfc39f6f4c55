package expansion_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/wiclone/internal/expansion"
)

const (
	testExpandCaseSingleTokenConstant       = "single_token"
	testExpandCaseRepeatedTokenConstant     = "repeated_token"
	testExpandCaseMultipleTokensConstant    = "multiple_tokens"
	testExpandCaseUnresolvedTokenConstant   = "unresolved_token_left_literal"
	testExpandCaseEmptyTextConstant         = "empty_text"
	testExpandCaseNoTokensConstant          = "no_tokens"
	testExpandCaseMalformedTokenConstant    = "malformed_token_ignored"
	testExpandCaseValueNotRescannedConstant = "replacement_value_not_rescanned"
	testEscapeCaseLiteralQuoteConstant      = "literal_quote"
	testEscapeCaseEncodedQuoteConstant      = "html_encoded_quote"
	testEscapeCaseMixedQuotesConstant       = "mixed_quotes"
	testEscapeCaseNoQuotesConstant          = "no_quotes"
	testUnresolvedWarningFieldConstant      = "token"
	testUnresolvedWarningMessageConstant    = "variable token left unresolved"
)

func TestTransformerExpand(t *testing.T) {
	testCases := []struct {
		name         string
		variables    map[string]string
		text         string
		expectedText string
	}{
		{
			name:         testExpandCaseSingleTokenConstant,
			variables:    map[string]string{"Sprint": "Sprint 42"},
			text:         "Plan {{Sprint}}",
			expectedText: "Plan Sprint 42",
		},
		{
			name:         testExpandCaseRepeatedTokenConstant,
			variables:    map[string]string{"X": "Q"},
			text:         "{{X}}-{{X}}",
			expectedText: "Q-Q",
		},
		{
			name:         testExpandCaseMultipleTokensConstant,
			variables:    map[string]string{"Team": "Core", "Quarter": "Q3"},
			text:         "{{Team}} goals for {{Quarter}}",
			expectedText: "Core goals for Q3",
		},
		{
			name:         testExpandCaseUnresolvedTokenConstant,
			variables:    map[string]string{},
			text:         "Hello {{Name}}",
			expectedText: "Hello {{Name}}",
		},
		{
			name:         testExpandCaseEmptyTextConstant,
			variables:    map[string]string{"Sprint": "Sprint 42"},
			text:         "",
			expectedText: "",
		},
		{
			name:         testExpandCaseNoTokensConstant,
			variables:    map[string]string{"Sprint": "Sprint 42"},
			text:         "No placeholders here",
			expectedText: "No placeholders here",
		},
		{
			name:         testExpandCaseMalformedTokenConstant,
			variables:    map[string]string{"Sprint Name": "Sprint 42"},
			text:         "Plan {{Sprint Name}} and {Sprint}",
			expectedText: "Plan {{Sprint Name}} and {Sprint}",
		},
		{
			name:         testExpandCaseValueNotRescannedConstant,
			variables:    map[string]string{"Outer": "{{Inner}}", "Inner": "leaked"},
			text:         "Value: {{Outer}}",
			expectedText: "Value: {{Inner}}",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			transformer := expansion.NewTransformer(testCase.variables, zap.NewNop())
			require.Equal(t, testCase.expectedText, transformer.Expand(testCase.text))
		})
	}
}

func TestTransformerExpandWarnsOncePerDistinctToken(t *testing.T) {
	observerCore, observedLogs := observer.New(zap.WarnLevel)
	transformer := expansion.NewTransformer(map[string]string{"Known": "value"}, zap.New(observerCore))

	expandedText := transformer.Expand("{{Missing}} {{Missing}} {{Known}} {{Other}}")
	require.Equal(t, "{{Missing}} {{Missing}} value {{Other}}", expandedText)

	warningEntries := observedLogs.All()
	require.Len(t, warningEntries, 2)

	warnedTokens := make([]string, 0, len(warningEntries))
	for _, warningEntry := range warningEntries {
		require.Equal(t, testUnresolvedWarningMessageConstant, warningEntry.Message)
		warnedTokens = append(warnedTokens, warningEntry.ContextMap()[testUnresolvedWarningFieldConstant].(string))
	}
	require.ElementsMatch(t, []string{"Missing", "Other"}, warnedTokens)
}

func TestTransformerExpandToleratesNilVariables(t *testing.T) {
	transformer := expansion.NewTransformer(nil, nil)
	require.Equal(t, "Hello {{Name}}", transformer.Expand("Hello {{Name}}"))
}

func TestTransformerEscape(t *testing.T) {
	testCases := []struct {
		name         string
		text         string
		expectedText string
	}{
		{
			name:         testEscapeCaseLiteralQuoteConstant,
			text:         `a"b`,
			expectedText: `a\"b`,
		},
		{
			name:         testEscapeCaseEncodedQuoteConstant,
			text:         "a&quot;b",
			expectedText: `a\"b`,
		},
		{
			name:         testEscapeCaseMixedQuotesConstant,
			text:         `say "hi" or &quot;bye&quot;`,
			expectedText: `say \"hi\" or \"bye\"`,
		},
		{
			name:         testEscapeCaseNoQuotesConstant,
			text:         "plain text",
			expectedText: "plain text",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			transformer := expansion.NewTransformer(nil, zap.NewNop())
			require.Equal(t, testCase.expectedText, transformer.Escape(testCase.text))
		})
	}
}

func TestTransformerEscapeIsNotIdempotent(t *testing.T) {
	transformer := expansion.NewTransformer(nil, zap.NewNop())

	escapedOnce := transformer.Escape(`a"b`)
	require.Equal(t, `a\"b`, escapedOnce)

	escapedTwice := transformer.Escape(escapedOnce)
	require.Equal(t, `a\\"b`, escapedTwice)
}

func TestTransformerExpandAndEscapeEscapesExpandedValues(t *testing.T) {
	transformer := expansion.NewTransformer(map[string]string{"Quote": `say "hi"`}, zap.NewNop())
	require.Equal(t, `prefix say \"hi\"`, transformer.ExpandAndEscape("prefix {{Quote}}"))
}

func TestTransformerUnresolvedTokens(t *testing.T) {
	transformer := expansion.NewTransformer(map[string]string{"Known": "value"}, zap.NewNop())

	unresolvedTokens := transformer.UnresolvedTokens("{{B}} {{A}} {{Known}} {{B}}")
	require.Equal(t, []string{"B", "A"}, unresolvedTokens)

	require.Empty(t, transformer.UnresolvedTokens("{{Known}} only"))
	require.Empty(t, transformer.UnresolvedTokens("no tokens"))
}
