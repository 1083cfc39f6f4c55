package expansion

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const (
	variableTokenPatternConstant            = `\{\{(\w+)\}\}`
	tokenOpeningDelimiterConstant           = "{{"
	tokenClosingDelimiterConstant           = "}}"
	literalQuoteConstant                    = `"`
	htmlEncodedQuoteConstant                = "&quot;"
	escapedQuoteConstant                    = `\"`
	unresolvedTokenWarningMessageConstant   = "variable token left unresolved"
	logFieldTokenNameConstant               = "token"
	tokenSubmatchIndexConstant              = 1
	findAllOccurrencesSentinelValueConstant = -1
)

var variableTokenExpression = regexp.MustCompile(variableTokenPatternConstant)

// Transformer expands {{Token}} placeholders and escapes double quotes for command-line submission.
type Transformer struct {
	variables map[string]string
	logger    *zap.Logger
	escaper   *strings.Replacer
}

// NewTransformer constructs a Transformer bound to an immutable copy of the supplied variables.
func NewTransformer(variables map[string]string, logger *zap.Logger) *Transformer {
	if logger == nil {
		logger = zap.NewNop()
	}

	copiedVariables := make(map[string]string, len(variables))
	for variableName, variableValue := range variables {
		copiedVariables[variableName] = variableValue
	}

	return &Transformer{
		variables: copiedVariables,
		logger:    logger,
		escaper:   strings.NewReplacer(htmlEncodedQuoteConstant, escapedQuoteConstant, literalQuoteConstant, escapedQuoteConstant),
	}
}

// Expand replaces every {{Token}} occurrence with its configured value.
//
// Tokens without a configured value stay in the text literally and produce one
// warning per distinct token per call. Replacement values are never rescanned.
func (transformer *Transformer) Expand(text string) string {
	if len(text) == 0 {
		return text
	}

	warnedTokens := map[string]struct{}{}
	return variableTokenExpression.ReplaceAllStringFunc(text, func(tokenOccurrence string) string {
		tokenName := strings.TrimSuffix(strings.TrimPrefix(tokenOccurrence, tokenOpeningDelimiterConstant), tokenClosingDelimiterConstant)

		variableValue, variableExists := transformer.variables[tokenName]
		if !variableExists {
			if _, alreadyWarned := warnedTokens[tokenName]; !alreadyWarned {
				warnedTokens[tokenName] = struct{}{}
				transformer.logger.Warn(unresolvedTokenWarningMessageConstant, zap.String(logFieldTokenNameConstant, tokenName))
			}
			return tokenOccurrence
		}

		return variableValue
	})
}

// Escape rewrites literal and HTML-encoded double quotes as backslash-escaped quotes.
//
// The rewrite is a single pass and not idempotent: escaping an already escaped
// value doubles the backslashes.
func (transformer *Transformer) Escape(text string) string {
	return transformer.escaper.Replace(text)
}

// ExpandAndEscape applies Expand followed by Escape so quotes introduced by variable values are escaped too.
func (transformer *Transformer) ExpandAndEscape(text string) string {
	return transformer.Escape(transformer.Expand(text))
}

// UnresolvedTokens reports distinct tokens with no configured value in first-occurrence order.
func (transformer *Transformer) UnresolvedTokens(text string) []string {
	tokenMatches := variableTokenExpression.FindAllStringSubmatch(text, findAllOccurrencesSentinelValueConstant)

	seenTokens := map[string]struct{}{}
	unresolvedTokens := make([]string, 0, len(tokenMatches))
	for _, tokenMatch := range tokenMatches {
		tokenName := tokenMatch[tokenSubmatchIndexConstant]
		if _, variableExists := transformer.variables[tokenName]; variableExists {
			continue
		}
		if _, alreadySeen := seenTokens[tokenName]; alreadySeen {
			continue
		}
		seenTokens[tokenName] = struct{}{}
		unresolvedTokens = append(unresolvedTokens, tokenName)
	}

	return unresolvedTokens
}
