package flags

import (
	"fmt"
	"strings"
)

const (
	choiceListOpeningLiteral             = "<"
	choiceListClosingLiteral             = ">"
	choiceListSeparatorLiteral           = "|"
	choiceBareUsageTemplateConstant      = "`%s`"
	choiceDescribedUsageTemplateConstant = "`%s` %s"
)

// FormatChoiceUsage renders a flag usage string whose backticked placeholder
// enumerates every accepted choice, upper-casing the default one.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := choiceListOpeningLiteral + renderChoiceList(defaultChoice, choices) + choiceListClosingLiteral
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceBareUsageTemplateConstant, placeholder)
	}
	return fmt.Sprintf(choiceDescribedUsageTemplateConstant, placeholder, description)
}

func renderChoiceList(defaultChoice string, choices []string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))

	renderedChoices := make([]string, 0, len(choices))
	seenChoices := make(map[string]struct{}, len(choices))
	for _, candidateChoice := range choices {
		trimmedChoice := strings.TrimSpace(candidateChoice)
		if len(trimmedChoice) == 0 {
			continue
		}

		normalizedChoice := strings.ToLower(trimmedChoice)
		if _, alreadyRendered := seenChoices[normalizedChoice]; alreadyRendered {
			continue
		}
		seenChoices[normalizedChoice] = struct{}{}

		if normalizedChoice == normalizedDefault {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		renderedChoices = append(renderedChoices, trimmedChoice)
	}

	return strings.Join(renderedChoices, choiceListSeparatorLiteral)
}
