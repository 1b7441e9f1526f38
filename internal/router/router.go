package router

import (
	"context"
	"strconv"
	"strings"
	"unicode"
)

// Classify decides whether message asks for a cached listing. cachedResults is
// the size of the sender's search cache.
func (r *KeywordRouter) Classify(ctx context.Context, message string, cachedResults int) RouterOutput {
	if cachedResults <= 0 {
		return RouterOutput{Intent: IntentConversation, Reasoning: ReasonNoCache}
	}

	lower := strings.TrimSpace(strings.ToLowerSpecial(unicode.TurkishCase, message))

	if m := detailPattern.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			r.l.Debugf(ctx, "%s: numbered detail request %d of %d", LogPrefixClassify, n, cachedResults)
			return RouterOutput{Intent: IntentListingDetail, Index: n - 1, Reasoning: ReasonNumbered}
		}
	}

	if cachedResults == 1 {
		for _, kw := range singleResultKeywords {
			if strings.Contains(lower, kw) {
				return RouterOutput{Intent: IntentListingDetail, Index: 0, Reasoning: ReasonSingleResult}
			}
		}
	}

	return RouterOutput{Intent: IntentConversation, Reasoning: ReasonNoMatch}
}
