package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"whatsapp-bridge/internal/model"
)

var searchCachePattern = regexp.MustCompile(`(?s)\[SEARCH_CACHE\](\{.*\})`)

type searchCacheBlock struct {
	Results []model.Listing `json:"results"`
}

// parseSearchCache strips a [SEARCH_CACHE]{json} block from text. found
// reports whether a block was present; results is nil when it did not parse.
func parseSearchCache(text string) (stripped string, results []model.Listing, found bool) {
	loc := searchCachePattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, nil, false
	}
	stripped = strings.TrimSpace(text[:loc[0]] + text[loc[1]:])

	var block searchCacheBlock
	if err := json.Unmarshal([]byte(text[loc[2]:loc[3]]), &block); err != nil {
		return stripped, nil, true
	}
	return stripped, block.Results, true
}
