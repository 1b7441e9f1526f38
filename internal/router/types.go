package router

// Intent represents the user's intention
type Intent string

const (
	IntentListingDetail Intent = "LISTING_DETAIL"
	IntentConversation  Intent = "CONVERSATION"
)

// RouterOutput is the result of Classify. Index is the zero-based position in
// the cached search results and is only meaningful for IntentListingDetail.
// It may be out of range; callers check it against the cache.
type RouterOutput struct {
	Intent    Intent `json:"intent"`
	Index     int    `json:"index"`
	Reasoning string `json:"reasoning"`
}
