package router

import "regexp"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// "3 nolu ilanı göster", "3 nolu ilan göster"
var detailPattern = regexp.MustCompile(`(\d+)\s*nolu\s*ilan[ıi]?\s*göster`)

// Keywords that select the only cached result.
var singleResultKeywords = []string{"detay", "ilanı"}

// Reasons
const (
	ReasonNumbered     = "numbered detail request"
	ReasonSingleResult = "detail keyword with a single cached result"
	ReasonNoCache      = "no cached search results"
	ReasonNoMatch      = "no detail request"
)
