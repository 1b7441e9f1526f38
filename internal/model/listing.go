package model

import (
	"bytes"
	"encoding/json"
)

// Listing is one search result returned by the agent backend inside a
// [SEARCH_CACHE] block. Only the fields rendered in detail replies are typed.
type Listing struct {
	ID           FlexString `json:"id"`
	Title        string     `json:"title"`
	Price        FlexString `json:"price"`
	Location     string     `json:"location"`
	Condition    string     `json:"condition"`
	Category     string     `json:"category"`
	Description  string     `json:"description"`
	UserName     string     `json:"user_name"`
	OwnerName    string     `json:"owner_name"`
	UserPhone    string     `json:"user_phone"`
	OwnerPhone   string     `json:"owner_phone"`
	SignedImages []string   `json:"signed_images"`
}

// FlexString decodes a JSON string or number verbatim. null decodes to "".
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}
