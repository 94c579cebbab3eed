// Package classifier turns raw page bodies into stock statuses. Each retailer
// gets its own Rule; the rest of the pipeline only sees the Status.
package classifier

import (
	"strings"
)

// Rule classifies a fetched page body. Implementations must return Unknown
// for anything they cannot confidently read: a bot wall, a missing marker, a
// parse failure. Unknown is never a claim that the product is out of stock.
type Rule interface {
	Classify(body []byte) Status
}

// MarkerRule classifies by case-insensitive substring markers. Block markers
// are checked first: a CAPTCHA or bot-interstitial page can contain anything,
// including in-stock phrasing, so it must short-circuit to Unknown.
// Out-of-stock markers are checked before in-stock markers because sold-out
// pages frequently still render an inert "add to cart" button.
type MarkerRule struct {
	Block      []string
	OutOfStock []string
	InStock    []string
}

func (r MarkerRule) Classify(body []byte) Status {
	text := strings.ToLower(string(body))
	for _, m := range r.Block {
		if strings.Contains(text, strings.ToLower(m)) {
			return Unknown
		}
	}
	for _, m := range r.OutOfStock {
		if strings.Contains(text, strings.ToLower(m)) {
			return OutOfStock
		}
	}
	for _, m := range r.InStock {
		if strings.Contains(text, strings.ToLower(m)) {
			return InStock
		}
	}
	return Unknown
}

// matchValue compares an extracted value against the expected value sets.
// Used by the structured rules, which read a single field rather than
// scanning the whole page.
func matchValue(val string, inStock, outOfStock []string) Status {
	for _, v := range inStock {
		if strings.EqualFold(val, v) {
			return InStock
		}
	}
	for _, v := range outOfStock {
		if strings.EqualFold(val, v) {
			return OutOfStock
		}
	}
	return Unknown
}
