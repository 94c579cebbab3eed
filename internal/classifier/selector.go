package classifier

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SelectorRule reads availability from DOM structure: a CSS selector plus an
// optional attribute name. With no attribute the element's text content is
// matched instead. A page where the selector matches nothing is Unknown, not
// out of stock, since bot walls and layout changes also make selectors miss.
type SelectorRule struct {
	Selector   string
	Attribute  string
	InStock    []string
	OutOfStock []string
}

func (r SelectorRule) Classify(body []byte) Status {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Unknown
	}

	sel := doc.Find(r.Selector).First()
	if sel.Length() == 0 {
		return Unknown
	}

	var val string
	if r.Attribute != "" {
		attr, ok := sel.Attr(r.Attribute)
		if !ok {
			return Unknown
		}
		val = attr
	} else {
		val = strings.TrimSpace(sel.Text())
	}

	return matchValue(val, r.InStock, r.OutOfStock)
}
