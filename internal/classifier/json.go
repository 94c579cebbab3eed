package classifier

import (
	"encoding/json"
	"strconv"
	"strings"
)

// JSONRule reads an availability field out of a JSON response body, for
// retailers whose product endpoints return structured data instead of HTML.
// Path is a dotted key path, e.g. "data.product.fulfillment.availability_status".
type JSONRule struct {
	Path       string
	InStock    []string
	OutOfStock []string
}

func (r JSONRule) Classify(body []byte) Status {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return Unknown
	}

	cur := doc
	for _, seg := range strings.Split(r.Path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return Unknown
		}
		cur, ok = obj[seg]
		if !ok {
			return Unknown
		}
	}

	var val string
	switch v := cur.(type) {
	case string:
		val = v
	case bool:
		val = strconv.FormatBool(v)
	case float64:
		val = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return Unknown
	}

	return matchValue(val, r.InStock, r.OutOfStock)
}
