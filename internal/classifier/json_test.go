package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONRule(t *testing.T) {
	rule := JSONRule{
		Path:       "data.product.fulfillment.availability_status",
		InStock:    []string{"IN_STOCK", "LIMITED_STOCK", "PRE_ORDER_SELLABLE"},
		OutOfStock: []string{"OUT_OF_STOCK"},
	}

	cases := []struct {
		name string
		body string
		want Status
	}{
		{
			name: "in stock",
			body: `{"data":{"product":{"fulfillment":{"availability_status":"IN_STOCK"}}}}`,
			want: InStock,
		},
		{
			name: "limited stock counts as in stock",
			body: `{"data":{"product":{"fulfillment":{"availability_status":"LIMITED_STOCK"}}}}`,
			want: InStock,
		},
		{
			name: "out of stock",
			body: `{"data":{"product":{"fulfillment":{"availability_status":"OUT_OF_STOCK"}}}}`,
			want: OutOfStock,
		},
		{
			name: "unlisted value",
			body: `{"data":{"product":{"fulfillment":{"availability_status":"DISCONTINUED"}}}}`,
			want: Unknown,
		},
		{
			name: "missing path",
			body: `{"data":{"product":{}}}`,
			want: Unknown,
		},
		{
			name: "invalid json",
			body: `<html>Access Denied</html>`,
			want: Unknown,
		},
		{
			name: "intermediate node is not an object",
			body: `{"data":{"product":"gone"}}`,
			want: Unknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rule.Classify([]byte(tc.body)))
		})
	}
}

func TestJSONRuleScalarKinds(t *testing.T) {
	boolRule := JSONRule{Path: "available", InStock: []string{"true"}, OutOfStock: []string{"false"}}
	assert.Equal(t, InStock, boolRule.Classify([]byte(`{"available":true}`)))
	assert.Equal(t, OutOfStock, boolRule.Classify([]byte(`{"available":false}`)))

	numRule := JSONRule{Path: "inventory.count", OutOfStock: []string{"0"}}
	assert.Equal(t, OutOfStock, numRule.Classify([]byte(`{"inventory":{"count":0}}`)))
	assert.Equal(t, Unknown, numRule.Classify([]byte(`{"inventory":{"count":7}}`)))
}
