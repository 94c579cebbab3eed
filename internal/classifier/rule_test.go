package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var pokemonCenterRule = MarkerRule{
	Block: []string{
		"Pardon Our Interruption",
		"made us think you were a bot",
	},
	OutOfStock: []string{
		"out of stock", "sold out", "notify me", "currently unavailable", "coming soon",
	},
	InStock: []string{
		"add to cart", "add to bag", "in stock", "buy now",
	},
}

func TestMarkerRule(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Status
	}{
		{
			name: "in stock marker",
			body: `<html><button class="btn">Add to Cart</button></html>`,
			want: InStock,
		},
		{
			name: "sold out marker",
			body: `<html><span>Sold Out</span></html>`,
			want: OutOfStock,
		},
		{
			name: "out of stock wins over inert add to cart button",
			body: `<html><button disabled>Add to Cart</button><p>Currently unavailable</p></html>`,
			want: OutOfStock,
		},
		{
			name: "bot wall short-circuits even with stock phrasing",
			body: `<html>Pardon Our Interruption... something about how you browse made us think you were a bot. Add to cart.</html>`,
			want: Unknown,
		},
		{
			name: "no markers at all",
			body: `<html><h1>Some unrelated page</h1></html>`,
			want: Unknown,
		},
		{
			name: "empty body",
			body: "",
			want: Unknown,
		},
		{
			name: "markers match case-insensitively",
			body: `<html>BUY NOW</html>`,
			want: InStock,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pokemonCenterRule.Classify([]byte(tc.body)))
		})
	}
}

func TestMarkerRuleDutchMarkers(t *testing.T) {
	rule := MarkerRule{
		OutOfStock: []string{"uitverkocht", "niet op voorraad"},
		InStock:    []string{"in winkelwagen", "op voorraad"},
	}

	assert.Equal(t, OutOfStock, rule.Classify([]byte("Dit product is uitverkocht")))
	assert.Equal(t, InStock, rule.Classify([]byte("<button>In winkelwagen</button>")))
	// "niet op voorraad" contains "op voorraad"; the out-of-stock pass runs first.
	assert.Equal(t, OutOfStock, rule.Classify([]byte("Niet op voorraad")))
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, InStock, ParseStatus("in_stock"))
	assert.Equal(t, OutOfStock, ParseStatus("out_of_stock"))
	assert.Equal(t, Unknown, ParseStatus("unknown"))
	assert.Equal(t, Unknown, ParseStatus(""))
	assert.Equal(t, Unknown, ParseStatus("IN_STOCK"))
	assert.Equal(t, Unknown, ParseStatus("garbage"))
}
