package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorRuleAttribute(t *testing.T) {
	rule := SelectorRule{
		Selector:   "button#add-to-cart",
		Attribute:  "data-availability",
		InStock:    []string{"available"},
		OutOfStock: []string{"soldout"},
	}

	assert.Equal(t, InStock, rule.Classify([]byte(
		`<html><body><button id="add-to-cart" data-availability="available">Add</button></body></html>`)))
	assert.Equal(t, OutOfStock, rule.Classify([]byte(
		`<html><body><button id="add-to-cart" data-availability="soldout">Add</button></body></html>`)))
	assert.Equal(t, Unknown, rule.Classify([]byte(
		`<html><body><button id="add-to-cart">Add</button></body></html>`)),
		"missing attribute is unknown")
	assert.Equal(t, Unknown, rule.Classify([]byte(
		`<html><body><p>layout changed</p></body></html>`)),
		"missing element is unknown, never out of stock")
}

func TestSelectorRuleText(t *testing.T) {
	rule := SelectorRule{
		Selector:   "span.availability",
		InStock:    []string{"Op voorraad"},
		OutOfStock: []string{"Uitverkocht"},
	}

	assert.Equal(t, InStock, rule.Classify([]byte(
		`<html><span class="availability">  Op voorraad  </span></html>`)))
	assert.Equal(t, OutOfStock, rule.Classify([]byte(
		`<html><span class="availability">uitverkocht</span></html>`)),
		"text matching is case-insensitive")
	assert.Equal(t, Unknown, rule.Classify([]byte(
		`<html><span class="availability">Binnenkort leverbaar</span></html>`)))
}
