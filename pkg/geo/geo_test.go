package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sugbotours/sugbotours/pkg/geo"
)

func TestDistance_SamePoint(t *testing.T) {
	d := geo.Distance(10.2926, 123.9022, 10.2926, 123.9022)
	assert.Equal(t, 0.0, d)
}

func TestDistance_KnownPair(t *testing.T) {
	// Magellan's Cross to the Taoist Temple, roughly 5.7km apart.
	d := geo.Distance(10.2935, 123.9021, 10.3430, 123.8780)
	assert.InDelta(t, 6100, d, 600)
}

func TestDistance_Symmetric(t *testing.T) {
	a := geo.Distance(10.2935, 123.9021, 10.3157, 123.8854)
	b := geo.Distance(10.3157, 123.8854, 10.2935, 123.9021)
	assert.InDelta(t, a, b, 0.000001)
}
