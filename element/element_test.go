package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomatroid/cmr/element"
)

func TestRowAndColumnEncodeDistinctSigns(t *testing.T) {
	r := element.Row(2)
	c := element.Column(2)

	assert.True(t, r.IsRow())
	assert.False(t, r.IsColumn())
	assert.True(t, c.IsColumn())
	assert.False(t, c.IsRow())
	assert.NotEqual(t, r, c)
}

func TestIndexRecoversZeroBasedPosition(t *testing.T) {
	assert.Equal(t, 0, element.Row(0).Index())
	assert.Equal(t, 5, element.Row(5).Index())
	assert.Equal(t, 0, element.Column(0).Index())
	assert.Equal(t, 5, element.Column(5).Index())
}

func TestValidRejectsZeroValue(t *testing.T) {
	var zero element.Element
	assert.False(t, zero.Valid())
	assert.True(t, element.Row(0).Valid())
	assert.True(t, element.Column(0).Valid())
}

func TestStringRendersRowAndColumnLabels(t *testing.T) {
	assert.Equal(t, "r3", element.Row(3).String())
	assert.Equal(t, "c3", element.Column(3).String())
}

func TestRowPanicsOnNegativeIndex(t *testing.T) {
	assert.Panics(t, func() { element.Row(-1) })
}

func TestColumnPanicsOnNegativeIndex(t *testing.T) {
	assert.Panics(t, func() { element.Column(-1) })
}

func TestIndexPanicsOnZeroElement(t *testing.T) {
	var zero element.Element
	assert.Panics(t, func() { zero.Index() })
}
