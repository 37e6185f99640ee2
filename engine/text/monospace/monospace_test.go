package monospace

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.text")
	defer teardown()
	//
	ms := New(8, nil)
	assert.Equal(t, 5, ms.Cells("hello"))
	assert.Equal(t, 4, ms.Cells("日本"), "wide characters take two cells")
	assert.Equal(t, 1, ms.Cells("e\u0301"), "a grapheme takes one cell")
}

func TestMeasure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.text")
	defer teardown()
	//
	ms := New(8, nil)
	w, h := ms.Measure("hello world", "", 12, 0)
	assert.Equal(t, float32(88), w)
	assert.Equal(t, float32(16), h)
	w, h = ms.Measure("hello world", "", 12, 50)
	assert.Equal(t, float32(40), w)
	assert.Equal(t, float32(32), h)
	//
	scaled := New(0, nil)
	w, h = scaled.Measure("ab", "", 10, 0)
	assert.InDelta(t, 12, w, 0.001)
	assert.InDelta(t, 12, h, 0.001)
}
