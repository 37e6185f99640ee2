package bitmapface

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestMeasureBasicFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.text")
	defer teardown()
	//
	bm := New(nil)
	assert.Equal(t, float32(13), bm.LineHeight(0))
	w, h := bm.Measure("abc", "", 13, 0)
	assert.Equal(t, float32(21), w)
	assert.Equal(t, float32(13), h)
	w, h = bm.Measure("abc", "", 26, 0)
	assert.Equal(t, float32(42), w)
	assert.Equal(t, float32(26), h)
}

func TestMeasureWrapped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.text")
	defer teardown()
	//
	bm := New(nil)
	w, h := bm.Measure("ab cd", "", 13, 20)
	assert.Equal(t, float32(14), w)
	assert.Equal(t, float32(26), h)
}
