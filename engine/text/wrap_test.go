package text

import (
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func runes(s string) float32 {
	return float32(utf8.RuneCountInString(s) * 8)
}

func TestWrapNewlines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.text")
	defer teardown()
	//
	lines := Wrap("one\ntwo three", 0, runes)
	assert.Len(t, lines, 2)
	assert.Equal(t, "two three", lines[1].Text)
	assert.Equal(t, float32(72), lines[1].Width)
}

func TestWrapGreedy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.text")
	defer teardown()
	//
	lines := Wrap("hello world again", 100, runes)
	if assert.Len(t, lines, 2) {
		assert.Equal(t, "hello world", lines[0].Text)
		assert.Equal(t, float32(88), lines[0].Width, "trailing space must not count")
		assert.Equal(t, "again", lines[1].Text)
	}
	w, n := Extent("hello world again", 50, runes)
	assert.Equal(t, float32(40), w)
	assert.Equal(t, 3, n)
}

func TestWrapNormalizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.text")
	defer teardown()
	//
	w, n := Extent("cafe\u0301", 0, runes)
	assert.Equal(t, float32(32), w, "combining accent must be composed")
	assert.Equal(t, 1, n)
}
