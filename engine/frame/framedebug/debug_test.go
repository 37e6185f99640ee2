package framedebug

import (
	"bytes"
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/layout"
	"github.com/npillmayer/boxflow/engine/widget"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var cells = frame.MeasureFunc(func(text, family string, size, wrapWidth float32) (float32, float32) {
	return float32(len(text) * 8), 16
})

// buildFrame lays out
//
//    layout#0 ─┬─ label#0 "ab"
//              ├─ label#1 "cd"
//              └─ layout#1 ── label#2 "e"
func buildFrame(t *testing.T) *Tree {
	store := widget.NewStore()
	e := layout.NewEngine(store, cells)
	e.Reset(dimen.R(0, 0, 300, 200))
	add := func(text string) {
		id := store.Allocate(widget.Label)
		e.Add(id, e.BoxModelBounds(nil, text, 0, nil), nil)
	}
	_, err := e.Begin(layout.Spec{Kind: layout.Horizontal})
	assert.NoError(t, err)
	add("ab")
	add("cd")
	_, err = e.Begin(layout.Spec{Kind: layout.Vertical})
	assert.NoError(t, err)
	add("e")
	e.End(2)
	return Build(e.Items())
}

func TestBuildAndDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	tree := buildFrame(t)
	assert.Equal(t, 5, tree.Len())
	assert.Len(t, tree.Root.Children, 1)
	outer := tree.Root.Children[0]
	assert.Equal(t, "layout", outer.Name())
	assert.Len(t, outer.Children, 3)
	assert.Equal(t, widget.MakeID(widget.Label, 2), outer.Children[2].Children[0].Item.ID)
	dump := Dump(tree)
	t.Logf("\n%s", dump)
	assert.Contains(t, dump, "label#2")
	assert.Contains(t, dump, "frame (5 items)")
}

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	tree := buildFrame(t)
	nodes, err := Query(tree, "//label")
	assert.NoError(t, err)
	assert.Len(t, nodes, 3)
	//
	nodes, err = Query(tree, "/layout/layout/label")
	assert.NoError(t, err)
	if assert.Len(t, nodes, 1) {
		assert.Equal(t, dimen.R(32, 0, 40, 16), nodes[0].Item.Box.Margin)
	}
	//
	nodes, _ = Query(tree, "//label[@x='16']")
	if assert.Len(t, nodes, 1) {
		assert.Equal(t, "label#1", nodes[0].Item.ID.String())
	}
	nodes, _ = Query(tree, "//*[@col='2']")
	if assert.Len(t, nodes, 1) {
		assert.Equal(t, widget.Layout, nodes[0].Item.ID.Type())
	}
	//
	v, err := Evaluate(tree, "count(//layout)")
	assert.NoError(t, err)
	assert.Equal(t, float64(2), v)
	//
	_, err = Query(tree, "//label[")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	tree := buildFrame(t)
	var buf bytes.Buffer
	assert.NoError(t, ToGraphViz(tree, &buf))
	dot := buf.String()
	assert.Contains(t, dot, "digraph g {")
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "label#2")
}
