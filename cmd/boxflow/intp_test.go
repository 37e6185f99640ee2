package main

import (
	"testing"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame/framedebug"
	"github.com/npillmayer/boxflow/engine/text/monospace"
	"github.com/npillmayer/boxflow/engine/ui"
	"github.com/npillmayer/boxflow/engine/widget"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.cli")
	defer teardown()
	//
	step, err := parseCommand("widget button expand-h to-left Save as...")
	assert.NoError(t, err)
	assert.Equal(t, "widget", step.Op)
	assert.Equal(t, "button", step.Type)
	assert.Equal(t, []string{"expand-h", "to-left"}, step.Flags)
	assert.Equal(t, "Save as...", step.Text)
	//
	step, err = parseCommand("Layout direction: row; spacing: 4px")
	assert.NoError(t, err)
	assert.Equal(t, "layout", step.Op)
	assert.Equal(t, "direction: row; spacing: 4px", step.Style)
	//
	step, err = parseCommand("frame 320 200")
	assert.NoError(t, err)
	assert.Equal(t, [2]float32{320, 200}, step.Window)
	//
	_, err = parseCommand("frame 320")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = parseCommand("widget")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = parseCommand("jump 3")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestParseScene(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.cli")
	defer teardown()
	//
	scene, err := parseScene([]byte(`
[[step]]
op = "widget"
type = "label"
text = "hello"
flags = ["expand-h"]
`))
	assert.NoError(t, err)
	assert.Equal(t, defaultWindow, scene.Window)
	if assert.Len(t, scene.Steps, 1) {
		assert.Equal(t, []string{"expand-h"}, scene.Steps[0].Flags)
	}
	_, err = parseScene([]byte("[[step]]\nop = \"teleport\"\n"))
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = parseScene([]byte("[[step]]\nop = \"end\"\ncolour = \"red\"\n"))
	assert.Equal(t, core.EINVALID, core.Code(err), "unknown keys must be rejected")
	_, err = loadScene("does-not-exist.toml")
	assert.Equal(t, core.EMISSING, core.Code(err))
}

const loginScene = `
window = [200, 100]
theme = "button { padding: 2px }"

[[step]]
op = "layout"
style = "direction: row; spacing: 4px"

[[step]]
op = "widget"
type = "label"
text = "Name"

[[step]]
op = "widget"
type = "button"
text = "OK"

[[step]]
op = "end"
`

func TestRunScene(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.cli")
	defer teardown()
	//
	intp := newIntp(ui.New(nil, monospace.New(8, nil)))
	scene, err := parseScene([]byte(loginScene))
	assert.NoError(t, err)
	assert.NoError(t, intp.runScene(scene))
	//
	store := intp.ctx.Store()
	assert.Equal(t, dimen.R(0, 0, 32, 16), store.Geometry(widget.MakeID(widget.Label, 0)))
	assert.Equal(t, dimen.R(36, 0, 56, 20), store.Geometry(widget.MakeID(widget.Button, 0)))
	nodes, err := framedebug.Query(framedebug.Build(intp.ctx.Items()), "/layout/button[@x='36']")
	assert.NoError(t, err)
	assert.Len(t, nodes, 1)
}

func TestUnbalancedScene(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.cli")
	defer teardown()
	//
	intp := newIntp(ui.New(nil, monospace.New(8, nil)))
	scene, err := parseScene([]byte("[[step]]\nop = \"layout\"\n\n[[step]]\nop = \"style\"\nstyle = \"color: red\"\n"))
	assert.NoError(t, err)
	err = intp.runScene(scene)
	assert.Equal(t, core.EUNBALANCED, core.Code(err))
	//
	_, err = intp.execute(Step{Op: "end"})
	assert.Equal(t, core.EUNBALANCED, core.Code(err), "nothing left to end")
	assert.Empty(t, intp.scopes, "scopes of a finished frame must be gone")
}

func TestInteractiveSteps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.cli")
	defer teardown()
	//
	intp := newIntp(ui.New(nil, monospace.New(8, nil)))
	for _, line := range []string{
		"frame 100 50",
		"style padding: 1px",
		"widget label ab",
		"end",
		"widget checkbox expand-h x",
	} {
		step, err := parseCommand(line)
		assert.NoError(t, err)
		quit, err := intp.execute(step)
		assert.NoError(t, err, line)
		assert.False(t, quit)
	}
	assert.Equal(t, dimen.R(0, 0, 18, 18), intp.ctx.GetGeometry(widget.MakeID(widget.Label, 0)))
	assert.Equal(t, float32(100), intp.ctx.GetGeometry(widget.MakeID(widget.Checkbox, 0)).Width())
	_, err := intp.execute(Step{Op: "widget", Type: "gizmo"})
	assert.Equal(t, core.EINVALID, core.Code(err))
	quit, err := intp.execute(Step{Op: "quit"})
	assert.NoError(t, err)
	assert.True(t, quit)
	assert.NoError(t, intp.endFrame())
}
