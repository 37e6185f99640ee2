package main

import (
	"bytes"
	"os"

	"github.com/npillmayer/boxflow/core"
	"github.com/pelletier/go-toml/v2"
)

// Scene is a sequence of steps drawing a single frame, read from a TOML
// file:
//
//    window = [320, 200]
//    theme = "button { padding: 4px } button:hover { color: red }"
//
//    [[step]]
//    op = "layout"
//    style = "direction: row; fill: horizontal; overflow-x: wrap"
//
//    [[step]]
//    op = "widget"
//    type = "button"
//    text = "OK"
//    flags = ["expand-h"]
//
//    [[step]]
//    op = "end"
type Scene struct {
	Window [2]float32 `toml:"window"`
	Theme  string     `toml:"theme"`
	Steps  []Step     `toml:"step"`
}

// Step is a single command, either from a scene file or typed at the prompt.
type Step struct {
	Op     string     `toml:"op"`
	Type   string     `toml:"type,omitempty"`
	Text   string     `toml:"text,omitempty"`
	Style  string     `toml:"style,omitempty"`
	Flags  []string   `toml:"flags,omitempty"`
	Window [2]float32 `toml:"window,omitempty"`
}

// parseScene decodes a scene. Unknown keys are an error of kind
// core.EINVALID, as they usually are typos.
func parseScene(data []byte) (*Scene, error) {
	scene := &Scene{}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(scene); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode scene")
	}
	for i, step := range scene.Steps {
		if _, ok := operations[step.Op]; !ok {
			return nil, core.Error(core.EINVALID, "scene step #%d: unknown op '%s'", i+1, step.Op)
		}
	}
	if scene.Window[0] <= 0 || scene.Window[1] <= 0 {
		scene.Window = defaultWindow
	}
	return scene, nil
}

func loadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read scene %s", path)
	}
	return parseScene(data)
}
