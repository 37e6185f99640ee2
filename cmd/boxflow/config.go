package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/pelletier/go-toml/v2"
)

// defaults for tracing and UI parameters. Keys are flattened with '.'.
var defaults = map[string]interface{}{
	"tracing.adapter":      "go",
	"trace.boxflow.core":   "Error",
	"trace.boxflow.style":  "Error",
	"trace.boxflow.frame":  "Error",
	"trace.boxflow.layout": "Error",
	"trace.boxflow.widget": "Error",
	"trace.boxflow.text":   "Error",
	"trace.boxflow.ui":     "Error",
	"trace.boxflow.cli":    "Info",
}

// tomlParser adapts go-toml to koanf.Parser.
type tomlParser struct{}

func (tomlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := toml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (tomlParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return toml.Marshal(m)
}

// loadConfiguration merges defaults, an optional TOML file and environment
// variables prefixed with BOXFLOW_ (BOXFLOW_BOXFLOW_FONTSIZE sets
// boxflow.fontsize). The result is flattened into a configuration for
// tracing and UI parameters.
func loadConfiguration(path string) (testconfig.Conf, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot load configuration defaults")
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, core.WrapError(err, core.EMISSING, "configuration file %s", path)
		}
		if err := k.Load(file.Provider(path), tomlParser{}); err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot read configuration file %s", path)
		}
	}
	err := k.Load(env.Provider("BOXFLOW_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "BOXFLOW_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read configuration from environment")
	}
	conf := testconfig.Conf{}
	for key, value := range k.All() {
		conf[key] = fmt.Sprint(value)
	}
	return conf, nil
}
