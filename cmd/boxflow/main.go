/*
Command boxflow is an interactive playground for the layout engine.

Widgets, layouts and styles are entered at a prompt or loaded from TOML scene
files, and the resulting frame may be inspected as a tree, queried with XPath
or exported to Graphviz.

	boxflow [-config boxflow.toml] [-trace Debug] [-measure mono|bitmap] [-scene file.toml]

With -scene, the scene is drawn and its frame printed, without entering
interactive mode.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/parameters"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/framedebug"
	"github.com/npillmayer/boxflow/engine/text/bitmapface"
	"github.com/npillmayer/boxflow/engine/text/monospace"
	"github.com/npillmayer/boxflow/engine/ui"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'boxflow.cli'
func tracer() tracing.Trace {
	return tracing.Select("boxflow.cli")
}

func main() {
	initDisplay()

	// command line flags
	confpath := flag.String("config", "", "TOML configuration file")
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	uselogrus := flag.Bool("logrus", false, "Trace with logrus")
	measure := flag.String("measure", "mono", "Text measurer [mono|bitmap]")
	scenefile := flag.String("scene", "", "Scene to draw non-interactively")
	flag.Parse()

	// set up logging
	conf, err := loadConfiguration(*confpath)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		os.Exit(1)
	}
	if *tlevel != "" {
		conf["trace.boxflow.cli"] = *tlevel
	}
	if *uselogrus {
		conf["tracing.adapter"] = "logrus"
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to boxflow") // colored welcome message

	params := parameters.FromConfiguration(conf)
	var m frame.Measurer
	switch *measure {
	case "bitmap":
		m = bitmapface.New(nil)
	case "mono", "":
		m = monospace.New(0, nil)
	default:
		pterm.Error.Printfln("unknown measurer '%s'", *measure)
		os.Exit(2)
	}
	intp := newIntp(ui.New(params, m))
	//
	// draw a scene and leave
	if *scenefile != "" {
		scene, err := loadScene(*scenefile)
		if err == nil {
			err = intp.runScene(scene)
		}
		pterm.Println(framedebug.Dump(framedebug.Build(intp.ctx.Items())))
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			os.Exit(4)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("boxflow > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                              // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
