package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/framedebug"
	"github.com/npillmayer/boxflow/engine/style"
	"github.com/npillmayer/boxflow/engine/style/theme"
	"github.com/npillmayer/boxflow/engine/ui"
	"github.com/npillmayer/boxflow/engine/widget"
	"github.com/pterm/pterm"
)

// Command codes
const (
	QUIT int = iota
	HELP
	FRAME
	STYLE
	LAYOUT
	WIDGET
	END
	DUMP
	DOT
	QUERY
	LOAD
)

var operations = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"frame":  FRAME,
	"style":  STYLE,
	"layout": LAYOUT,
	"widget": WIDGET,
	"end":    END,
	"dump":   DUMP,
	"dot":    DOT,
	"query":  QUERY,
	"load":   LOAD,
}

var sizingFlags = map[string]frame.Sizing{
	"expand-h": frame.ExpandH,
	"expand-v": frame.ExpandV,
	"expand":   frame.Expand,
	"to-left":  frame.ToLeft,
	"to-top":   frame.ToTop,
}

var defaultWindow = [2]float32{640, 480}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	ctx     *ui.Context
	inFrame bool
	scopes  []int // STYLE or LAYOUT, innermost last
}

func newIntp(ctx *ui.Context) *Intp {
	return &Intp{ctx: ctx, scopes: make([]int, 0, 16)}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		step, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		quit, err := intp.execute(step)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	if err := intp.endFrame(); err != nil {
		pterm.Error.Println(core.UserMessage(err))
	}
	pterm.Info.Println("Good bye!")
}

// parseCommand reads a command line of the form
//
//    frame [width height]
//    style <style text>
//    layout <layout style text>
//    widget <type> [flags...] [text]
//    end | dump | quit
//    dot [file] | query <xpath> | load <scene file> | help [topic]
func parseCommand(line string) (Step, error) {
	op, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		op, rest = line[:i], strings.TrimSpace(line[i+1:])
	}
	op = strings.ToLower(op)
	code, ok := operations[op]
	if !ok {
		return Step{}, core.Error(core.EINVALID, "unknown command '%s', try 'help'", op)
	}
	step := Step{Op: op}
	tracer().Debugf("parse command %s '%s'", op, rest)
	switch code {
	case FRAME:
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			break
		}
		if len(fields) != 2 {
			return step, core.Error(core.EINVALID, "usage: frame [width height]")
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil || v <= 0 {
				return step, core.Error(core.EINVALID, "window extent '%s' is not a positive number", f)
			}
			step.Window[i] = float32(v)
		}
	case STYLE, LAYOUT:
		step.Style = rest
	case WIDGET:
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return step, core.Error(core.EINVALID, "usage: widget <type> [flags...] [text]")
		}
		step.Type = fields[0]
		i := 1
		for ; i < len(fields); i++ {
			if _, ok := sizingFlags[fields[i]]; !ok {
				break
			}
			step.Flags = append(step.Flags, fields[i])
		}
		step.Text = strings.Join(fields[i:], " ")
	default:
		step.Text = rest
	}
	return step, nil
}

func (intp *Intp) execute(step Step) (bool, error) {
	tracer().Infof("execute %s", step.Op)
	switch operations[step.Op] {
	case QUIT:
		return true, nil
	case HELP:
		help(step.Text)
	case FRAME:
		err := intp.endFrame()
		intp.beginFrame(step.Window)
		return false, err
	case STYLE:
		intp.ensureFrame()
		if err := intp.ctx.PushStyle(style.DefaultStyle(step.Style)); err != nil {
			return false, err
		}
		intp.scopes = append(intp.scopes, STYLE)
	case LAYOUT:
		intp.ensureFrame()
		r, err := intp.ctx.BeginLayoutStyled(step.Style, nil)
		if err != nil {
			return false, err
		}
		intp.scopes = append(intp.scopes, LAYOUT)
		tracer().Infof("layout at %v", r)
	case WIDGET:
		intp.ensureFrame()
		t := widget.TypeFromString(strings.ToLower(step.Type))
		if t == widget.Invalid {
			return false, core.Error(core.EINVALID, "unknown widget type '%s'", step.Type)
		}
		var flags frame.Sizing
		for _, f := range step.Flags {
			s, ok := sizingFlags[f]
			if !ok {
				return false, core.Error(core.EINVALID, "unknown sizing flag '%s'", f)
			}
			flags |= s
		}
		id, box := intp.ctx.AddWidget(t, step.Text, flags)
		tracer().Infof("%v at %v", id, box.Margin)
	case END:
		if !intp.inFrame || len(intp.scopes) == 0 {
			return false, core.Error(core.EUNBALANCED, "no open style or layout to end")
		}
		scope := intp.scopes[len(intp.scopes)-1]
		intp.scopes = intp.scopes[:len(intp.scopes)-1]
		if scope == LAYOUT {
			r := intp.ctx.EndLayout(1)
			tracer().Infof("layout closed at %v", r)
		} else {
			intp.ctx.PopStyle(1)
		}
	case DUMP:
		pterm.Println(framedebug.Dump(framedebug.Build(intp.ctx.Items())))
	case DOT:
		return false, intp.dot(step.Text)
	case QUERY:
		return false, intp.query(step.Text)
	case LOAD:
		scene, err := loadScene(step.Text)
		if err != nil {
			return false, err
		}
		err = intp.runScene(scene)
		pterm.Println(framedebug.Dump(framedebug.Build(intp.ctx.Items())))
		return false, err
	}
	return false, nil
}

func (intp *Intp) beginFrame(window [2]float32) {
	if window[0] <= 0 || window[1] <= 0 {
		window = defaultWindow
	}
	intp.ctx.BeginFrame(dimen.Point{X: window[0], Y: window[1]})
	intp.inFrame = true
	intp.scopes = intp.scopes[:0]
}

func (intp *Intp) ensureFrame() {
	if !intp.inFrame {
		intp.beginFrame(defaultWindow)
	}
}

func (intp *Intp) endFrame() error {
	if !intp.inFrame {
		return nil
	}
	intp.inFrame = false
	intp.scopes = intp.scopes[:0]
	return intp.ctx.EndFrame()
}

// runScene draws a scene as a frame of its own.
func (intp *Intp) runScene(scene *Scene) error {
	if scene.Theme != "" {
		th, err := theme.LoadTheme(scene.Theme)
		if err != nil {
			return err
		}
		intp.ctx.SetTheme(th)
	}
	if err := intp.endFrame(); err != nil {
		tracer().Errorf("previous frame: %v", err)
	}
	intp.beginFrame(scene.Window)
	for i, step := range scene.Steps {
		quit, err := intp.execute(step)
		if err != nil {
			intp.endFrame()
			return core.WrapError(err, core.Code(err), "scene step #%d (%s): %s", i+1, step.Op,
				core.UserMessage(err))
		}
		if quit {
			break
		}
	}
	return intp.endFrame()
}

func (intp *Intp) dot(path string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return core.WrapError(err, core.EINVALID, "cannot create %s", path)
		}
		defer f.Close()
		w = f
	}
	return framedebug.ToGraphViz(framedebug.Build(intp.ctx.Items()), w)
}

func (intp *Intp) query(expr string) error {
	nodes, err := framedebug.Query(framedebug.Build(intp.ctx.Items()), expr)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		pterm.Info.Println("no match")
		return nil
	}
	data := pterm.TableData{{"id", "x", "y", "w", "h", "row", "col"}}
	for _, n := range nodes {
		var row []string
		for _, a := range n.Attributes() {
			row = append(row, a.Val)
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "widget", "widgets", "flags":
		pterm.Info.Println("widget <type> [flags...] [text]")
		var types []string
		for t := widget.Label; t < widget.TotalTypes; t++ {
			types = append(types, t.String())
		}
		pterm.Printfln("types: %s", strings.Join(types, ", "))
		pterm.Println("flags: expand-h, expand-v, expand, to-left, to-top")
	case "layout", "layouts":
		pterm.Info.Println("layout <style>")
		pterm.Println(`
	direction: row | column | grid        fill: all | horizontal | vertical | none
	spacing: <x> [<y>]                    overflow[-x|-y]: clip | scroll | wrap
	align: left | right | top | bottom | center | justify
	plus margin, border and padding of the layout box, e.g.
	    layout direction: row; fill: horizontal; overflow-x: wrap; padding: 4px`)
	default:
		pterm.Info.Println("Commands")
		pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
			{"command", "arguments", "effect"},
			{"frame", "[width height]", "start a new frame"},
			{"style", "<style text>", "push a style scope"},
			{"layout", "<layout style>", "open a layout, see 'help layout'"},
			{"widget", "<type> [flags] [text]", "place a widget, see 'help widget'"},
			{"end", "", "close the innermost style or layout"},
			{"dump", "", "print the layout tree"},
			{"dot", "[file]", "write the layout tree in Graphviz format"},
			{"query", "<xpath>", "select widgets, e.g. //layout/button[@row='1']"},
			{"load", "<file>", "draw a TOML scene"},
			{"quit", "", "leave"},
		}).Render()
	}
}

func (intp *Intp) String() string {
	return fmt.Sprintf("intp{frame=%v scopes=%v}", intp.inFrame, intp.scopes)
}
