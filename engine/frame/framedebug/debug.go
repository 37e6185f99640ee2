package framedebug

import (
	"fmt"
	"io"
	"text/template"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/engine/widget"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
	names    map[*Node]string
}

// ToGraphViz creates a graphical representation of a layout tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(t *Tree, w io.Writer) error {
	header, err := template.New("layoutTree").Parse(graphHeadTmpl)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "graphviz header template")
	}
	gparams := graphParamsType{Fontname: "Helvetica", names: make(map[*Node]string, t.Len()+1)}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"label":  label,
			"fill":   fillColor,
			"layout": isLayout,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write graphviz header")
	}
	if err = boxes(t.Root, w, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func boxes(n *Node, w io.Writer, gparams *graphParamsType) error {
	if err := box(n, w, gparams); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := boxes(child, w, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, cedge{gparams.names[n], gparams.names[child]}); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot write graphviz edge")
		}
	}
	return nil
}

func box(n *Node, w io.Writer, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(gparams.names)+1)
	gparams.names[n] = name
	if err := gparams.BoxTmpl.Execute(w, &cbox{N: n, Name: name}); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write graphviz node")
	}
	return nil
}

// Helper structs
type cbox struct {
	N    *Node
	Name string
}

type cedge struct {
	N1, N2 string
}

// ---------------------------------------------------------------------------

func label(n *Node) string {
	if n.Parent == nil {
		return `"frame"`
	}
	m := n.Item.Box.Margin
	return fmt.Sprintf(`"%v\n%g,%g %g×%g"`, n.Item.ID, m.TopL.X, m.TopL.Y, m.Width(), m.Height())
}

func isLayout(n *Node) bool {
	return n.Parent == nil || n.Item.IsLayout()
}

func fillColor(n *Node) string {
	switch {
	case n.Parent == nil:
		return "grey90"
	case n.Item.IsLayout():
		return "lightblue3"
	case n.Item.ID.Type() == widget.Label:
		return "grey95"
	}
	return "khaki1"
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const boxTmpl = `{{ if layout .N }}
{{ .Name }}	[ label={{ label .N }} shape=box style=filled fillcolor={{ fill .N }} ] ;
{{ else }}
{{ .Name }}	[ label={{ label .N }} shape=box style="filled,rounded" fillcolor={{ fill .N }} fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
