package framedebug

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/boxflow/engine/frame/layout"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Node is a layout or widget of a frame.
type Node struct {
	Item     layout.Item
	Parent   *Node
	Children []*Node
	pos      int // position among the parent's children
	attrs    []html.Attribute
}

// Tree is the layout tree of a frame. Its root is a synthetic node for the
// window, holding all top-level items.
type Tree struct {
	Root  *Node
	nodes []*Node
}

// Build reconstructs the layout tree from the item sequence of a frame.
func Build(items []layout.Item) *Tree {
	t := &Tree{
		Root:  &Node{Item: layout.Item{Parent: -1, Last: len(items) - 1, Depth: -1}},
		nodes: make([]*Node, len(items)),
	}
	for i, it := range items {
		n := &Node{Item: it}
		parent := t.Root
		if it.Parent >= 0 && it.Parent < i {
			parent = t.nodes[it.Parent]
		}
		n.Parent = parent
		n.pos = len(parent.Children)
		parent.Children = append(parent.Children, n)
		t.nodes[i] = n
	}
	tracer().Debugf("layout tree with %d nodes", len(items))
	return t
}

// Len returns the number of items in t.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Name returns the element name of n, which is its widget type, or "frame"
// for the root.
func (n *Node) Name() string {
	if n.Parent == nil {
		return "frame"
	}
	return n.Item.ID.Type().String()
}

func (n *Node) String() string {
	if n.Parent == nil {
		return "frame"
	}
	return fmt.Sprintf("%v %v (%d,%d)", n.Item.ID, n.Item.Box.Margin, n.Item.Row, n.Item.Col)
}

// Attributes returns the XPath attributes of n.
func (n *Node) Attributes() []html.Attribute {
	if n.attrs != nil || n.Parent == nil {
		return n.attrs
	}
	m := n.Item.Box.Margin
	n.attrs = []html.Attribute{
		{Key: "id", Val: n.Item.ID.String()},
		{Key: "x", Val: number(m.TopL.X)},
		{Key: "y", Val: number(m.TopL.Y)},
		{Key: "w", Val: number(m.Width())},
		{Key: "h", Val: number(m.Height())},
		{Key: "row", Val: strconv.Itoa(n.Item.Row)},
		{Key: "col", Val: strconv.Itoa(n.Item.Col)},
	}
	return n.attrs
}

func number(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// Dump renders t as an indented tree.
func Dump(t *Tree) string {
	p := treeprint.New()
	for _, ch := range t.Root.Children {
		dumpNode(p, ch)
	}
	return fmt.Sprintf("frame (%d items)\n", t.Len()) + p.String()
}

func dumpNode(p treeprint.Tree, n *Node) {
	if len(n.Children) == 0 {
		p.AddNode(n.String())
		return
	}
	branch := p.AddBranch(n.String())
	for _, ch := range n.Children {
		dumpNode(branch, ch)
	}
}
