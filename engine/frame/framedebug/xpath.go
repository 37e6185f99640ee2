package framedebug

import (
	"github.com/antchfx/xpath"
	"github.com/npillmayer/boxflow/core"
)

// Query selects the nodes of t matching an XPath expression. A malformed
// expression is an error of kind core.EINVALID.
func Query(t *Tree, expr string) ([]*Node, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "malformed xpath expression '%s'", expr)
	}
	var result []*Node
	iter := x.Select(newNavigator(t))
	for iter.MoveNext() {
		nav := iter.Current().(*navigator)
		if nav.current != t.Root {
			result = append(result, nav.current)
		}
	}
	tracer().Debugf("query '%s' selected %d nodes", expr, len(result))
	return result, nil
}

// Evaluate evaluates an XPath expression returning a number, string or
// boolean, e.g. "count(//label)".
func Evaluate(t *Tree, expr string) (interface{}, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "malformed xpath expression '%s'", expr)
	}
	return x.Evaluate(newNavigator(t)), nil
}

// navigator implements xpath.NodeNavigator for a layout tree.
type navigator struct {
	root, current *Node
	attr          int // attribute index, -1 for the element itself
}

func newNavigator(t *Tree) *navigator {
	return &navigator{root: t.Root, current: t.Root, attr: -1}
}

func (nav *navigator) NodeType() xpath.NodeType {
	switch {
	case nav.current == nav.root:
		return xpath.RootNode
	case nav.attr != -1:
		return xpath.AttributeNode
	}
	return xpath.ElementNode
}

func (nav *navigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current.Attributes()[nav.attr].Key
	}
	return nav.current.Name()
}

func (*navigator) Prefix() string {
	return ""
}

func (nav *navigator) Value() string {
	if nav.attr != -1 {
		return nav.current.Attributes()[nav.attr].Val
	}
	if nav.current == nav.root {
		return ""
	}
	return nav.current.Item.ID.String()
}

func (nav *navigator) String() string {
	return nav.Value()
}

func (nav *navigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *navigator) MoveToRoot() {
	nav.current, nav.attr = nav.root, -1
}

func (nav *navigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1
		return true
	}
	if nav.current.Parent == nil {
		return false
	}
	nav.current = nav.current.Parent
	return true
}

func (nav *navigator) MoveToNextAttribute() bool {
	if nav.attr >= len(nav.current.Attributes())-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *navigator) MoveToChild() bool {
	if nav.attr != -1 || len(nav.current.Children) == 0 {
		return false
	}
	nav.current = nav.current.Children[0]
	return true
}

func (nav *navigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current.Parent == nil || nav.current.pos == 0 {
		return false
	}
	nav.current = nav.current.Parent.Children[0]
	return true
}

func (nav *navigator) MoveToNext() bool {
	p := nav.current.Parent
	if nav.attr != -1 || p == nil || nav.current.pos+1 >= len(p.Children) {
		return false
	}
	nav.current = p.Children[nav.current.pos+1]
	return true
}

func (nav *navigator) MoveToPrevious() bool {
	p := nav.current.Parent
	if nav.attr != -1 || p == nil || nav.current.pos == 0 {
		return false
	}
	nav.current = p.Children[nav.current.pos-1]
	return true
}

func (nav *navigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*navigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current, nav.attr = n.current, n.attr
	return true
}

var _ xpath.NodeNavigator = &navigator{}
