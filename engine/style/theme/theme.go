package theme

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/engine/style"
	"golang.org/x/net/html"
)

// Rule is a theme rule for a single selector.
type Rule struct {
	Selector string     // selector without pseudo-class
	Slot     style.Slot // state the rule applies to
	Text     string     // style text, ready for parsing
	matcher  cascadia.Selector
}

// Theme is an ordered list of rules.
type Theme struct {
	rules []Rule
}

var pseudoClasses = map[string]style.Slot{
	"hover":    style.SlotHovered,
	"active":   style.SlotPressed,
	"pressed":  style.SlotPressed,
	"focus":    style.SlotFocused,
	"checked":  style.SlotChecked,
	"selected": style.SlotChecked,
	"disabled": style.SlotDisabled,
}

// LoadTheme parses a stylesheet. A stylesheet which cannot be parsed is an
// error of kind core.EINVALID. Rules with unsupported selectors are traced
// and skipped.
func LoadTheme(sheet string) (*Theme, error) {
	stylesheet, err := parser.Parse(sheet)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse theme stylesheet")
	}
	th := &Theme{}
	for _, r := range stylesheet.Rules {
		if len(r.Declarations) == 0 {
			continue
		}
		var text strings.Builder
		for _, d := range r.Declarations {
			text.WriteString(d.Property)
			text.WriteString(": ")
			text.WriteString(d.Value)
			text.WriteString("; ")
		}
		for _, sel := range r.Selectors {
			rule, ok := compileRule(sel, strings.TrimSpace(text.String()))
			if !ok {
				continue
			}
			th.rules = append(th.rules, rule)
		}
	}
	tracer().Debugf("theme loaded with %d rules", len(th.rules))
	return th, nil
}

func compileRule(sel string, text string) (Rule, bool) {
	sel = strings.TrimSpace(sel)
	slot := style.SlotDefault
	if i := strings.LastIndexByte(sel, ':'); i >= 0 {
		pc := strings.ToLower(sel[i+1:])
		s, ok := pseudoClasses[pc]
		if !ok {
			tracer().Errorf("theme: unsupported pseudo-class in '%s'", sel)
			return Rule{}, false
		}
		slot = s
		sel = sel[:i]
	}
	if sel == "" {
		sel = "*"
	}
	matcher, err := cascadia.Compile(sel)
	if err != nil {
		tracer().Errorf("theme: invalid selector '%s': %v", sel, err)
		return Rule{}, false
	}
	return Rule{Selector: sel, Slot: slot, Text: text, matcher: matcher}, true
}

// Rules returns the rules of a theme in stylesheet order.
func (th *Theme) Rules() []Rule {
	if th == nil {
		return nil
	}
	return th.rules
}

// StylesFor collects the style texts of all rules matching a widget, per
// state slot. Rules are applied in stylesheet order: later rules override
// earlier ones.
func (th *Theme) StylesFor(widgetType string, id string, classes ...string) style.StateStyles {
	var ss style.StateStyles
	if th == nil || len(th.rules) == 0 {
		return ss
	}
	node := element(widgetType, id, classes)
	for _, r := range th.rules {
		if !r.matcher.Match(node) {
			continue
		}
		if ss[r.Slot] == "" {
			ss[r.Slot] = r.Text
		} else {
			ss[r.Slot] = ss[r.Slot] + " " + r.Text
		}
	}
	return ss
}

// element creates a detached element node for selector matching.
func element(widgetType string, id string, classes []string) *html.Node {
	node := &html.Node{
		Type: html.ElementNode,
		Data: widgetType,
	}
	if id != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "id", Val: id})
	}
	if len(classes) > 0 {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	return node
}
