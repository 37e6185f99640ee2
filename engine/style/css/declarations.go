package css

import (
	"strings"

	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/text/cases"
)

// Declaration is a single `property: value` pair of a style text.
// Property is case-folded, Value is trimmed and unquoted.
type Declaration struct {
	Property string
	Value    string
}

var folder = cases.Fold()

func foldCase(s string) string {
	return folder.String(s)
}

// SplitDeclarations splits a style text of the form
//
//    "background-color: red; padding: 5px 3px;"
//
// into its declarations. Malformed declarations are reported and skipped,
// all others survive.
func SplitDeclarations(text string) []Declaration {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(terminate(text))
	if err == nil {
		return convertDeclarations(decls, nil)
	}
	tracer().Debugf("style text not accepted as a whole (%v), parsing declarations one by one", err)
	var result []Declaration
	for _, part := range strings.Split(text, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		decls, err := parser.ParseDeclarations(terminate(part))
		if err != nil || len(decls) == 0 {
			tracer().Errorf("skipping malformed style declaration '%s'", strings.TrimSpace(part))
			continue
		}
		result = convertDeclarations(decls, result)
	}
	return result
}

// terminate appends the final ';' a style text may omit. The declaration
// parser drops the value of an unterminated last declaration.
func terminate(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, ";") {
		return text
	}
	return text + ";"
}

func convertDeclarations(decls []*dcss.Declaration, result []Declaration) []Declaration {
	for _, d := range decls {
		prop := foldCase(strings.TrimSpace(d.Property))
		if prop == "" {
			tracer().Errorf("skipping style declaration without property: '%s'", d.Value)
			continue
		}
		result = append(result, Declaration{
			Property: prop,
			Value:    Unquote(d.Value),
		})
	}
	return result
}

// Unquote trims space and strips a single pair of enclosing quotes.
func Unquote(value string) string {
	value = strings.TrimSpace(value)
	if n := len(value); n >= 2 {
		if (value[0] == '"' || value[0] == '\'') && value[n-1] == value[0] {
			return strings.TrimSpace(value[1 : n-1])
		}
	}
	return value
}

// SplitFourSides distributes the 1 to 4 fields of a shorthand value to
// top, right, bottom and left, the way CSS does it:
//
//    "a"        → a a a a
//    "a b"      → a b a b
//    "a b c"    → a b c b
//    "a b c d"  → a b c d
//
// For corner properties the order is top-left, top-right, bottom-right,
// bottom-left.
func SplitFourSides(value string) ([4]string, bool) {
	var r [4]string
	fields := SplitTokens(value)
	switch len(fields) {
	case 1:
		r = [4]string{fields[0], fields[0], fields[0], fields[0]}
	case 2:
		r = [4]string{fields[0], fields[1], fields[0], fields[1]}
	case 3:
		r = [4]string{fields[0], fields[1], fields[2], fields[1]}
	case 4:
		r = [4]string{fields[0], fields[1], fields[2], fields[3]}
	default:
		tracer().Errorf("expecting 1-4 values for shorthand, have '%s'", value)
		return r, false
	}
	return r, true
}

// SplitArgs splits s at commas which are not nested inside parentheses.
// Parts are trimmed.
func SplitArgs(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

// SplitTokens splits s at white space which is not nested inside parentheses,
// e.g. "2px solid rgb(1, 2, 3)" gives three tokens.
func SplitTokens(s string) []string {
	var tokens []string
	depth, start := 0, -1
	for i, ch := range s {
		isSpace := ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
		switch {
		case ch == '(':
			depth++
		case ch == ')' && depth > 0:
			depth--
		}
		if isSpace && depth == 0 {
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// Keyword normalizes a keyword value: trimmed, unquoted and case-folded.
func Keyword(value string) string {
	return foldCase(Unquote(value))
}
