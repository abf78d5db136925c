package xmlx

import (
	"strings"

	"github.com/beevik/etree"
)

// EqualMode controls how [Equal] compares character data.
type EqualMode int

const (
	// Exact compares every token, including whitespace-only character data.
	Exact EqualMode = iota

	// IgnoreIndent merges adjacent character data, trims the surrounding
	// whitespace, and skips what remains empty. Pretty-printing only changes
	// whitespace, so an indented tree compares equal to the original.
	IgnoreIndent
)

// Equal returns whether a and b have the same tag, the same attributes,
// and equal children in the same order, according to mode. Attribute
// order does not matter.
func Equal(a, b *etree.Element, mode EqualMode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.FullTag() != b.FullTag() || !equalAttrs(a.Attr, b.Attr) {
		return false
	}
	ac, bc := tokens(a, mode), tokens(b, mode)
	if len(ac) != len(bc) {
		return false
	}
	for idx := range ac {
		if !equalToken(ac[idx], bc[idx], mode) {
			return false
		}
	}
	return true
}

func equalAttrs(a, b []etree.Attr) bool {
	if len(a) != len(b) {
		return false
	}
	values := make(map[string]string, len(a))
	for _, attr := range a {
		values[attr.FullKey()] = attr.Value
	}
	for _, attr := range b {
		value, found := values[attr.FullKey()]
		if !found || value != attr.Value {
			return false
		}
	}
	return true
}

// tokens returns the child tokens of e that are relevant for mode.
func tokens(e *etree.Element, mode EqualMode) []etree.Token {
	if mode == Exact {
		return e.Child
	}
	var (
		out  []etree.Token
		text strings.Builder
	)
	flush := func() {
		if data := strings.TrimSpace(text.String()); data != "" {
			out = append(out, etree.NewText(data))
		}
		text.Reset()
	}
	for _, token := range e.Child {
		if cd, ok := token.(*etree.CharData); ok {
			text.WriteString(cd.Data)
			continue
		}
		flush()
		out = append(out, token)
	}
	flush()
	return out
}

func equalToken(a, b etree.Token, mode EqualMode) bool {
	switch at := a.(type) {
	case *etree.Element:
		bt, ok := b.(*etree.Element)
		return ok && Equal(at, bt, mode)
	case *etree.CharData:
		bt, ok := b.(*etree.CharData)
		return ok && at.Data == bt.Data
	case *etree.Comment:
		bt, ok := b.(*etree.Comment)
		return ok && at.Data == bt.Data
	case *etree.ProcInst:
		bt, ok := b.(*etree.ProcInst)
		return ok && at.Target == bt.Target && at.Inst == bt.Inst
	case *etree.Directive:
		bt, ok := b.(*etree.Directive)
		return ok && at.Data == bt.Data
	default:
		return false
	}
}
