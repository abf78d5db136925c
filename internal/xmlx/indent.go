package xmlx

import (
	"strings"

	"github.com/beevik/etree"
)

// indentedChild is a non-text child token followed by its tail, i.e.,
// the character data preceding the next non-text child.
type indentedChild struct {
	token etree.Token
	tail  []etree.Token
}

// indent rewrites the children of e in place. The text before the first
// child and the tail of every child become newline plus indentation when
// they are empty or whitespace-only. Elements without child nodes are
// left alone, as is non-whitespace text.
func indent(e *etree.Element, level int) {
	var (
		text     []etree.Token
		children []*indentedChild
	)
	for _, token := range e.Child {
		if _, ok := token.(*etree.CharData); ok {
			if len(children) <= 0 {
				text = append(text, token)
			} else {
				last := children[len(children)-1]
				last.tail = append(last.tail, token)
			}
			continue
		}
		children = append(children, &indentedChild{token: token})
	}
	if len(children) <= 0 {
		return
	}

	outer := "\n" + strings.Repeat(" ", level*IndentSpaces)
	inner := outer + strings.Repeat(" ", IndentSpaces)
	for len(e.Child) > 0 {
		e.RemoveChildAt(len(e.Child) - 1)
	}
	addText(e, text, inner)
	for idx, child := range children {
		if elem, ok := child.token.(*etree.Element); ok {
			indent(elem, level+1)
		}
		e.AddChild(child.token)
		if idx == len(children)-1 {
			addText(e, child.tail, outer)
		} else {
			addText(e, child.tail, inner)
		}
	}
}

// addText appends run to e, or whitespace instead when run is blank.
func addText(e *etree.Element, run []etree.Token, whitespace string) {
	if isBlank(run) {
		e.AddChild(etree.NewText(whitespace))
		return
	}
	for _, token := range run {
		e.AddChild(token)
	}
}

func isBlank(run []etree.Token) bool {
	for _, token := range run {
		if cd, ok := token.(*etree.CharData); ok && !cd.IsWhitespace() {
			return false
		}
	}
	return true
}
