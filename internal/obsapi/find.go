package obsapi

//
// find.go - locate nodes inside a parsed document.
//

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/osc-go/obsapi/internal/runtimex"
)

// FindNodes returns the direct children of root whose tag is nodeName, in
// document order, or an empty slice when there are none. Only the direct
// children are scanned; deeper descendants never match. Tags are compared
// including their namespace prefix, so "A" does not match <x:A>.
//
// This function panics if root is nil or its tag is not rootName, because
// that means the caller passed us the wrong document.
func FindNodes(root *etree.Element, rootName, nodeName string) []*etree.Element {
	assertRootName(root, rootName)
	nodes := []*etree.Element{}
	for _, child := range root.ChildElements() {
		if child.FullTag() == nodeName {
			nodes = append(nodes, child)
		}
	}
	return nodes
}

// FindNode returns the first direct child of root whose tag is nodeName, or
// nil when there is no such child. When nodeName is empty, FindNode returns
// root itself.
//
// Like [FindNodes], this function panics if root is nil or its tag is not rootName.
func FindNode(root *etree.Element, rootName, nodeName string) *etree.Element {
	assertRootName(root, rootName)
	if nodeName == "" {
		return root
	}
	for _, child := range root.ChildElements() {
		if child.FullTag() == nodeName {
			return child
		}
	}
	return nil
}

func assertRootName(root *etree.Element, rootName string) {
	runtimex.Assert(root != nil, "obsapi: nil root node")
	runtimex.Assert(root.FullTag() == rootName, fmt.Sprintf(
		"obsapi: expected <%s> root node, found <%s>", rootName, root.FullTag()))
}
