package obsapi

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
	"github.com/osc-go/obsapi/internal/xmlx"
)

const collectionXML = `<collection matches="4"><A id="1"/><B id="2"><A id="nested"/></B><A id="3"/><C id="4"/></collection>`

const prefixedXML = `<collection xmlns:x="urn:x"><x:A id="1"/><A id="2"/><x:A id="3"/></collection>`

func mustParse(t *testing.T, data string) *etree.Element {
	root, err := xmlx.Parse(strings.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func ids(nodes []*etree.Element) []string {
	out := []string{}
	for _, node := range nodes {
		out = append(out, node.SelectAttrValue("id", ""))
	}
	return out
}

// expectPanic runs fn and returns the value passed to panic.
func expectPanic(t *testing.T, fn func()) (value any) {
	defer func() {
		value = recover()
		if value == nil {
			t.Fatal("expected a panic here")
		}
	}()
	fn()
	return
}

func TestFindNodes(t *testing.T) {
	t.Run("we return the matching direct children in order", func(t *testing.T) {
		root := mustParse(t, collectionXML)
		nodes := FindNodes(root, "collection", "A")
		if diff := cmp.Diff([]string{"1", "3"}, ids(nodes)); diff != "" {
			t.Fatal(diff)
		}
		for _, node := range nodes {
			if node.Parent() != root {
				t.Fatal("expected a direct child of root")
			}
		}
	})

	t.Run("we return an empty slice when nothing matches", func(t *testing.T) {
		root := mustParse(t, collectionXML)
		nodes := FindNodes(root, "collection", "D")
		if nodes == nil || len(nodes) != 0 {
			t.Fatal("expected an empty, non-nil slice", nodes)
		}
	})

	t.Run("we do not search deeper than the direct children", func(t *testing.T) {
		root := mustParse(t, `<collection><B><A id="nested"/></B></collection>`)
		if nodes := FindNodes(root, "collection", "A"); len(nodes) != 0 {
			t.Fatal("expected no nodes", ids(nodes))
		}
	})

	t.Run("we compare the tag including its prefix", func(t *testing.T) {
		root := mustParse(t, prefixedXML)
		if diff := cmp.Diff([]string{"2"}, ids(FindNodes(root, "collection", "A"))); diff != "" {
			t.Fatal(diff)
		}
		if diff := cmp.Diff([]string{"1", "3"}, ids(FindNodes(root, "collection", "x:A"))); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("we panic on root tag mismatch", func(t *testing.T) {
		root := mustParse(t, collectionXML)
		for _, name := range []string{"A", "D", ""} {
			value := expectPanic(t, func() {
				FindNodes(root, "directory", name)
			})
			if value != "obsapi: expected <directory> root node, found <collection>" {
				t.Fatal("unexpected panic value", value)
			}
		}
	})

	t.Run("we panic on nil root", func(t *testing.T) {
		value := expectPanic(t, func() {
			FindNodes(nil, "collection", "A")
		})
		if value != "obsapi: nil root node" {
			t.Fatal("unexpected panic value", value)
		}
	})
}

func TestFindNode(t *testing.T) {
	t.Run("without a node name we return the root itself", func(t *testing.T) {
		root := mustParse(t, collectionXML)
		if FindNode(root, "collection", "") != root {
			t.Fatal("expected the root node")
		}
	})

	t.Run("we return the first matching direct child", func(t *testing.T) {
		root := mustParse(t, collectionXML)
		node := FindNode(root, "collection", "A")
		if node == nil || node.SelectAttrValue("id", "") != "1" {
			t.Fatal("expected the first <A> child", node)
		}
	})

	t.Run("we return nil when nothing matches", func(t *testing.T) {
		root := mustParse(t, collectionXML)
		if node := FindNode(root, "collection", "D"); node != nil {
			t.Fatal("expected nil", node)
		}
	})

	t.Run("we compare the tag including its prefix", func(t *testing.T) {
		root := mustParse(t, prefixedXML)
		node := FindNode(root, "collection", "A")
		if node == nil || node.FullTag() != "A" || node.SelectAttrValue("id", "") != "2" {
			t.Fatal("expected the unprefixed <A> child", node)
		}
		if node := FindNode(root, "collection", "y:A"); node != nil {
			t.Fatal("expected nil", node)
		}
	})

	t.Run("we do not search deeper than the direct children", func(t *testing.T) {
		root := mustParse(t, `<collection><B><A id="nested"/></B></collection>`)
		if node := FindNode(root, "collection", "A"); node != nil {
			t.Fatal("expected nil", node)
		}
	})

	t.Run("we panic on root tag mismatch", func(t *testing.T) {
		root := mustParse(t, collectionXML)
		for _, name := range []string{"A", "D", ""} {
			value := expectPanic(t, func() {
				FindNode(root, "directory", name)
			})
			if value != "obsapi: expected <directory> root node, found <collection>" {
				t.Fatal("unexpected panic value", value)
			}
		}
	})
}
