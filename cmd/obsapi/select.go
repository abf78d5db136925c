package main

//
// Selecting and emitting nodes
//

import (
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/beevik/etree"
	"github.com/osc-go/obsapi/internal/obsapi"
	"github.com/osc-go/obsapi/internal/xmlx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// selectFlags contains the flags controlling which nodes we select
// from a document and where we write them.
type selectFlags struct {
	findAll string
	find    string
	indent  bool
	output  string
	root    string
}

func (sf *selectFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&sf.root, "root", "", "expected root tag (default: the tag of the document root)")
	flags.StringVar(&sf.find, "find", "", "select the first direct child with this tag")
	flags.StringVar(&sf.findAll, "find-all", "", "select all the direct children with this tag")
	flags.StringVarP(&sf.output, "output", "o", "", "write the selected node to this file instead of stdout")
	flags.BoolVar(&sf.indent, "indent", true, "pretty-print the emitted XML")
	cmd.MarkFlagsMutuallyExclusive("find", "find-all")
	cmd.MarkFlagsMutuallyExclusive("find-all", "output")
}

// emit selects nodes from root according to the flags and writes them.
func (sf *selectFlags) emit(stdout io.Writer, root *etree.Element) error {
	rootName := sf.root
	if rootName == "" {
		rootName = root.FullTag()
	}
	if rootName != root.FullTag() {
		return errors.Errorf("expected <%s> root node, found <%s>", rootName, root.FullTag())
	}

	if sf.findAll != "" {
		nodes := obsapi.FindNodes(root, rootName, sf.findAll)
		log.Debugf("found %d <%s> nodes", len(nodes), sf.findAll)
		for _, node := range nodes {
			if err := writeNode(stdout, node, sf.indent); err != nil {
				return err
			}
		}
		return nil
	}

	node := obsapi.FindNode(root, rootName, sf.find)
	if node == nil {
		return errors.Errorf("no <%s> node inside <%s>", sf.find, rootName)
	}
	if sf.output != "" {
		log.Infof("writing <%s> to %s", node.FullTag(), sf.output)
		return errors.Wrapf(obsapi.WriteXMLNodeToFile(node, sf.output, sf.indent),
			"cannot write %s", sf.output)
	}
	return writeNode(stdout, node, sf.indent)
}

func writeNode(w io.Writer, node *etree.Element, indent bool) error {
	if err := xmlx.Write(w, node, indent); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
