package obsapi

//
// write.go - write a document to a file.
//

import (
	"github.com/beevik/etree"
	"github.com/osc-go/obsapi/internal/fsx"
	"github.com/osc-go/obsapi/internal/xmlx"
)

// WriteXMLNodeToFile writes node to the file at path, creating or truncating it.
// When indent is true, the written document is pretty-printed using two spaces
// per level. The node itself is never modified: we indent a copy.
func WriteXMLNodeToFile(node *etree.Element, path string, indent bool) error {
	file, err := fsx.CreateFile(path)
	if err != nil {
		return err
	}
	if err := xmlx.Write(file, node, indent); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
