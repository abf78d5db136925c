package main

//
// find subcommand
//

import (
	"io"

	"github.com/osc-go/obsapi/internal/xmlx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// findFlags contains the flags of the find subcommand.
type findFlags struct {
	permissive bool
	selectFlags
}

func newFindCommand(stdout io.Writer) *cobra.Command {
	ff := &findFlags{}
	cmd := &cobra.Command{
		Use:     "find [flags] FILE",
		Short:   "Print the selected nodes of a local XML document",
		Example: `  obsapi find _meta --root package --find-all person`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ff.run(stdout, args[0])
		},
	}
	cmd.Flags().BoolVar(&ff.permissive, "permissive", false, "parse the document in non-strict mode")
	ff.selectFlags.register(cmd)
	return cmd
}

func (ff *findFlags) run(stdout io.Writer, filename string) error {
	settings := &xmlx.ParseSettings{Permissive: ff.permissive}
	root, err := xmlx.ParseFile(filename, settings)
	if err != nil {
		return errors.Wrapf(err, "cannot parse %s", filename)
	}
	return ff.selectFlags.emit(stdout, root)
}
