// Package cli implements the sdfhole command-line interface.
//
// Every command reads a scene file (see package config) and writes one
// artifact: OpenSCAD source, a binary STL, a PNG preview or a plot of a
// hole's cross-section. Logs go to stderr; --verbose enables debug output
// and --quiet limits it to errors.
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the sdfhole command tree.
func NewRootCommand() *cobra.Command {
	var verbose, quiet bool
	root := &cobra.Command{
		Use:           "sdfhole",
		Short:         "Generate parametric hole solids",
		Long:          `sdfhole builds plain, slotted, countersunk, counterdrilled and counterbored-slotted holes from a scene file and exports them as OpenSCAD, STL or images.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			switch {
			case verbose:
				level = log.DebugLevel
			case quiet:
				level = log.ErrorLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(newSCADCmd())
	root.AddCommand(newSTLCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newSectionCmd())
	return root
}
