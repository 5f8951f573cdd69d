package cmd

import (
	"github.com/spf13/cobra"

	"github.com/psas-avionics/telempack/pkg/catalog"
)

// typesCmd represents the types command
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the telemetry catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, mt := range catalog.Standard().Types() {
			note := ""
			if mt.FixedLength {
				note = "  (fixed-length override)"
			}
			cmd.Printf("%-6s %-22s %3d bytes, %d fields%s\n",
				mt.FourCC, mt.Name, mt.Size(), len(mt.Layout.Fields), note)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
