package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/psas-avionics/telempack/pkg/catalog"
	"github.com/psas-avionics/telempack/pkg/codec"
	"github.com/psas-avionics/telempack/pkg/export"
)

// typedefCmd represents the typedef command
var typedefCmd = &cobra.Command{
	Use:   "typedef [fourcc]",
	Short: "Generate packed C structs for the catalogue",
	Long: `Print C typedef declarations matching the wire layout, for firmware
that must agree with the catalogue byte-for-byte. With no argument the whole
catalogue is emitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := catalog.Standard()
		if len(args) == 0 {
			return export.Typedefs(os.Stdout, reg)
		}
		fc, err := codec.ParseFourCC(args[0])
		if err != nil {
			return err
		}
		mt, ok := reg.Lookup(fc)
		if !ok {
			return fmt.Errorf("unknown type code %s", fc)
		}
		return export.Typedef(os.Stdout, mt)
	},
}

func init() {
	rootCmd.AddCommand(typedefCmd)
}
