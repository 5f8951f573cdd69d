package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/psas-avionics/telempack/pkg/catalog"
	"github.com/psas-avionics/telempack/pkg/codec"
	"github.com/psas-avionics/telempack/pkg/export"
	"github.com/psas-avionics/telempack/pkg/store"
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay <logfile>",
	Short: "Replay a telemetry log to stdout",
	Long: `Decode an append-only telemetry log and print the records. With
--format csv a single --type must be chosen, and its records are written as
CSV rows in engineering units.

Examples:
  telempack replay flight.tlm
  telempack replay flight.tlm --type ADIS --format csv > adis.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringP("type", "t", "", "Only emit records of this type code (e.g. ADIS, GPS1)")
	replayCmd.Flags().StringP("format", "f", "text", "Output format: text or csv")
}

func runReplay(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	typeArg, _ := cmd.Flags().GetString("type")

	reg := catalog.Standard()

	var filter *codec.FourCC
	if typeArg != "" {
		fc, err := codec.ParseFourCC(typeArg)
		if err != nil {
			return err
		}
		filter = &fc
	}

	reader, err := store.NewLogReader(store.LogReaderConfig{FilePath: args[0]})
	if err != nil {
		return err
	}
	defer reader.Close()

	records := reader.Records(reg)

	switch format {
	case "text":
		for records.Next() {
			rec := records.Record()
			if filter != nil && rec.FourCC != *filter {
				continue
			}
			printRecord(cmd, rec)
		}
	case "csv":
		if filter == nil {
			return fmt.Errorf("--format csv requires --type")
		}
		mt, ok := reg.Lookup(*filter)
		if !ok {
			return fmt.Errorf("unknown type code %s", filter)
		}
		w := export.NewCSVWriter(os.Stdout, mt)
		for records.Next() {
			rec := records.Record()
			if rec.FourCC != *filter {
				continue
			}
			if err := w.WriteRecord(rec); err != nil {
				return err
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return records.Err()
}

func printRecord(cmd *cobra.Command, rec *codec.Record) {
	names := make([]string, 0, len(rec.Fields))
	for name := range rec.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "%s t=%d", rec.FourCC, rec.Timestamp)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%g", name, rec.Fields[name])
	}
	cmd.Println(b.String())
}
