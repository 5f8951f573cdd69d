package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/psas-avionics/telempack/pkg/catalog"
	"github.com/psas-avionics/telempack/pkg/codec"
	"github.com/psas-avionics/telempack/pkg/transport"
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send <host:port>",
	Short: "Encode and transmit telemetry frames over UDP",
	Long: `Encode a record of the given type and send it as one datagram per
frame. Field values are engineering units; omitted fields encode as zero.

Examples:
  telempack send 127.0.0.1:35001 --type ADIS --field VCC=5.0 --field Gyro_X=12.5
  telempack send 127.0.0.1:35001 --type SEQN --field Sequence=1 --count 100 --interval 10ms`,
	Args: cobra.ExactArgs(1),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringP("type", "t", "", "Type code to send (required)")
	sendCmd.Flags().StringArray("field", nil, "Field value as name=number, repeatable")
	sendCmd.Flags().IntP("count", "c", 1, "Number of frames to send")
	sendCmd.Flags().Duration("interval", 0, "Delay between frames")
	_ = sendCmd.MarkFlagRequired("type")
}

func runSend(cmd *cobra.Command, args []string) error {
	typeArg, _ := cmd.Flags().GetString("type")
	fieldArgs, _ := cmd.Flags().GetStringArray("field")
	count, _ := cmd.Flags().GetInt("count")
	interval, _ := cmd.Flags().GetDuration("interval")

	fc, err := codec.ParseFourCC(typeArg)
	if err != nil {
		return err
	}
	mt, ok := catalog.Standard().Lookup(fc)
	if !ok {
		return fmt.Errorf("unknown type code %s", fc)
	}

	data := make(map[string]float64, len(fieldArgs))
	for _, arg := range fieldArgs {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("malformed --field %q, want name=number", arg)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("malformed --field %q: %w", arg, err)
		}
		data[name] = v
	}

	sender, err := transport.NewSender(args[0])
	if err != nil {
		return err
	}
	defer sender.Close()

	for i := 0; i < count; i++ {
		timestamp := uint64(time.Now().UnixNano()) & codec.TimestampMask
		if err := sender.SendMessage(mt, timestamp, data); err != nil {
			return fmt.Errorf("send failed after %d frames: %w", i, err)
		}
		if interval > 0 && i < count-1 {
			time.Sleep(interval)
		}
	}

	cmd.Printf("sent %d %s frame(s) to %s\n", count, mt.Name, args[0])
	return nil
}
