package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psas-avionics/telempack/pkg/api"
	"github.com/psas-avionics/telempack/pkg/archive"
	"github.com/psas-avionics/telempack/pkg/catalog"
	"github.com/psas-avionics/telempack/pkg/store"
	"github.com/psas-avionics/telempack/pkg/stream"
	"github.com/psas-avionics/telempack/pkg/transport"
)

// listenCmd represents the listen command
var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Capture UDP telemetry to an append-only log",
	Long: `Listen for telemetry datagrams, append the raw frames to a log
segment, and decode them as they arrive. Optionally archives decoded records
and serves the HTTP API.

Examples:
  telempack listen --port 35001 --data-dir ./flight
  telempack listen --port 35001 --archive --http`,
	RunE: runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)
	listenCmd.Flags().String("bind", "", "Address to listen on (overrides config)")
	listenCmd.Flags().IntP("port", "p", 0, "UDP port to listen on (overrides config)")
	listenCmd.Flags().StringP("data-dir", "d", "", "Directory for log segments (overrides config)")
	listenCmd.Flags().Bool("archive", false, "Archive decoded records")
	listenCmd.Flags().Bool("http", false, "Serve the HTTP API")
}

func runListen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
		cfg.Listen.Bind = bind
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Listen.Port = port
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	if on, _ := cmd.Flags().GetBool("archive"); on {
		cfg.Archive.Enabled = true
	}
	if on, _ := cmd.Flags().GetBool("http"); on {
		cfg.HTTP.Enabled = true
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	reg := catalog.Standard()

	addr := fmt.Sprintf("%s:%d", cfg.Listen.Bind, cfg.Listen.Port)
	listener, err := transport.Listen(addr, time.Second)
	if err != nil {
		return fmt.Errorf("failed to bind telemetry socket: %w", err)
	}
	defer listener.Close()

	segment := store.NewSegmentPath(cfg.DataDir)
	writer, err := store.NewLogWriter(store.LogWriterConfig{
		FilePath:      segment,
		FsyncInterval: time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open log segment: %w", err)
	}
	defer writer.Close()

	var arc *archive.Archive
	if cfg.Archive.Enabled {
		arc, err = archive.Open(cfg.Archive.Path)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer arc.Close()
	}

	metrics := api.NewMetrics(prometheus.DefaultRegisterer)
	server := api.NewServer(reg, metrics, logger)
	if cfg.HTTP.Enabled {
		go func() {
			if err := server.Start(api.ServerConfig{Bind: cfg.HTTP.Bind, Port: cfg.HTTP.Port}); err != nil {
				logger.Error("api server stopped", zap.Error(err))
			}
		}()
	}

	logger.Info("capturing telemetry",
		zap.String("addr", addr),
		zap.String("segment", segment),
		zap.Bool("archive", cfg.Archive.Enabled),
	)

	// Close the socket on SIGINT/SIGTERM; the reader then sees EOF and the
	// pipeline drains.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Info("shutting down")
		listener.Close()
	}()

	tee := &teeSource{src: listener, writer: writer}
	reader := stream.NewReader(reg, tee, stream.ReaderConfig{ChunkSize: cfg.ChunkSize})

	if err := drainStream(reader, server, arc, metrics, logger); err != nil {
		return fmt.Errorf("telemetry stream failed: %w", err)
	}

	logger.Info("capture finished",
		zap.Int64("bytes", reader.BytesRead()),
		zap.Int("resyncs", reader.Resyncs()),
	)
	return nil
}

// drainStream pumps decoded records into the server's latest-record cache
// and the optional archive, keeping the pipeline metrics in step with the
// reader's counters. The counters are flushed once more after the loop so
// resyncs or bytes trailing the final record still reach the metrics.
func drainStream(reader *stream.Reader, server *api.Server, arc *archive.Archive, metrics *api.Metrics, logger *zap.Logger) error {
	resyncs := 0
	var read int64
	flush := func() {
		for reader.Resyncs() > resyncs {
			metrics.RecordResync()
			resyncs++
		}
		metrics.AddBytesRead(reader.BytesRead() - read)
		read = reader.BytesRead()
	}

	for reader.Next() {
		rec := reader.Record()
		server.Observe(rec)
		if arc != nil {
			if err := arc.Put(rec); err != nil {
				logger.Warn("archive write failed", zap.Error(err))
			}
		}
		flush()
	}
	flush()
	return reader.Err()
}

// teeSource copies every chunk into the log before the decoder sees it, so
// the on-disk segment is byte-identical to the wire.
type teeSource struct {
	src    stream.ChunkSource
	writer *store.LogWriter
}

func (t *teeSource) ReadChunk(max int) ([]byte, error) {
	chunk, err := t.src.ReadChunk(max)
	if len(chunk) > 0 {
		if _, werr := t.writer.Write(chunk); werr != nil {
			return nil, werr
		}
	}
	return chunk, err
}
