// Package serve implements the "serve" subcommand, which starts the
// language server over a UNIX socket or, by default, stdio.
package serve

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thrift-tools/thriftls/private/pkg/logutil"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftanalysis"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftlsp"
)

type flags struct {
	pipePath  string
	logLevel  string
	logFormat string
}

func (f *flags) bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.pipePath, "pipe", "", "path to a UNIX socket to connect to; uses stdio if not specified")
	flagSet.StringVar(&f.logLevel, "log-level", "info", "log level [debug,info,warn,error]")
	flagSet.StringVar(&f.logFormat, "log-format", "color", "log format [text,color,json]")
}

// NewCommand constructs the "serve" subcommand.
func NewCommand() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the language server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}
	f.bind(cmd.Flags())
	return cmd
}

func run(ctx context.Context, f *flags) error {
	logger, err := logutil.NewLogger(os.Stderr, f.logLevel, f.logFormat, "thriftls")
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	transport, err := dial(f)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	analyzer := thriftanalysis.New(nil)
	conn := thriftlsp.Serve(ctx, transport, logger, analyzer)
	<-conn.Done()
	return conn.Err()
}

func dial(f *flags) (io.ReadWriteCloser, error) {
	if f.pipePath != "" {
		conn, err := net.Dial("unix", f.pipePath)
		if err != nil {
			return nil, fmt.Errorf("could not open IPC socket %q: %w", f.pipePath, err)
		}
		return conn, nil
	}
	return stdioReadWriteCloser{os.Stdin, os.Stdout}, nil
}

// stdioReadWriteCloser composes stdin and stdout into a single stream,
// closing both when the connection shuts down.
type stdioReadWriteCloser struct {
	in  *os.File
	out *os.File
}

func (s stdioReadWriteCloser) Read(p []byte) (int, error)  { return s.in.Read(p) }
func (s stdioReadWriteCloser) Write(p []byte) (int, error) { return s.out.Write(p) }
func (s stdioReadWriteCloser) Close() error {
	inErr := s.in.Close()
	outErr := s.out.Close()
	if inErr != nil {
		return inErr
	}
	return outErr
}
